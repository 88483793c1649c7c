// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analytica/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, config.Default().Validate())
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analytica.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  workers: 9\nformat:\n  matrix: compact\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Batch.Workers)
	assert.Equal(t, "compact", cfg.Format.Matrix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 256, cfg.Plot.Samples)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"level":   "log:\n  level: loud\n",
		"format":  "log:\n  format: xml\n",
		"workers": "batch:\n  workers: 0\n",
		"size":    "plot:\n  width: -1\n",
		"samples": "plot:\n  samples: 1\n",
		"padding": "plot:\n  padding: 0\n",
		"matrix":  "format:\n  matrix: fancy\n",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		require.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Parse([]byte("batch: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}
