// SPDX-License-Identifier: MIT

// Package config loads the analytica CLI configuration from YAML.
//
// Defaults are applied before unmarshalling, so a file only needs to list the
// keys it overrides:
//
//	log:
//	  level: debug
//	  format: json
//	batch:
//	  workers: 8
//	plot:
//	  width: 6
//	  height: 4
//	  samples: 400
//	  padding: 1.5
//	format:
//	  matrix: compact
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for out-of-range or unknown values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the YAML document.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Batch  BatchConfig  `yaml:"batch"`
	Plot   PlotConfig   `yaml:"plot"`
	Format FormatConfig `yaml:"format"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// BatchConfig bounds batch job concurrency.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// PlotConfig sizes polynomial plots. Width and Height are in inches.
type PlotConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Samples int     `yaml:"samples"`
	Padding float64 `yaml:"padding"` // x-range margin around the real roots
}

// FormatConfig picks the matrix rendering.
type FormatConfig struct {
	Matrix string `yaml:"matrix"` // aligned|compact
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Batch:  BatchConfig{Workers: 4},
		Plot:   PlotConfig{Width: 6, Height: 4, Samples: 256, Padding: 2},
		Format: FormatConfig{Matrix: "aligned"},
	}
}

// Load reads and validates the file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse unmarshals data over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers %d: %w", c.Batch.Workers, ErrInvalid)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size %gx%g: %w", c.Plot.Width, c.Plot.Height, ErrInvalid)
	}
	if c.Plot.Samples < 2 {
		return fmt.Errorf("plot.samples %d: %w", c.Plot.Samples, ErrInvalid)
	}
	if c.Plot.Padding <= 0 {
		return fmt.Errorf("plot.padding %g: %w", c.Plot.Padding, ErrInvalid)
	}
	switch c.Format.Matrix {
	case "aligned", "compact":
	default:
		return fmt.Errorf("format.matrix %q: %w", c.Format.Matrix, ErrInvalid)
	}

	return nil
}
