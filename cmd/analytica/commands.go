// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analytica/internal/calc"
	"github.com/katalvlaran/analytica/internal/config"
	"github.com/katalvlaran/analytica/internal/logging"
)

// app carries the state resolved by the root command's PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool
	format     string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds a fresh command tree so tests never share flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "analytica",
		Short: "Complex numbers, matrices and polynomial roots from the command line",
		Long: `analytica evaluates complex-number operations, square-matrix algebra
(determinant, cofactors, adjugate, inverse) and closed-form roots of
linear, quadratic and cubic polynomials.

Negative operands must follow "--" so they are not read as flags:
  analytica roots -- 1 -3 2`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit JSON logs (overrides config)")
	pf.StringVar(&a.format, "format", "", "matrix rendering: aligned|compact (overrides config)")

	rootCmd.AddCommand(
		newComplexCmd(a),
		newMatrixCmd(a),
		newRootsCmd(a),
		newPlotCmd(a),
		newBatchCmd(a),
	)

	return rootCmd
}

// setup loads the config file and applies flag overrides on top of it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.Format = "text"
		if a.logJSON {
			cfg.Log.Format = "json"
		}
	}
	if a.format != "" {
		cfg.Format.Matrix = a.format
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.Format == "json",
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("config resolved", "path", a.configPath, "format", cfg.Format.Matrix, "workers", cfg.Batch.Workers)

	return nil
}

func (a *app) style() string {
	if a.cfg.Format.Matrix == calc.StyleCompact {
		return calc.StyleCompact
	}

	return calc.StyleAligned
}

func printLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
