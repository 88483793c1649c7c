// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analytica/internal/calc"
	"github.com/katalvlaran/analytica/internal/plotting"
	"github.com/katalvlaran/analytica/polynomial"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		out   string
		title string
	)

	cmd := &cobra.Command{
		Use:   "plot <coeffs...>",
		Short: "Plot a polynomial and mark its real roots",
		Long: `Plot a polynomial over the span of its real roots plus the configured
padding. The output format follows the file extension (png, svg, pdf, ...).
Roots are marked for degrees 1 to 3; higher degrees plot the curve alone.`,
		Example: `  analytica plot --out cubic.png -- 1 -6 11 -6`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coeffs, err := calc.ParseFloats(args)
			if err != nil {
				return err
			}
			p, err := polynomial.New(coeffs...)
			if err != nil {
				return err
			}
			roots, err := polynomial.Solve(coeffs...)
			if err != nil && !errors.Is(err, polynomial.ErrUnsupportedDegree) {
				return err
			}

			pc := a.cfg.Plot
			opts := plotting.Options{
				Title:   title,
				Width:   pc.Width,
				Height:  pc.Height,
				Samples: pc.Samples,
				Padding: pc.Padding,
			}
			plt, err := plotting.New(p, roots, opts)
			if err != nil {
				return err
			}
			if err = plotting.Save(plt, opts, out); err != nil {
				return err
			}
			a.logger.Info("plot written", "path", out, "real_roots", len(plotting.RealRoots(roots)))
			printLine(cmd, out)

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "plot.png", "output file")
	cmd.Flags().StringVar(&title, "title", "", "plot title (defaults to the polynomial)")

	return cmd
}
