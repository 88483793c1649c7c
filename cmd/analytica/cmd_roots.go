// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analytica/complexnum"
	"github.com/katalvlaran/analytica/internal/calc"
	"github.com/katalvlaran/analytica/polynomial"
)

func newRootsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roots <a> <b> [c] [d]",
		Short: "Solve a linear, quadratic or cubic polynomial",
		Long: `Solve a polynomial given by its coefficients, highest degree first.
Quadratics also report the discriminant and the vertex; cubics report
the depressed-cubic p, q and the discriminant.`,
		Example: `  analytica roots 1 2 1
  analytica roots -- 1 -6 11 -6`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coeffs, err := calc.ParseFloats(args)
			if err != nil {
				return err
			}
			a.logger.Debug("solving", "degree", len(coeffs)-1)

			out := cmd.OutOrStdout()
			f := complexnum.FormatFloat
			switch len(coeffs) {
			case 3:
				q, err := polynomial.NewQuadratic(coeffs[0], coeffs[1], coeffs[2])
				if err != nil {
					return err
				}
				v := q.Vertex()
				fmt.Fprintf(out, "f(x) = %s\n", q)
				fmt.Fprintf(out, "delta = %s\n", f(q.Delta()))
				fmt.Fprintf(out, "vertex = (%s, %s)\n", f(v.X), f(v.Y))
				fmt.Fprintf(out, "roots = %s\n", calc.FormatRoots(q.Roots()))
			case 4:
				c, err := polynomial.NewCubic(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "f(x) = %s\n", c)
				fmt.Fprintf(out, "p = %s\n", f(c.P()))
				fmt.Fprintf(out, "q = %s\n", f(c.Q()))
				fmt.Fprintf(out, "delta = %s\n", f(c.Delta()))
				fmt.Fprintf(out, "roots = %s\n", calc.FormatRoots(c.Roots()))
			default:
				roots, err := polynomial.Solve(coeffs...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "roots = %s\n", calc.FormatRoots(roots))
			}

			return nil
		},
	}
}
