// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analytica/internal/calc"
)

const opInfo = "info"

func newComplexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complex <op> <z> [w]",
		Short: "Apply a complex-number operation",
		Long: fmt.Sprintf(`Apply a complex-number operation to operands written as a+bi.

Operations: %s, %s
For "log" the second operand is the base, for "pow" it is the exponent.`,
			strings.Join(calc.ComplexOps(), " "), opInfo),
		Example: `  analytica complex add 1+2i 3-i
  analytica complex info -- -1`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := strings.ToLower(args[0])
			zs, err := calc.ParseComplexArgs(args[1:])
			if err != nil {
				return err
			}
			if op == opInfo {
				if len(zs) != 1 {
					return fmt.Errorf("info wants 1 operand, got %d: %w", len(zs), calc.ErrArity)
				}
				printLine(cmd, calc.ComplexInfo(zs[0]))

				return nil
			}

			res, err := calc.Complex(op, zs)
			if err != nil {
				a.logger.Debug("complex op failed", "op", op, "error", err)
				return err
			}
			printLine(cmd, res.String())

			return nil
		},
	}
}
