// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/analytica/complexnum"
	"github.com/katalvlaran/analytica/matrix"
)

// MatrixResult holds either a scalar (determinant) or a matrix.
type MatrixResult struct {
	Scalar float64
	Matrix *matrix.Dense
}

// Render formats the result; matrices use the given style.
func (r MatrixResult) Render(style string) string {
	if r.Matrix == nil {
		return complexnum.FormatFloat(r.Scalar)
	}

	return RenderMatrix(r.Matrix, style)
}

type matrixOp func(m *matrix.Dense, exp int) (MatrixResult, error)

func wrapMatrix(f func(matrix.Matrix) (*matrix.Dense, error)) matrixOp {
	return func(m *matrix.Dense, _ int) (MatrixResult, error) {
		out, err := f(m)
		if err != nil {
			return MatrixResult{}, err
		}

		return MatrixResult{Matrix: out}, nil
	}
}

var matrixOps = map[string]matrixOp{
	"det": func(m *matrix.Dense, _ int) (MatrixResult, error) {
		d, err := matrix.Determinant(m)
		return MatrixResult{Scalar: d}, err
	},
	"inv":       wrapMatrix(matrix.Inverse),
	"adj":       wrapMatrix(matrix.Adjugate),
	"cof":       wrapMatrix(matrix.CofactorMatrix),
	"transpose": wrapMatrix(matrix.Transpose),
	"pow": func(m *matrix.Dense, exp int) (MatrixResult, error) {
		out, err := matrix.Pow(m, exp)
		if err != nil {
			return MatrixResult{}, err
		}

		return MatrixResult{Matrix: out}, nil
	},
}

// MatrixOps lists the registered matrix operation names in sorted order.
func MatrixOps() []string {
	names := make([]string, 0, len(matrixOps))
	for name := range matrixOps {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Matrix applies the named operation; exp is only read by "pow".
func Matrix(op string, m *matrix.Dense, exp int) (MatrixResult, error) {
	f, ok := matrixOps[op]
	if !ok {
		return MatrixResult{}, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}

	return f(m, exp)
}
