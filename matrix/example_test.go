// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/analytica/matrix"
)

// ExampleDeterminant evaluates a 4×4 determinant by cofactor expansion.
func ExampleDeterminant() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 0, 2, -1},
		{3, 0, 0, 5},
		{2, 1, 4, -3},
		{1, 0, 5, 0},
	})
	det, err := matrix.Determinant(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(det)
	// Output:
	// 30
}

// ExampleInverse shows the inverse and the singular-matrix error.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
	inv, _ := matrix.Inverse(m)
	fmt.Println(inv)

	s, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(s)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// {{0.5, 0}, {0, 0.25}}
	// true
}

// ExampleAdd shows zero-padding of operands with different shapes.
func ExampleAdd() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{10, 10, 10}})
	sum, _ := matrix.Add(a, b)
	fmt.Println(sum.Aligned())
	// Output:
	// | 11 12 10 |
	// |  3  4  0 |
}
