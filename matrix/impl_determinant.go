// SPDX-License-Identifier: MIT
// Package matrix - determinant, minors, cofactors, adjugate and inverse.
//
// Purpose:
//   - Compute determinants by closed forms for orders 1..3 and Laplace
//     expansion along the first row above that.
//   - Derive cofactors, the cofactor matrix, the adjugate and the inverse
//     from the same determinant kernel.
//
// Determinism & Performance:
//   - Every minor is a freshly allocated (n-1)×(n-1) Dense, never a view.
//   - Laplace expansion costs O(n!) and is used up to laplaceMaxOrder; larger
//     orders switch to a partially pivoted LU factorization (O(n³)), which
//     agrees with the expansion within rounding.
//
// AI-Hints:
//   - Inverse returns ErrSingular for an exactly zero determinant; no epsilon
//     is applied, so nearly singular inputs still yield a (large) inverse.

package matrix

import "math"

// laplaceMaxOrder is the largest order evaluated by cofactor expansion.
const laplaceMaxOrder = 8

// Determinant returns det(A) for a square matrix.
// MAIN DESCRIPTION:
//   - Order 1: the single entry. Order 2: ad - bc. Order 3: the six-term rule.
//   - Order 4..laplaceMaxOrder: Σⱼ a₀ⱼ·Cofactor(0, j), skipping zero entries.
//   - Larger orders: LU with partial pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - O(n!) up to laplaceMaxOrder, O(n³) beyond.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return determinantOf(d), nil
}

// determinantOf dispatches on order. d must be square and non-empty.
func determinantOf(d *Dense) float64 {
	a := d.data
	switch n := d.r; {
	case n == 1:
		return a[0]
	case n == 2:
		return a[0]*a[3] - a[1]*a[2]
	case n == 3:
		return a[0]*a[4]*a[8] + a[1]*a[5]*a[6] + a[2]*a[3]*a[7] -
			a[2]*a[4]*a[6] - a[0]*a[5]*a[7] - a[1]*a[3]*a[8]
	case n <= laplaceMaxOrder:
		return laplace(d)
	default:
		return determinantLU(d)
	}
}

// laplace expands along row 0. Zero entries contribute nothing and are skipped.
func laplace(d *Dense) float64 {
	var sum float64
	for j := 0; j < d.c; j++ {
		a0j := d.data[j]
		if a0j == 0 {
			continue
		}
		sum += a0j * cofactorSign(0, j) * determinantOf(minorOf(d, 0, j))
	}

	return sum
}

// cofactorSign returns (-1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// minorOf builds the submatrix of d without row and col. Source indices past
// the deleted ones shift down by one.
// Complexity: O(n²) time and space.
func minorOf(d *Dense, row, col int) *Dense {
	n := d.r - 1
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var (
		i, j, si, sj int
	)
	for i = 0; i < n; i++ {
		si = i
		if i >= row {
			si++
		}
		for j = 0; j < n; j++ {
			sj = j
			if j >= col {
				sj++
			}
			out.data[i*n+j] = d.data[si*d.c+sj]
		}
	}

	return out
}

// determinantLU computes det(A) as the signed product of U's diagonal from a
// Doolittle factorization with partial (row) pivoting. d is not modified.
//
// Implementation:
//   - Stage 1: copy the buffer.
//   - Stage 2: for each column k pick the row with the largest |a_ik|, swap
//     (flipping the sign), then eliminate below the pivot.
//   - Stage 3: an exactly zero pivot column means det = 0.
//
// Complexity: Time O(n³), Space O(n²).
func determinantLU(d *Dense) float64 {
	n := d.r
	a := make([]float64, len(d.data))
	copy(a, d.data)

	det := 1.0
	var (
		i, j, k, p int
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		pivot = a[p*n+k]
		if pivot == 0 {
			return 0
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}
		det *= pivot
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return det
}

// ComplementaryMinor returns the determinant of A with row i and column j removed.
//
// Errors (checked in this order):
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrOrderTooSmall (order < 2).
//
// Complexity: same as Determinant at order n-1.
func ComplementaryMinor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	if err := ValidateMinOrder(m, 2); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return determinantOf(minorOf(d, i, j)), nil
}

// Cofactor returns (-1)^(i+j) · ComplementaryMinor(A, i, j).
// Errors: as ComplementaryMinor.
func Cofactor(m Matrix, i, j int) (float64, error) {
	minor, err := ComplementaryMinor(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorSign(i, j) * minor, nil
}

// CofactorMatrix returns the same-order matrix C with C[i][j] = Cofactor(A, i, j).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOrderTooSmall (order 1 has no minors).
//
// Complexity: n² determinants of order n-1.
func CofactorMatrix(m Matrix) (*Dense, error) {
	if err := ValidateMinOrder(m, 2); err != nil {
		return nil, matrixErrorf(opCofactorMat, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactorMat, err)
	}
	n := d.r
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = cofactorSign(i, j) * determinantOf(minorOf(d, i, j))
		}
	}

	return res, nil
}

// Adjugate returns adj(A) = Transpose(CofactorMatrix(A)).
// Errors: as CofactorMatrix.
func Adjugate(m Matrix) (*Dense, error) {
	cof, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns A⁻¹.
// MAIN DESCRIPTION:
//   - Order 1: [[1/a]].
//   - Order ≥ 2: adj(A) · (1/det(A)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrDivisionByZero for the 1×1 matrix [[0]].
//   - ErrSingular when det(A) is exactly 0.
//
// Complexity: dominated by CofactorMatrix.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	if d.r == 1 {
		if d.data[0] == 0 {
			return nil, matrixErrorf(opInverse, ErrDivisionByZero)
		}

		return &Dense{r: 1, c: 1, data: []float64{1 / d.data[0]}}, nil
	}

	det := determinantOf(d)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj, err := Adjugate(d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return Scale(adj, 1/det)
}
