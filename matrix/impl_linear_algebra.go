// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// padded element-wise addition and subtraction, matrix multiplication,
// transpose, scalar scaling and integer powers.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Keep every kernel allocation-explicit: operands are read, a fresh *Dense is returned.
//
// Notes:
//   - Determinant, cofactors and inverse live in impl_determinant.go.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opPow         = "Pow"
	opDet         = "Determinant"
	opMinor       = "ComplementaryMinor"
	opCofactor    = "Cofactor"
	opCofactorMat = "CofactorMatrix"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Inverse: Determinant: ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// valueOrZero reads m(i, j) when (i, j) lies inside m and returns 0 otherwise.
// It is the bounds-checked read behind the padded Add/Sub policy.
func valueOrZero(m Matrix, i, j int) (float64, error) {
	if i >= m.Rows() || j >= m.Cols() {
		return 0, nil
	}

	return m.At(i, j)
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} over the padded shape.
// MAIN DESCRIPTION:
//   - The result shape is (max(a.Rows, b.Rows) × max(a.Cols, b.Cols)); an entry
//     missing from one operand counts as 0. Shapes never cause an error here.
//
// Implementation:
//   - Stage 1: ValidateNotNil on both operands. Allocate the padded result.
//   - Stage 2: Fast-path when both are *Dense of identical shape (single flat loop).
//   - Stage 3: Otherwise read through valueOrZero with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(R*C), Space O(R*C) where R, C are the padded dimensions.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := max(a.Rows(), b.Rows()), max(a.Cols(), b.Cols())
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: same-shape *Dense operands → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB && da.r == db.r && da.c == db.c {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = valueOrZero(a, i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = valueOrZero(b, i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Operands of different shapes are zero-padded to the larger extent in each
// dimension: a 2×2 plus a 3×3 yields a 3×3 whose last row and column equal B's.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense,
// with the same zero-padding policy as Add.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Behavior highlights:
//   - Not commutative: operand order is respected.
//   - Deterministic triple loops; one allocation for C.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k  int
		aik, bkj float64
		sum      float64
	)

	// Fast path: i→k→j over flat slices; B rows are walked contiguously.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < rows; i++ {
				rowC := res.data[i*cols : (i+1)*cols]
				for k = 0; k < inner; k++ {
					aik = da.data[i*inner+k]
					if aik == 0 {
						continue
					}
					rowB := db.data[k*cols : (k+1)*cols]
					for j = 0; j < cols; j++ {
						rowC[j] += aik * rowB[j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: i→j→k with one accumulator per cell.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				if aik, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += aik * bkj
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns Aᵀ. Transpose(Transpose(A)) equals A.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var (
		i, j int
		v    float64
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·A as a fresh matrix; A is left untouched.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := src.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// Pow raises a square matrix to a non-negative integer power.
// MAIN DESCRIPTION:
//   - exp == 0 returns the identity of matching order; otherwise the product
//     A·A·…·A (exp factors) by repeated multiplication.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
//
// Complexity:
//   - Time O(exp*n³), Space O(n²).
func Pow(m Matrix, exp int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if exp < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}
	if exp == 0 {
		return NewIdentity(m.Rows())
	}

	base, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	res := base.clone()
	for step := 1; step < exp; step++ {
		if res, err = Mul(res, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}
