// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via matrixErrorf; callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> numeric (division by zero, singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates row data whose rows do not all have the same length.
	ErrRaggedRows = errors.New("matrix: rows have inconsistent column counts")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOrderTooSmall signals a square matrix whose order is below what the
	// operation needs (minors and cofactor matrices need order >= 2).
	ErrOrderTooSmall = errors.New("matrix: order too small")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDivisionByZero is returned when inverting the 1×1 matrix [[0]].
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrSingular is returned by Inverse when the determinant is exactly 0:
	// the inverse does not exist.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNegativeExponent is returned by Pow for exponents < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")
)

// ErrAsymmetry is returned by ValidateSymmetric when a_ij and a_ji differ by more than the tolerance.
var ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
