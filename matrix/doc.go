// Package matrix implements a small dense linear-algebra engine for
// closed-form work on small-to-moderate real matrices.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     in-place Apply transform; every other operation returns a new *Dense.
//   - Element-wise Add/Sub with a permissive zero-padding policy for
//     mismatched shapes, Scale, Transpose, Mul and integer Pow.
//   - Determinant with hard-coded fast paths for orders 1..3 and Laplace
//     expansion along the first row above that; Cofactor,
//     ComplementaryMinor, CofactorMatrix, Adjugate and an adjugate-based
//     Inverse.
//   - Two renderings: a brace-nested compact String and a column-aligned
//     multi-line Aligned.
//
// Cofactor expansion is exponential in the order. It is the intended cost
// for the orders this package targets; above order 8 the determinant
// switches to a partially pivoted LU elimination.
//
// See example_test.go for usage patterns.
package matrix
