// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private determinant kernels.
//
// Purpose:
//   - Expose the Laplace expansion and the LU determinant to matrix_test so
//     the two can be compared on orders where Determinant would pick only one.
//
// Build Policy:
//   - The file name ends in _test.go, so it compiles only into test binaries.

// DeterminantLaplace_TestOnly evaluates det(m) by first-row cofactor expansion
// regardless of order. m must be a square *Dense of order >= 1.
func DeterminantLaplace_TestOnly(m *Dense) float64 {
	if m.r <= 3 {
		return determinantOf(m)
	}

	return laplace(m)
}

// DeterminantLU_TestOnly evaluates det(m) through the pivoted LU kernel.
func DeterminantLU_TestOnly(m *Dense) float64 {
	return determinantLU(m)
}

// LaplaceMaxOrder_TestOnly mirrors laplaceMaxOrder.
const LaplaceMaxOrder_TestOnly = laplaceMaxOrder
