// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analytica/matrix"
)

func TestDeterminant_SmallOrders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"2x2", [][]float64{{4, 7}, {2, 6}}, 10},
		{"3x3", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"3x3 singular", [][]float64{{2, 0, 1}, {1, 3, 2}, {1, 1, 1}}, 0},
		{"4x4 reference", [][]float64{
			{1, 0, 2, -1},
			{3, 0, 0, 5},
			{2, 1, 4, -3},
			{1, 0, 5, 0},
		}, 30},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustRows(t, tc.m...)
			got, err := matrix.Determinant(m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)

			got, err = matrix.Determinant(hide{m})
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestDeterminant_IdentityIsOne(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 12; n++ {
		got, err := matrix.Determinant(IdentityDense(t, n))
		require.NoError(t, err)
		assert.Equal(t, 1.0, got, "order %d", n)
	}
}

func TestDeterminant_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_LaplaceMatchesLU(t *testing.T) {
	t.Parallel()

	for n := 4; n <= matrix.LaplaceMaxOrder_TestOnly; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			m := RandFilledDense(t, n, n, int64(100+n))
			lap := matrix.DeterminantLaplace_TestOnly(m)
			lu := matrix.DeterminantLU_TestOnly(m)
			assert.InDelta(t, lap, lu, 1e-9*math.Max(1, math.Abs(lap)))
		})
	}
}

func TestDeterminant_LargeOrderUsesLU(t *testing.T) {
	t.Parallel()

	// Upper-triangular: det is the product of the diagonal.
	const n = 10
	m := MustDense(t, n, n)
	want := 1.0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			MustSet(t, m, i, j, float64(j-i+1))
		}
		MustSet(t, m, i, i, float64(i%3+1))
		want *= float64(i%3 + 1)
	}
	got, err := matrix.Determinant(m)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9*want)

	// Swapping two rows flips the sign.
	r0, err := m.RawRow(0)
	require.NoError(t, err)
	r1, err := m.RawRow(1)
	require.NoError(t, err)
	for j := 0; j < n; j++ {
		MustSet(t, m, 0, j, r1[j])
		MustSet(t, m, 1, j, r0[j])
	}
	got, err = matrix.Determinant(m)
	require.NoError(t, err)
	assert.InDelta(t, -want, got, 1e-9*want)
}

func TestComplementaryMinorAndCofactor(t *testing.T) {
	t.Parallel()

	m := MustRows(t, []float64{2, 0, 1}, []float64{1, 3, 2}, []float64{1, 1, 2})
	minor, err := matrix.ComplementaryMinor(m, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, minor)

	minor, err = matrix.ComplementaryMinor(m, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, minor)
	cof, err := matrix.Cofactor(m, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cof)

	_, err = matrix.ComplementaryMinor(MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.ComplementaryMinor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Cofactor(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ComplementaryMinor(MustRows(t, []float64{5}), 0, 0)
	require.ErrorIs(t, err, matrix.ErrOrderTooSmall)
}

func TestCofactorMatrixAndAdjugate(t *testing.T) {
	t.Parallel()

	m := MustRows(t, []float64{2, 0, 1}, []float64{1, 3, 2}, []float64{1, 1, 2})
	cof, err := matrix.CofactorMatrix(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 0, -2}, {1, 3, -2}, {-3, -3, 6}}, cof)

	adj, err := matrix.Adjugate(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 1, -3}, {0, 3, -3}, {-2, -2, 6}}, adj)

	_, err = matrix.CofactorMatrix(MustRows(t, []float64{1}))
	require.ErrorIs(t, err, matrix.ErrOrderTooSmall)
	_, err = matrix.Adjugate(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	m := MustRows(t, []float64{4, 7}, []float64{2, 6})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	CompareClose(t, MustRows(t, []float64{0.6, -0.7}, []float64{-0.2, 0.4}), inv, RtolTiny, AtolTiny)

	one, err := matrix.Inverse(MustRows(t, []float64{4}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, one)
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 6; n++ {
		m := RandFilledDense(t, n, n, int64(7*n))
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)

		left, err := matrix.Mul(m, inv)
		require.NoError(t, err)
		right, err := matrix.Mul(inv, m)
		require.NoError(t, err)

		id := IdentityDense(t, n)
		CompareClose(t, id, left, 0, 1e-8)
		CompareClose(t, id, right, 0, 1e-8)
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(MustRows(t, []float64{0}))
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	_, err = matrix.Inverse(MustRows(t, []float64{2, 0, 1}, []float64{1, 3, 2}, []float64{1, 1, 1}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
