// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/analytica/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type takes the interface path and agrees with the fast path.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 4, 7)
	b := RandFilledDense(t, 4, 4, 8)

	for name, op := range map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add": matrix.Add,
		"Sub": matrix.Sub,
		"Mul": matrix.Mul,
	} {
		fast, err := op(a, b)
		require.NoError(t, err, name)
		slow, err := op(hide{a}, hide{b})
		require.NoError(t, err, name)
		CompareClose(t, fast, slow, 0, 1e-12)
	}
}

// ---------- Add / Sub ----------

func TestAdd_SameShape(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, 2}, []float64{3, 4})
	b := MustRows(t, []float64{10, 20}, []float64{30, 40})
	s, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, s)

	// Operands untouched.
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

func TestAdd_ZeroPadsMismatchedShapes(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, 2}, []float64{3, 4})
	b := MustRows(t,
		[]float64{1, 1, 1},
		[]float64{1, 1, 1},
		[]float64{1, 1, 1},
	)
	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, b}, {b, a}} {
		s, err := matrix.Add(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, 3, s.Rows())
		require.Equal(t, 3, s.Cols())
		CompareExact(t, [][]float64{{2, 3, 1}, {4, 5, 1}, {1, 1, 1}}, s)
	}
}

func TestSub_ZeroPadsMismatchedShapes(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{5, 5}, []float64{5, 5})
	b := MustRows(t,
		[]float64{1, 2, 3},
		[]float64{4, 5, 6},
		[]float64{7, 8, 9},
	)
	d, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 3, -3}, {1, 0, -6}, {-7, -8, -9}}, d)

	// Rectangular padding: 1×3 minus 2×1 gives 2×3.
	row := MustRows(t, []float64{1, 2, 3})
	col := MustRows(t, []float64{1}, []float64{1})
	d, err = matrix.Sub(row, col)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 2, 3}, {-1, 0, 0}}, d)
}

func TestAddSub_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.Add(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(MustDense(t, 1, 1), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Mul ----------

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	b := MustRows(t, []float64{7, 8}, []float64{9, 10}, []float64{11, 12})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, p)

	q, err := matrix.Mul(b, a)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Rows())
	assert.Equal(t, 3, q.Cols())
}

func TestMul_NotCommutative(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, 2}, []float64{3, 4})
	b := MustRows(t, []float64{0, 1}, []float64{1, 0})
	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	ba, err := matrix.Mul(b, a)
	require.NoError(t, err)
	assert.False(t, matrix.Equal(ab, ba))
	CompareExact(t, [][]float64{{2, 1}, {4, 3}}, ab)
	CompareExact(t, [][]float64{{3, 4}, {1, 2}}, ba)
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 5, 5, 42)
	p, err := matrix.Mul(a, IdentityDense(t, 5))
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, p))
}

// ---------- Transpose / Scale ----------

func TestTranspose_Involution_NoMutation(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	att, err := matrix.Transpose(hide{at})
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, att))
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a)
}

func TestScale_DoesNotMutateOperand(t *testing.T) {
	t.Parallel()

	a := MustRows(t, []float64{1, -2}, []float64{0.5, 4})
	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -4}, {1, 8}}, s)
	CompareExact(t, [][]float64{{1, -2}, {0.5, 4}}, a)

	s, err = matrix.Scale(hide{a}, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, s)

	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Pow ----------

func TestPow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, []float64{1, 2}, []float64{3, 4})

	p0, err := matrix.Pow(m, 0)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(IdentityDense(t, 2), p0))

	p1, err := matrix.Pow(m, 1)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(m, p1))

	p3, err := matrix.Pow(m, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{37, 54}, {81, 118}}, p3)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = matrix.Pow(m, -1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)
	_, err = matrix.Pow(MustDense(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
