// Package complexnum_test contains unit tests for construction, accessors
// and rectangular arithmetic of Complex.
package complexnum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/analytica/complexnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tol is the rounding tolerance used for polar round-trips.
const tol = 1e-12

// TestNew_ModulusArgument checks derived polar state against known points.
func TestNew_ModulusArgument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		re, im  float64
		wantMod float64
		wantArg float64
	}{
		{"origin", 0, 0, 0, 0},
		{"3+4i", 3, 4, 5, 0.9272952180016122},
		{"positive real", 2, 0, 2, 0},
		{"negative real", -2, 0, 2, math.Pi},
		{"negative real, -0 imaginary", -2, math.Copysign(0, -1), 2, math.Pi},
		{"positive imaginary", 0, 1, 1, math.Pi / 2},
		{"negative imaginary", 0, -1, 1, -math.Pi / 2},
		{"third quadrant", -1, -1, math.Sqrt2, -3 * math.Pi / 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			z := complexnum.New(tc.re, tc.im)
			assert.InDelta(t, tc.wantMod, z.Modulus(), tol, "modulus")
			assert.InDelta(t, tc.wantArg, z.Argument(), tol, "argument")
			assert.Greater(t, z.Argument(), -math.Pi, "argument must stay above -π")
			assert.LessOrEqual(t, z.Argument(), math.Pi, "argument must stay at or below π")
		})
	}
}

// TestWithRealImag_RecomputesDerivedState ensures "setters" never leave stale polar data.
func TestWithRealImag_RecomputesDerivedState(t *testing.T) {
	z := complexnum.New(3, 4)

	w := z.WithImag(0)
	assert.Equal(t, 3.0, w.Modulus())
	assert.Equal(t, 0.0, w.Argument())

	v := z.WithReal(0)
	assert.Equal(t, 4.0, v.Modulus())
	assert.InDelta(t, math.Pi/2, v.Argument(), tol)

	// the original is untouched
	assert.Equal(t, 5.0, z.Modulus())
}

// TestArithmetic covers Add, Sub, Mul, Conjugate and Neg on exact inputs.
func TestArithmetic(t *testing.T) {
	a := complexnum.New(1, 2)
	b := complexnum.New(3, -1)

	assert.True(t, a.Add(b).Equal(complexnum.New(4, 1)))
	assert.True(t, a.Sub(b).Equal(complexnum.New(-2, 3)))
	assert.True(t, a.Mul(b).Equal(complexnum.New(5, 5)))
	assert.True(t, a.Conjugate().Equal(complexnum.New(1, -2)))
	assert.True(t, a.Neg().Equal(complexnum.New(-1, -2)))
	assert.True(t, a.Scale(2).Equal(complexnum.New(2, 4)))
	assert.True(t, complexnum.I.Mul(complexnum.I).Equal(complexnum.Real(-1)))
}

// TestDiv verifies quotient values and the division-by-zero sentinel.
func TestDiv(t *testing.T) {
	q, err := complexnum.New(5, 5).Div(complexnum.New(3, -1))
	require.NoError(t, err)
	assert.True(t, q.AlmostEqual(complexnum.New(1, 2), tol), "got %v", q)

	_, err = complexnum.One.Div(complexnum.Zero)
	require.ErrorIs(t, err, complexnum.ErrDivisionByZero)
}

// TestEqual_IsExact documents that Equal applies no tolerance.
func TestEqual_IsExact(t *testing.T) {
	a := complexnum.New(0.1+0.2, 0)
	b := complexnum.New(0.3, 0)
	assert.False(t, a.Equal(b))
	assert.True(t, a.AlmostEqual(b, 1e-15))
}

// TestCompare orders by real part then imaginary part.
func TestCompare(t *testing.T) {
	assert.Equal(t, -1, complexnum.New(1, 5).Compare(complexnum.New(2, 0)))
	assert.Equal(t, 1, complexnum.New(1, 5).Compare(complexnum.New(1, 4)))
	assert.Equal(t, 0, complexnum.New(1, 5).Compare(complexnum.New(1, 5)))
}

// TestComplex128RoundTrip checks conversion to and from the builtin type.
func TestComplex128RoundTrip(t *testing.T) {
	z := complexnum.New(-1.5, 2.25)
	assert.Equal(t, complex(-1.5, 2.25), z.Complex128())
	assert.True(t, complexnum.FromComplex128(z.Complex128()).Equal(z))
}
