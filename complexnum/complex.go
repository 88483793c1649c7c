// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Complex is an immutable complex number a+bi.
// mod and arg are derived from re/im in newComplex and never change afterwards.
type Complex struct {
	re, im float64 // rectangular parts
	mod    float64 // |z| >= 0
	arg    float64 // principal argument in (-π, π]; 0 at the origin
}

var (
	// Zero is the additive identity 0+0i.
	Zero = New(0, 0)

	// One is the multiplicative identity 1+0i.
	One = New(1, 0)

	// I is the imaginary unit 0+1i, the principal square root of -1.
	I = New(0, 1)
)

// New returns the complex number re + im·i.
// Complexity: O(1).
func New(re, im float64) Complex {
	return newComplex(re, im)
}

// Real returns the complex number x + 0i.
func Real(x float64) Complex {
	return newComplex(x, 0)
}

// Polar returns the complex number r·(cos θ + i·sin θ).
// A negative r is accepted and flips the point through the origin.
func Polar(r, theta float64) Complex {
	sin, cos := sincos(theta)

	return newComplex(r*cos, r*sin)
}

// newComplex is the single place where derived polar state is computed.
//
// Implementation:
//   - Stage 1: modulus via math.Hypot (no intermediate overflow).
//   - Stage 2: argument via Atan2; the sign follows the imaginary part, so a
//     negative real with imaginary -0 still lands on +π, keeping arg in (-π, π].
//   - Stage 3: the origin gets arg = 0 by convention, which keeps Pow and Ln total.
func newComplex(re, im float64) Complex {
	mod := math.Hypot(re, im)
	if mod == 0 {
		return Complex{re: re, im: im}
	}
	arg := math.Atan2(math.Abs(im), re)
	if im < 0 {
		arg = -arg
	}

	return Complex{re: re, im: im, mod: mod, arg: arg}
}

// Real returns the real part.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary part.
func (z Complex) Imag() float64 { return z.im }

// Modulus returns |z| = sqrt(re² + im²), always >= 0.
func (z Complex) Modulus() float64 { return z.mod }

// Argument returns the principal angle of z in (-π, π]; 0 for the origin.
func (z Complex) Argument() float64 { return z.arg }

// WithReal returns a copy of z with its real part replaced.
// Derived modulus and argument are recomputed before the value is returned.
func (z Complex) WithReal(re float64) Complex { return newComplex(re, z.im) }

// WithImag returns a copy of z with its imaginary part replaced.
func (z Complex) WithImag(im float64) Complex { return newComplex(z.re, im) }

// IsReal reports whether the imaginary part is exactly zero.
func (z Complex) IsReal() bool { return z.im == 0 }

// IsZero reports whether z is the origin.
func (z Complex) IsZero() bool { return z.mod == 0 }

// Equal compares rectangular parts exactly, with no tolerance.
func (z Complex) Equal(w Complex) bool {
	return z.re == w.re && z.im == w.im
}

// AlmostEqual reports whether both rectangular parts of z and w differ by at most tol.
func (z Complex) AlmostEqual(w Complex, tol float64) bool {
	return math.Abs(z.re-w.re) <= tol && math.Abs(z.im-w.im) <= tol
}

// Compare orders by real part first, then by imaginary part.
// Returns -1, 0 or +1.
func (z Complex) Compare(w Complex) int {
	switch {
	case z.re < w.re:
		return -1
	case z.re > w.re:
		return 1
	case z.im < w.im:
		return -1
	case z.im > w.im:
		return 1
	}

	return 0
}

// Complex128 converts z to the builtin complex128.
func (z Complex) Complex128() complex128 { return complex(z.re, z.im) }

// FromComplex128 converts a builtin complex128 into a Complex.
func FromComplex128(c complex128) Complex { return newComplex(real(c), imag(c)) }
