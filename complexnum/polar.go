// SPDX-License-Identifier: MIT

package complexnum

import "math"

// oneThird is the real exponent used by the generic cube-root path.
const oneThird = 1.0 / 3.0

// Pow returns the principal value of z^w.
//
// Implementation:
//   - Stage 1: z = 0 yields 0 for every exponent, including 0^0.
//   - Stage 2: θ = Re(w)·arg z + Im(w)·ln|z|.
//   - Stage 3: factor = |z|^Re(w) · e^(-Im(w)·arg z).
//   - Stage 4: factor·(cos θ + i·sin θ), with exact sin/cos on multiples of π/2.
//
// Behavior highlights:
//   - Same formula as exp(w·ln z); total over the whole plane.
//
// Complexity:
//   - Time O(1).
func (z Complex) Pow(w Complex) Complex {
	if z.mod == 0 {
		return Zero
	}
	theta := w.re*z.arg + w.im*math.Log(z.mod)
	factor := math.Pow(z.mod, w.re) * math.Exp(-w.im*z.arg)
	sin, cos := sincos(theta)

	return newComplex(factor*cos, factor*sin)
}

// sincos is math.Sincos with exact 0 and ±1 when theta is an integer multiple
// of π/2; math.Cos(math.Pi/2) alone is 6.1e-17, which would leave a real
// residue on √-4 or on i².
func sincos(theta float64) (sin, cos float64) {
	k := theta / (math.Pi / 2)
	if k != math.Trunc(k) || math.Abs(k) > 1<<52 {
		return math.Sincos(theta)
	}
	switch int64(math.Mod(k, 4)+4) % 4 {
	case 0:
		return 0, 1
	case 1:
		return 1, 0
	case 2:
		return 0, -1
	default:
		return -1, 0
	}
}

// PowReal returns z^x for a real exponent x. Shorthand for z.Pow(Real(x)).
func (z Complex) PowReal(x float64) Complex {
	return z.Pow(Real(x))
}

// Sqrt returns the principal square root, z^(1/2).
// For a negative real -r the result is i·sqrt(r) (argument π/2).
func (z Complex) Sqrt() Complex {
	return z.Pow(Real(0.5))
}

// Cbrt returns a cube root of z.
//
// Behavior highlights:
//   - Negative reals return the real negative cube root (-8 → -2), not the
//     principal complex root (1+1.732i). The cubic solver relies on this branch
//     to keep its first root real.
//   - Everything else goes through the principal z^(1/3).
func (z Complex) Cbrt() Complex {
	if z.IsReal() && z.re < 0 {
		return Real(-math.Cbrt(-z.re))
	}

	return z.Pow(Real(oneThird))
}

// Ln returns the principal natural logarithm ln|z| + i·arg z.
// The principal branch is not injective: Ln(Exp(z)) need not equal z.
//
// Errors:
//   - ErrDomain when z is the origin.
func (z Complex) Ln() (Complex, error) {
	if z.mod == 0 {
		return Complex{}, complexErrorf(opLn, ErrDomain)
	}

	return newComplex(math.Log(z.mod), z.arg), nil
}

// Log returns the logarithm of z in the given base, Ln(z) / Ln(base).
//
// Errors:
//   - ErrDomain when z or base is the origin.
//   - ErrDivisionByZero when base is 1 (Ln(base) = 0).
func (z Complex) Log(base Complex) (Complex, error) {
	num, err := z.Ln()
	if err != nil {
		return Complex{}, complexErrorf(opLog, err)
	}
	den, err := base.Ln()
	if err != nil {
		return Complex{}, complexErrorf(opLog, err)
	}
	q, err := num.Div(den)
	if err != nil {
		return Complex{}, complexErrorf(opLog, err)
	}

	return q, nil
}

// Log10 returns the base-10 logarithm of z.
func (z Complex) Log10() (Complex, error) {
	return z.Log(Real(10))
}

// Exp returns e^z.
func (z Complex) Exp() Complex {
	return Polar(math.Exp(z.re), z.im)
}
