// SPDX-License-Identifier: MIT

package complexnum

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return newComplex(z.re+w.re, z.im+w.im)
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return newComplex(z.re-w.re, z.im-w.im)
}

// Mul returns z·w = (ac - bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	return newComplex(
		z.re*w.re-z.im*w.im,
		z.re*w.im+z.im*w.re,
	)
}

// Div returns z / w.
//
// Implementation:
//   - Stage 1: denominator c² + d²; exactly zero means w is the origin.
//   - Stage 2: ((ac + bd) + (bc - ad)i) / (c² + d²).
//
// Errors:
//   - ErrDivisionByZero when w has modulus 0.
func (z Complex) Div(w Complex) (Complex, error) {
	denom := w.re*w.re + w.im*w.im
	if denom == 0 {
		return Complex{}, complexErrorf(opDiv, ErrDivisionByZero)
	}

	return newComplex(
		(z.re*w.re+z.im*w.im)/denom,
		(z.im*w.re-z.re*w.im)/denom,
	), nil
}

// Conjugate returns a - bi.
func (z Complex) Conjugate() Complex {
	return newComplex(z.re, -z.im)
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return newComplex(-z.re, -z.im)
}

// Scale returns f·z for a real factor f.
func (z Complex) Scale(f float64) Complex {
	return newComplex(f*z.re, f*z.im)
}
