// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"

	"github.com/katalvlaran/analytica/complexnum"
)

var (
	// omega is the primitive cube root of unity (-1 + i√3)/2.
	omega = complexnum.New(-0.5, math.Sqrt(3)/2)
	// omegaBar is its conjugate.
	omegaBar = omega.Conjugate()
)

// Cubic is ax³ + bx² + cx + d with a ≠ 0, solved by Cardano's method at
// construction.
type Cubic struct {
	base                          Polynomial
	a, b, c, d                    float64
	p, q, delta                   float64
	realRoot, plusRoot, minusRoot complexnum.Complex
}

// NewCubic builds ax³ + bx² + cx + d and solves it.
//
// Implementation:
//   - Stage 1: depressed form t³ + pt + q with x = t - b/3a:
//     p = c/a - b²/3a², q = d/a - bc/3a² + 2b³/27a³, delta = q²/4 + p³/27.
//   - Stage 2: u = ∛(-q/2 + √delta), v = ∛(-q/2 - √delta) in complex
//     arithmetic; Cbrt keeps the real branch for negative reals.
//   - Stage 3: roots s+u+v, s+ωu+ω̄v, s+ω̄u+ωv with s = -b/3a.
//
// Behavior highlights:
//   - The first root is always real. The other two are real or a conjugate
//     pair; no branch on the sign of delta is taken.
//
// Errors:
//   - ErrLeadingZero when a == 0.
func NewCubic(a, b, c, d float64) (*Cubic, error) {
	if a == 0 {
		return nil, polyErrorf(opCubic, ErrLeadingZero)
	}
	a2, a3 := a*a, a*a*a
	p := c/a - b*b/(3*a2)
	q := d/a - b*c/(3*a2) + 2*b*b*b/(27*a3)
	delta := q*q/4 + p*p*p/27

	shift := complexnum.Real(-b / (3 * a))
	rootDelta := complexnum.Real(delta).Sqrt()
	halfQ := complexnum.Real(-q / 2)
	u := halfQ.Add(rootDelta).Cbrt()
	v := halfQ.Sub(rootDelta).Cbrt()

	return &Cubic{
		base:      Polynomial{coeffs: []float64{a, b, c, d}},
		a:         a,
		b:         b,
		c:         c,
		d:         d,
		p:         p,
		q:         q,
		delta:     delta,
		realRoot:  shift.Add(u).Add(v),
		plusRoot:  shift.Add(omega.Mul(u)).Add(omegaBar.Mul(v)),
		minusRoot: shift.Add(omegaBar.Mul(u)).Add(omega.Mul(v)),
	}, nil
}

// A returns the coefficient of x³.
func (c *Cubic) A() float64 { return c.a }

// B returns the coefficient of x².
func (c *Cubic) B() float64 { return c.b }

// C returns the coefficient of x.
func (c *Cubic) C() float64 { return c.c }

// D returns the constant term.
func (c *Cubic) D() float64 { return c.d }

// P returns the linear coefficient of the depressed cubic.
func (c *Cubic) P() float64 { return c.p }

// Q returns the constant term of the depressed cubic.
func (c *Cubic) Q() float64 { return c.q }

// Delta returns q²/4 + p³/27. Positive means one real root and a conjugate
// pair; negative means three distinct real roots.
func (c *Cubic) Delta() float64 { return c.delta }

// RealRoot returns the root that is always real.
func (c *Cubic) RealRoot() complexnum.Complex { return c.realRoot }

// PlusRoot returns the root built with ω·u; for a conjugate pair it carries
// the positive imaginary part when u is real and positive.
func (c *Cubic) PlusRoot() complexnum.Complex { return c.plusRoot }

// MinusRoot returns the root built with ω̄·u.
func (c *Cubic) MinusRoot() complexnum.Complex { return c.minusRoot }

// Roots returns RealRoot, PlusRoot and MinusRoot, in that order.
func (c *Cubic) Roots() []complexnum.Complex {
	return []complexnum.Complex{c.realRoot, c.plusRoot, c.minusRoot}
}

// Polynomial returns an independent copy of the underlying polynomial.
func (c *Cubic) Polynomial() *Polynomial { return &Polynomial{coeffs: c.base.Coefficients()} }

// Coefficients returns a, b, c, d.
func (c *Cubic) Coefficients() []float64 { return c.base.Coefficients() }

// Eval returns ax³ + bx² + cx + d.
func (c *Cubic) Eval(x float64) float64 { return c.base.Eval(x) }

// EvalComplex returns the polynomial at z.
func (c *Cubic) EvalComplex(z complexnum.Complex) complexnum.Complex {
	return c.base.EvalComplex(z)
}

func (c *Cubic) String() string { return c.base.String() }
