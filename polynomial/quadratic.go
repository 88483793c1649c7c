// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/analytica/complexnum"

// Point is a point of the real plane.
type Point struct {
	X, Y float64
}

// Quadratic is ax² + bx + c with a ≠ 0 and all derived state precomputed.
type Quadratic struct {
	base                Polynomial
	a, b, c             float64
	delta               float64
	vertex              Point
	rootPlus, rootMinus complexnum.Complex
}

// NewQuadratic builds ax² + bx + c and solves it.
//
// Implementation:
//   - Stage 1: delta = b² - 4ac as a plain real.
//   - Stage 2: vertex (-b/2a, -delta/4a).
//   - Stage 3: root± = (-b ± √delta) / 2a with √delta taken in complex
//     arithmetic, so delta < 0 yields a conjugate pair without a sign branch.
//
// Errors:
//   - ErrLeadingZero when a == 0.
func NewQuadratic(a, b, c float64) (*Quadratic, error) {
	if a == 0 {
		return nil, polyErrorf(opQuadratic, ErrLeadingZero)
	}
	delta := b*b - 4*a*c

	minusB := complexnum.Real(-b)
	rootDelta := complexnum.Real(delta).Sqrt()
	twoA := complexnum.Real(2 * a)
	plus, err := minusB.Add(rootDelta).Div(twoA)
	if err != nil {
		return nil, polyErrorf(opQuadratic, err)
	}
	minus, err := minusB.Sub(rootDelta).Div(twoA)
	if err != nil {
		return nil, polyErrorf(opQuadratic, err)
	}

	return &Quadratic{
		base:      Polynomial{coeffs: []float64{a, b, c}},
		a:         a,
		b:         b,
		c:         c,
		delta:     delta,
		vertex:    Point{X: -b / (2 * a), Y: -delta / (4 * a)},
		rootPlus:  plus,
		rootMinus: minus,
	}, nil
}

// A returns the coefficient of x².
func (q *Quadratic) A() float64 { return q.a }

// B returns the coefficient of x.
func (q *Quadratic) B() float64 { return q.b }

// C returns the constant term.
func (q *Quadratic) C() float64 { return q.c }

// Delta returns b² - 4ac.
func (q *Quadratic) Delta() float64 { return q.delta }

// Vertex returns the turning point of the parabola: a minimum when a > 0,
// a maximum when a < 0.
func (q *Quadratic) Vertex() Point { return q.vertex }

// RootPlus returns (-b + √delta) / 2a.
func (q *Quadratic) RootPlus() complexnum.Complex { return q.rootPlus }

// RootMinus returns (-b - √delta) / 2a.
func (q *Quadratic) RootMinus() complexnum.Complex { return q.rootMinus }

// Roots returns RootPlus and RootMinus, in that order.
func (q *Quadratic) Roots() []complexnum.Complex {
	return []complexnum.Complex{q.rootPlus, q.rootMinus}
}

// Polynomial returns an independent copy of the underlying polynomial.
func (q *Quadratic) Polynomial() *Polynomial { return &Polynomial{coeffs: q.base.Coefficients()} }

// Coefficients returns a, b, c.
func (q *Quadratic) Coefficients() []float64 { return q.base.Coefficients() }

// Eval returns ax² + bx + c.
func (q *Quadratic) Eval(x float64) float64 { return q.base.Eval(x) }

// EvalComplex returns az² + bz + c.
func (q *Quadratic) EvalComplex(z complexnum.Complex) complexnum.Complex {
	return q.base.EvalComplex(z)
}

func (q *Quadratic) String() string { return q.base.String() }
