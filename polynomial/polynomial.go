// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/analytica/complexnum"
)

// Polynomial is a0·xⁿ + a1·xⁿ⁻¹ + … + an with real coefficients.
// The zero value is not usable; build one with New.
type Polynomial struct {
	coeffs []float64 // highest degree first; len >= 1; coeffs[0] != 0 when len > 1
}

// New builds a polynomial from coefficients ordered highest degree first.
// New(2, 0, 7) is 2x²+7. The slice is copied.
//
// Errors:
//   - ErrNoCoefficients for an empty list.
//   - ErrLeadingZero when more than one coefficient is given and the first is 0.
func New(coeffs ...float64) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, polyErrorf(opNew, ErrNoCoefficients)
	}
	if len(coeffs) > 1 && coeffs[0] == 0 {
		return nil, polyErrorf(opNew, ErrLeadingZero)
	}
	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)

	return &Polynomial{coeffs: cp}, nil
}

// Degree returns len(coefficients) - 1.
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficient returns the coefficient at index i (0 is the leading one).
func (p *Polynomial) Coefficient(i int) (float64, error) {
	if i < 0 || i >= len(p.coeffs) {
		return 0, polyErrorf(fmt.Sprintf("%s(%d)", opCoefficient, i), ErrOutOfRange)
	}

	return p.coeffs[i], nil
}

// SetCoefficient replaces the coefficient at index i.
//
// Errors:
//   - ErrOutOfRange for a bad index.
//   - ErrLeadingZero when i == 0, the degree is at least 1 and v == 0.
func (p *Polynomial) SetCoefficient(i int, v float64) error {
	if i < 0 || i >= len(p.coeffs) {
		return polyErrorf(fmt.Sprintf("%s(%d)", opSetCoefficient, i), ErrOutOfRange)
	}
	if i == 0 && len(p.coeffs) > 1 && v == 0 {
		return polyErrorf(opSetCoefficient, ErrLeadingZero)
	}
	p.coeffs[i] = v

	return nil
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Constant returns the constant term.
func (p *Polynomial) Constant() float64 { return p.coeffs[len(p.coeffs)-1] }

// Eval returns p(x) by Horner's rule.
// Complexity: O(n).
func (p *Polynomial) Eval(x float64) float64 {
	var acc float64
	for _, c := range p.coeffs {
		acc = acc*x + c
	}

	return acc
}

// EvalComplex returns p(z) by Horner's rule in complex arithmetic.
func (p *Polynomial) EvalComplex(z complexnum.Complex) complexnum.Complex {
	acc := complexnum.Zero
	for _, c := range p.coeffs {
		acc = acc.Mul(z).Add(complexnum.Real(c))
	}

	return acc
}

// HasPoint reports whether p(x) == y exactly.
func (p *Polynomial) HasPoint(x, y float64) bool { return p.Eval(x) == y }

// Derivative returns p'. The derivative of a constant is the constant 0.
func (p *Polynomial) Derivative() *Polynomial {
	n := len(p.coeffs)
	if n == 1 {
		return &Polynomial{coeffs: []float64{0}}
	}
	out := make([]float64, n-1)
	for i := range out {
		out[i] = float64(n-1-i) * p.coeffs[i]
	}

	return &Polynomial{coeffs: out}
}

// Scale returns f·p as a new polynomial; p is left untouched.
// Errors: ErrLeadingZero when f == 0 and the degree is at least 1.
func (p *Polynomial) Scale(f float64) (*Polynomial, error) {
	if f == 0 && len(p.coeffs) > 1 {
		return nil, polyErrorf(opScale, ErrLeadingZero)
	}
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c * f
	}

	return &Polynomial{coeffs: out}, nil
}

// Equal reports whether p and q have identical coefficient lists.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p == nil || q == nil {
		return p == q
	}
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}

	return true
}

var superscripts = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// superscript renders a non-negative integer with Unicode superscript digits.
func superscript(n int) string {
	digits := strconv.Itoa(n)
	var sb strings.Builder
	for _, d := range digits {
		sb.WriteString(superscripts[d-'0'])
	}

	return sb.String()
}

// String renders p like "2x³-x+7": zero terms are skipped, unit coefficients
// of non-constant terms are implicit and integral values carry no ".0".
func (p *Polynomial) String() string {
	n := len(p.coeffs)
	if n == 1 {
		return complexnum.FormatFloat(p.coeffs[0])
	}

	var sb strings.Builder
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		exp := n - 1 - i
		if sb.Len() > 0 && c > 0 {
			sb.WriteByte('+')
		}
		switch {
		case exp > 0 && c == 1:
		case exp > 0 && c == -1:
			sb.WriteByte('-')
		default:
			sb.WriteString(complexnum.FormatFloat(c))
		}
		switch {
		case exp == 1:
			sb.WriteByte('x')
		case exp > 1:
			sb.WriteByte('x')
			sb.WriteString(superscript(exp))
		}
	}

	return sb.String()
}
