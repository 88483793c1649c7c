// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"
	"strconv"
	"strings"
)

// maxIntegral bounds the magnitude rendered in plain integer notation.
// Larger integral values fall back to the shortest exponent form.
const maxIntegral = 1e15

// FormatFloat renders x in its shortest form; integral values never carry
// a trailing ".0" (3 → "3", 0.5 → "0.5") and negative zero prints as "0".
func FormatFloat(x float64) string {
	if x == 0 {
		x = 0
	}
	if x == math.Trunc(x) && math.Abs(x) < maxIntegral {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	return strconv.FormatFloat(x, 'g', -1, 64)
}

// String renders z in the canonical "a+bi" form.
//
// Rules:
//   - the origin renders as "0";
//   - a zero real part is omitted ("4i", "-i");
//   - a zero imaginary part is omitted ("3");
//   - an imaginary coefficient of ±1 renders as bare "i"/"-i" ("2+i", "2-i").
func (z Complex) String() string {
	if z.re == 0 && z.im == 0 {
		return "0"
	}

	var b strings.Builder
	if z.re != 0 {
		b.WriteString(FormatFloat(z.re))
	}
	switch {
	case z.im == 0:
		// real only
	case z.im == 1:
		if z.re != 0 {
			b.WriteByte('+')
		}
		b.WriteByte('i')
	case z.im == -1:
		b.WriteString("-i")
	case z.im > 0:
		if z.re != 0 {
			b.WriteByte('+')
		}
		b.WriteString(FormatFloat(z.im))
		b.WriteByte('i')
	default:
		b.WriteString(FormatFloat(z.im)) // sign carried by the number
		b.WriteByte('i')
	}

	return b.String()
}

// Parse reads a complex number written in the form produced by String.
//
// Accepted shapes: "a", "bi", "a+bi", "a-bi", "i", "+i", "-i", "a+i", "a-i".
// Blanks are ignored; the empty string parses as 0. Exponent notation
// ("1e-05+2.5e3i") is accepted.
//
// Errors:
//   - ErrSyntax on anything else.
func Parse(s string) (Complex, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return Zero, nil
	}
	if !strings.HasSuffix(s, "i") {
		re, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Complex{}, complexErrorf(opParse, ErrSyntax)
		}

		return Real(re), nil
	}

	body := s[:len(s)-1]
	split := imaginarySplit(body)
	rePart, imPart := body[:split], body[split:]

	var re float64
	if rePart != "" {
		v, err := strconv.ParseFloat(rePart, 64)
		if err != nil {
			return Complex{}, complexErrorf(opParse, ErrSyntax)
		}
		re = v
	}

	var im float64
	switch imPart {
	case "", "+":
		im = 1
	case "-":
		im = -1
	default:
		v, err := strconv.ParseFloat(imPart, 64)
		if err != nil {
			return Complex{}, complexErrorf(opParse, ErrSyntax)
		}
		im = v
	}

	return New(re, im), nil
}

// imaginarySplit returns the index where the imaginary coefficient starts in
// body (the input without its trailing "i"): the last sign that is neither
// leading nor part of an exponent. Returns 0 when body is a pure imaginary.
func imaginarySplit(body string) int {
	for k := len(body) - 1; k > 0; k-- {
		if body[k] != '+' && body[k] != '-' {
			continue
		}
		if prev := body[k-1]; prev == 'e' || prev == 'E' {
			continue
		}

		return k
	}

	return 0
}
