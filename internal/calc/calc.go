// SPDX-License-Identifier: MIT

// Package calc maps operation names used on the command line and in batch
// job files onto the complexnum, matrix and polynomial packages, and renders
// their results as text.
package calc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/analytica/complexnum"
	"github.com/katalvlaran/analytica/matrix"
)

var (
	// ErrUnknownOp is returned for an operation name that is not registered.
	ErrUnknownOp = errors.New("calc: unknown operation")

	// ErrArity is returned when an operation receives the wrong number of operands.
	ErrArity = errors.New("calc: wrong number of operands")

	// ErrParse is returned for malformed numeric input.
	ErrParse = errors.New("calc: cannot parse input")
)

// Matrix rendering styles.
const (
	StyleAligned = "aligned"
	StyleCompact = "compact"
)

// complexOp is one named complex operation with a fixed arity.
type complexOp struct {
	arity int
	apply func(args []complexnum.Complex) (complexnum.Complex, error)
}

func unary(f func(z complexnum.Complex) complexnum.Complex) complexOp {
	return complexOp{arity: 1, apply: func(a []complexnum.Complex) (complexnum.Complex, error) { return f(a[0]), nil }}
}

func unaryErr(f func(z complexnum.Complex) (complexnum.Complex, error)) complexOp {
	return complexOp{arity: 1, apply: func(a []complexnum.Complex) (complexnum.Complex, error) { return f(a[0]) }}
}

func binary(f func(z, w complexnum.Complex) complexnum.Complex) complexOp {
	return complexOp{arity: 2, apply: func(a []complexnum.Complex) (complexnum.Complex, error) { return f(a[0], a[1]), nil }}
}

var complexOps = map[string]complexOp{
	"add":   binary(complexnum.Complex.Add),
	"sub":   binary(complexnum.Complex.Sub),
	"mul":   binary(complexnum.Complex.Mul),
	"pow":   binary(complexnum.Complex.Pow),
	"div":   {arity: 2, apply: func(a []complexnum.Complex) (complexnum.Complex, error) { return a[0].Div(a[1]) }},
	"log":   {arity: 2, apply: func(a []complexnum.Complex) (complexnum.Complex, error) { return a[0].Log(a[1]) }},
	"sqrt":  unary(complexnum.Complex.Sqrt),
	"cbrt":  unary(complexnum.Complex.Cbrt),
	"conj":  unary(complexnum.Complex.Conjugate),
	"neg":   unary(complexnum.Complex.Neg),
	"exp":   unary(complexnum.Complex.Exp),
	"ln":    unaryErr(complexnum.Complex.Ln),
	"log10": unaryErr(complexnum.Complex.Log10),
}

// ComplexOps lists the registered complex operation names in sorted order.
func ComplexOps() []string {
	names := make([]string, 0, len(complexOps))
	for name := range complexOps {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ComplexArity returns the operand count of op, or ErrUnknownOp.
func ComplexArity(op string) (int, error) {
	c, ok := complexOps[op]
	if !ok {
		return 0, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}

	return c.arity, nil
}

// Complex applies the named operation. For "log" the second operand is the base;
// for "pow" it is the exponent.
func Complex(op string, args []complexnum.Complex) (complexnum.Complex, error) {
	c, ok := complexOps[op]
	if !ok {
		return complexnum.Zero, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}
	if len(args) != c.arity {
		return complexnum.Zero, fmt.Errorf("%s wants %d operand(s), got %d: %w", op, c.arity, len(args), ErrArity)
	}

	return c.apply(args)
}

// ParseComplexArgs parses every string with complexnum.Parse.
func ParseComplexArgs(raw []string) ([]complexnum.Complex, error) {
	out := make([]complexnum.Complex, len(raw))
	for i, s := range raw {
		z, err := complexnum.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		out[i] = z
	}

	return out, nil
}

// ComplexInfo renders z with its modulus and argument.
func ComplexInfo(z complexnum.Complex) string {
	return fmt.Sprintf("z=%s re=%s im=%s modulus=%s argument=%s",
		z,
		complexnum.FormatFloat(z.Real()),
		complexnum.FormatFloat(z.Imag()),
		complexnum.FormatFloat(z.Modulus()),
		complexnum.FormatFloat(z.Argument()),
	)
}

// ParseFloats parses each string as a float64.
func ParseFloats(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrParse)
		}
		out[i] = v
	}

	return out, nil
}

// ParseRows parses "1,2;3,4" into [][]float64{{1, 2}, {3, 4}}. Row shape is
// checked later by matrix.NewDenseFromRows.
func ParseRows(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty matrix: %w", ErrParse)
	}
	lines := strings.Split(s, ";")
	rows := make([][]float64, len(lines))
	for i, line := range lines {
		row, err := ParseFloats(strings.Split(line, ","))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows[i] = row
	}

	return rows, nil
}

// FormatRoots renders roots as a comma-separated list.
func FormatRoots(roots []complexnum.Complex) string {
	parts := make([]string, len(roots))
	for i, r := range roots {
		parts[i] = r.String()
	}

	return strings.Join(parts, ", ")
}

// RenderMatrix renders m in the given style; unknown styles fall back to aligned.
func RenderMatrix(m *matrix.Dense, style string) string {
	if style == StyleCompact {
		return m.String()
	}

	return m.Aligned()
}
