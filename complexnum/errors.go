// SPDX-License-Identifier: MIT

package complexnum

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when a divisor has modulus 0.
	ErrDivisionByZero = errors.New("complexnum: division by zero")

	// ErrDomain is returned when an operation is undefined for its input,
	// e.g. the logarithm of 0.
	ErrDomain = errors.New("complexnum: argument outside function domain")

	// ErrSyntax is returned by Parse on malformed "a+bi" input.
	ErrSyntax = errors.New("complexnum: invalid syntax")
)

// Operation tags for error wrapping.
const (
	opDiv   = "Div"
	opLn    = "Ln"
	opLog   = "Log"
	opParse = "Parse"
)

// complexErrorf wraps err with an operation tag, preserving it for errors.Is.
func complexErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
