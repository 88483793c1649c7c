// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCoefficients is returned when a polynomial is built from an empty list.
	ErrNoCoefficients = errors.New("polynomial: no coefficients")

	// ErrLeadingZero is returned when the leading coefficient of a polynomial of
	// degree >= 1 would be 0.
	ErrLeadingZero = errors.New("polynomial: leading coefficient must be non-zero")

	// ErrOutOfRange is returned for a coefficient index outside [0, Degree()].
	ErrOutOfRange = errors.New("polynomial: coefficient index out of range")

	// ErrUnsupportedDegree is returned by Solve for degrees other than 1, 2 and 3.
	ErrUnsupportedDegree = errors.New("polynomial: no closed-form solver for this degree")
)

// Operation tags for error wrapping.
const (
	opNew            = "New"
	opCoefficient    = "Coefficient"
	opSetCoefficient = "SetCoefficient"
	opScale          = "Scale"
	opQuadratic      = "NewQuadratic"
	opCubic          = "NewCubic"
	opLinear         = "LinearRoot"
	opSolve          = "Solve"
)

// polyErrorf wraps err with an operation tag.
func polyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
