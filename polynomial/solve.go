// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/analytica/complexnum"

// LinearRoot returns the root -b/a of ax + b.
// Errors: ErrLeadingZero when a == 0.
func LinearRoot(a, b float64) (complexnum.Complex, error) {
	if a == 0 {
		return complexnum.Zero, polyErrorf(opLinear, ErrLeadingZero)
	}

	return complexnum.Real(-b / a), nil
}

// Solve returns every root of the polynomial with the given coefficients
// (highest degree first), dispatching on degree:
//   - 1: [LinearRoot]
//   - 2: [RootPlus, RootMinus]
//   - 3: [RealRoot, PlusRoot, MinusRoot]
//
// Errors:
//   - ErrUnsupportedDegree for degree 0 or above 3.
//   - ErrLeadingZero when the first coefficient is 0.
func Solve(coeffs ...float64) ([]complexnum.Complex, error) {
	switch len(coeffs) {
	case 2:
		r, err := LinearRoot(coeffs[0], coeffs[1])
		if err != nil {
			return nil, polyErrorf(opSolve, err)
		}

		return []complexnum.Complex{r}, nil
	case 3:
		q, err := NewQuadratic(coeffs[0], coeffs[1], coeffs[2])
		if err != nil {
			return nil, polyErrorf(opSolve, err)
		}

		return q.Roots(), nil
	case 4:
		c, err := NewCubic(coeffs[0], coeffs[1], coeffs[2], coeffs[3])
		if err != nil {
			return nil, polyErrorf(opSolve, err)
		}

		return c.Roots(), nil
	default:
		return nil, polyErrorf(opSolve, ErrUnsupportedDegree)
	}
}
