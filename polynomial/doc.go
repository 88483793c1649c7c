// Package polynomial provides real-coefficient polynomials and closed-form
// root solvers for degrees 1, 2 and 3.
//
// 🚀 What is here?
//
//	Polynomial stores its coefficients highest degree first; the last entry is
//	always the constant term and the leading entry is never 0 (unless the
//	polynomial is a bare constant). Quadratic and Cubic compute every derived
//	quantity (delta, vertex, p, q and all roots) once, in their constructors,
//	and are read-only afterwards.
//
// ✨ Key features:
//   - Horner evaluation over float64 and over complexnum.Complex
//   - Derivative, Scale, HasPoint and a superscript rendering ("2x³-x+7")
//   - Quadratic formula and Cardano's method, both evaluated in complex
//     arithmetic so the same code path serves every discriminant sign
//
// ⚙️ Usage:
//
//	q, err := polynomial.NewQuadratic(1, 0, 1)
//	q.RootPlus()  // i
//	q.RootMinus() // -i
//
//	c, err := polynomial.NewCubic(1, -6, 11, -6)
//	c.Roots()     // ≈ 3, 1, 2 (real root first)
package polynomial
