// Package complexnum implements complex numbers with a dual rectangular/polar
// representation, built for closed-form root solving.
//
// 🚀 What is a Complex here?
//
//	An immutable value a+bi that carries its modulus |z| and principal
//	argument arg(z) ∈ (-π, π], both computed once in the constructor.
//	Every operation returns a fresh value, so no reader can ever see a
//	modulus that disagrees with the rectangular parts.
//
// ✨ Key features:
//   - rectangular arithmetic: Add, Sub, Mul, Div, Conjugate, Neg
//   - polar power: Pow(w) = exp(w·ln z), principal branch, total at z = 0
//   - roots: Sqrt, and Cbrt with the real branch for negative reals
//   - logarithms: Ln, Log(base), Log10 (principal branch)
//   - canonical "a+bi" rendering and its Parse inverse
//
// ⚙️ Usage:
//
//	z := complexnum.New(3, 4)
//	z.Modulus()              // 5
//	r := z.Sqrt()            // 2+i
//	q, err := z.Div(complexnum.I)
//
// Equality is exact (no epsilon); callers needing tolerance apply it
// themselves, e.g. with AlmostEqual.
package complexnum
