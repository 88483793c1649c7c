// Package analytica is a small numeric toolkit: complex numbers, square-matrix
// algebra and closed-form roots of low-degree polynomials.
//
// 🚀 What is inside?
//
//	• complexnum – immutable complex values with cached modulus/argument,
//	               arithmetic, principal powers, roots and logarithms
//	• matrix     – dense row-major matrices: determinant (Laplace up to order 8,
//	               pivoted LU above), minors, cofactors, adjugate, inverse, products
//	• polynomial – Horner evaluation, derivative, quadratic and cubic (Cardano)
//	               solvers returning complex roots
//
// Everything is pure Go. Library packages never log and never panic on user
// input: failures come back as sentinel errors to be matched with errors.Is.
//
// The analytica command (cmd/analytica) puts the packages behind a CLI:
//
//	analytica complex mul 3+4i 1-2i          # 11-2i
//	analytica matrix det --rows "1,2;3,4"    # -2
//	analytica roots -- 1 -6 11 -6            # 3, 1, 2 (up to rounding)
//	analytica plot --out f.png -- 1 0 -4     # curve + real roots
//	analytica batch jobs.yaml                # concurrent job file
//
//	go install github.com/katalvlaran/analytica/cmd/analytica@latest
package analytica
