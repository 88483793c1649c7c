package complexnum_test

import (
	"fmt"

	"github.com/katalvlaran/analytica/complexnum"
)

// ExampleComplex demonstrates rectangular arithmetic and the canonical rendering.
func ExampleComplex() {
	z := complexnum.New(3, 4)
	fmt.Println(z, z.Modulus())
	fmt.Println(z.Conjugate())
	fmt.Println(z.Mul(complexnum.I))

	q, err := z.Div(complexnum.New(1, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(q)

	// Output:
	// 3+4i 5
	// 3-4i
	// -4+3i
	// 2.2-0.4i
}

// ExampleComplex_Cbrt shows the real branch taken for negative reals.
func ExampleComplex_Cbrt() {
	fmt.Println(complexnum.Real(-8).Cbrt())

	// Output:
	// -2
}

// ExampleParse parses the canonical form back into a value.
func ExampleParse() {
	z, err := complexnum.Parse("2-i")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(z.Real(), z.Imag())

	// Output:
	// 2 -1
}
