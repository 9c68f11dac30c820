package symbol_test

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/symbol"
)

// ExampleAddOf demonstrates canonical simplification of a sum.
func ExampleAddOf() {
	x := symbol.S("x")

	sum := symbol.AddOf(
		symbol.MulOf(symbol.N(2), x),
		symbol.MulOf(symbol.N(3), x),
		symbol.N(4),
	)
	fmt.Println(sum)

	// Output:
	// 5*x + 4
}

// ExampleExpand demonstrates expansion into a sum of monomials.
func ExampleExpand() {
	x := symbol.S("x")

	product := symbol.MulOf(
		symbol.AddOf(x, symbol.N(2)),
		symbol.AddOf(x, symbol.N(3)),
	)
	fmt.Println(symbol.Expand(product))

	// Output:
	// 5*x + x^2 + 6
}

// ExampleSolveSystem demonstrates solving a quadratic: both real roots come
// back, the positive one first.
func ExampleSolveSystem() {
	x := symbol.S("x")

	// x^2 - 4 = 0
	sols, err := symbol.SolveSystem(
		[]symbol.Expr{symbol.SubOf(symbol.PowOf(x, symbol.N(2)), symbol.N(4))},
		[]string{"x"},
	)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	for _, s := range sols {
		fmt.Println("x =", s["x"])
	}

	// Output:
	// x = 2
	// x = -2
}
