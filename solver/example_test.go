package solver_test

import (
	"fmt"

	"github.com/katalvlaran/eqsolve/solver"
	"github.com/katalvlaran/eqsolve/symbol"
	"github.com/katalvlaran/eqsolve/unit"
)

// ExampleSystem_Solve solves a branching system: the quadratic forks, the
// linear relation then resolves y inside each branch.
func ExampleSystem_Solve() {
	sys, err := solver.NewSystem([]solver.Var{{Name: "x"}, {Name: "y"}})
	if err != nil {
		fmt.Println("setup failed:", err)

		return
	}

	// x^2 = 9
	sys.Equation(func(c *solver.Context) []symbol.Expr {
		return []symbol.Expr{symbol.PowOf(c.Get("x"), symbol.N(2)), symbol.N(9)}
	})
	// x + y = 10
	sys.Equation(func(c *solver.Context) []symbol.Expr {
		return []symbol.Expr{symbol.AddOf(c.Get("x"), c.Get("y")), symbol.N(10)}
	})

	if err := sys.Solve(); err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	for _, bindings := range sys.AllBindings() {
		fmt.Printf("x = %s, y = %s\n", bindings["x"], bindings["y"])
	}

	// Output:
	// x = 3, y = 7
	// x = -3, y = 13
}

// ExampleSystem_Solve_units shows unit-carrying values riding through the
// solver untouched.
func ExampleSystem_Solve_units() {
	sys, err := solver.NewSystem([]solver.Var{
		{Name: "d", Description: "displacement"},
		{Name: "t", Description: "elapsed time"},
	})
	if err != nil {
		fmt.Println("setup failed:", err)

		return
	}

	// d = 35 cm
	sys.Equation(func(c *solver.Context) []symbol.Expr {
		return []symbol.Expr{c.Get("d"), symbol.MulOf(symbol.N(35), unit.Centimeter)}
	})
	// t = 2 s
	sys.Equation(func(c *solver.Context) []symbol.Expr {
		return []symbol.Expr{c.Get("t"), symbol.MulOf(symbol.N(2), unit.Second)}
	})

	if err := sys.Solve(); err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	d, _ := sys.Get("d")
	t, _ := sys.Get("t")
	fmt.Println("d =", d)
	fmt.Println("t =", t)

	// Output:
	// d = 35*centimeter
	// t = 2*second
}

// ExampleContext_Set shows a procedure deriving one variable from another
// once its input becomes numeric.
func ExampleContext_Set() {
	sys, err := solver.NewSystem([]solver.Var{{Name: "radius"}, {Name: "diameter"}})
	if err != nil {
		fmt.Println("setup failed:", err)

		return
	}

	sys.Equation(func(c *solver.Context) []symbol.Expr {
		return []symbol.Expr{c.Get("radius"), symbol.N(4)}
	})
	sys.Procedure(func(c *solver.Context) error {
		if !c.Resolved("radius") {
			return solver.ErrUnresolved
		}

		return c.Set("diameter", symbol.MulOf(symbol.N(2), c.Get("radius")))
	})

	if err := sys.Solve(); err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	d, _ := sys.Get("diameter")
	fmt.Println("diameter =", d)

	// Output:
	// diameter = 8
}
