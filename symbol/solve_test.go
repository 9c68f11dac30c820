package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsolve/symbol"
)

// residual builds lhs − rhs.
func residual(lhs, rhs symbol.Expr) symbol.Expr {
	return symbol.SubOf(lhs, rhs)
}

// TestSolveSystem_SingleLinear solves 2x + 1 = 7.
func TestSolveSystem_SingleLinear(t *testing.T) {
	x := symbol.S("x")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.AddOf(symbol.MulOf(symbol.N(2), x), symbol.N(1)), symbol.N(7))},
		[]string{"x"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, "3", sols[0]["x"].String())
}

// TestSolveSystem_LinearPair solves x + y = 10, x − y = 4.
func TestSolveSystem_LinearPair(t *testing.T) {
	x, y := symbol.S("x"), symbol.S("y")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{
			residual(symbol.AddOf(x, y), symbol.N(10)),
			residual(symbol.SubOf(x, y), symbol.N(4)),
		},
		[]string{"x", "y"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, "7", sols[0]["x"].String())
	require.Equal(t, "3", sols[0]["y"].String())
}

// TestSolveSystem_Inconsistent solves the parallel lines x + y = 1, x + y = 2
// and expects the empty (no solution) answer with a nil error.
func TestSolveSystem_Inconsistent(t *testing.T) {
	x, y := symbol.S("x"), symbol.S("y")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{
			residual(symbol.AddOf(x, y), symbol.N(1)),
			residual(symbol.AddOf(x, y), symbol.N(2)),
		},
		[]string{"x", "y"},
	)
	require.NoError(t, err)
	require.Empty(t, sols)
}

// TestSolveSystem_Underdetermined leaves the free unknown bound to itself.
func TestSolveSystem_Underdetermined(t *testing.T) {
	x, y := symbol.S("x"), symbol.S("y")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.AddOf(x, y), symbol.N(5))},
		[]string{"x", "y"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 1)

	// One of the two is expressed through the other; at least one value must
	// still contain a free symbol.
	freeX := symbol.FreeSymbols(sols[0]["x"])
	freeY := symbol.FreeSymbols(sols[0]["y"])
	require.True(t, len(freeX) > 0 || len(freeY) > 0)
}

// TestSolveSystem_QuadraticExact solves x² = 4 and expects both roots, the
// positive one first.
func TestSolveSystem_QuadraticExact(t *testing.T) {
	x := symbol.S("x")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.PowOf(x, symbol.N(2)), symbol.N(4))},
		[]string{"x"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 2)
	require.Equal(t, "2", sols[0]["x"].String())
	require.Equal(t, "-2", sols[1]["x"].String())
}

// TestSolveSystem_QuadraticNoRealRoots solves x² = −1 and expects the
// provably-inconsistent answer.
func TestSolveSystem_QuadraticNoRealRoots(t *testing.T) {
	x := symbol.S("x")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.PowOf(x, symbol.N(2)), symbol.N(-1))},
		[]string{"x"},
	)
	require.NoError(t, err)
	require.Empty(t, sols)
}

// TestSolveSystem_TwoQuadratics solves x² = 4 together with y² = 16 and
// expects all four root combinations.
func TestSolveSystem_TwoQuadratics(t *testing.T) {
	x, y := symbol.S("x"), symbol.S("y")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{
			residual(symbol.PowOf(x, symbol.N(2)), symbol.N(4)),
			residual(symbol.PowOf(y, symbol.N(2)), symbol.N(16)),
		},
		[]string{"x", "y"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 4)

	seen := make(map[string]bool, 4)
	for _, s := range sols {
		seen[s["x"].String()+","+s["y"].String()] = true
	}
	require.Equal(t, map[string]bool{
		"2,4": true, "2,-4": true, "-2,4": true, "-2,-4": true,
	}, seen)
}

// TestSolveSystem_MixedQuadraticLinear solves x² = 9, x + y = 10: the
// quadratic forks and the linear residual resolves y per root.
func TestSolveSystem_MixedQuadraticLinear(t *testing.T) {
	x, y := symbol.S("x"), symbol.S("y")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{
			residual(symbol.PowOf(x, symbol.N(2)), symbol.N(9)),
			residual(symbol.AddOf(x, y), symbol.N(10)),
		},
		[]string{"x", "y"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 2)

	seen := make(map[string]string, 2)
	for _, s := range sols {
		seen[s["x"].String()] = s["y"].String()
	}
	require.Equal(t, map[string]string{"3": "7", "-3": "13"}, seen)
}

// TestSolveSystem_CoupledByElimination solves w·h = 24, w + h = 10 via
// symbolic elimination of the linear residual.
func TestSolveSystem_CoupledByElimination(t *testing.T) {
	w, h := symbol.S("w"), symbol.S("h")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{
			residual(symbol.MulOf(w, h), symbol.N(24)),
			residual(symbol.AddOf(w, h), symbol.N(10)),
		},
		[]string{"w", "h"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 2)

	seen := make(map[string]string, 2)
	for _, s := range sols {
		seen[s["w"].String()] = s["h"].String()
	}
	require.Equal(t, map[string]string{"6": "4", "4": "6"}, seen)
}

// TestSolveSystem_Cubic solves x³ − 6x² + 11x − 6 = 0 (roots 1, 2, 3).
func TestSolveSystem_Cubic(t *testing.T) {
	x := symbol.S("x")

	e := symbol.AddOf(
		symbol.PowOf(x, symbol.N(3)),
		symbol.MulOf(symbol.N(-6), symbol.PowOf(x, symbol.N(2))),
		symbol.MulOf(symbol.N(11), x),
		symbol.N(-6),
	)
	sols, err := symbol.SolveSystem([]symbol.Expr{e}, []string{"x"})
	require.NoError(t, err)
	require.Len(t, sols, 3)

	for i, want := range []float64{3, 2, 1} {
		got, ok := symbol.Float(sols[i]["x"])
		require.True(t, ok)
		require.InDelta(t, want, got, 1e-6)
	}
}

// TestSolveSystem_UnitLinear solves meter·x = 5·meter; the unit cancels in
// the root.
func TestSolveSystem_UnitLinear(t *testing.T) {
	x := symbol.S("x")
	m := symbol.U("meter")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.MulOf(m, x), symbol.MulOf(symbol.N(5), m))},
		[]string{"x"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, "5", sols[0]["x"].String())
}

// TestSolveSystem_UnitMismatch feeds the dimensionally inconsistent
// 1·meter = 1·second with substitution tables and expects no solution.
func TestSolveSystem_UnitMismatch(t *testing.T) {
	tableA := map[string]float64{"meter": 1.05, "second": 0.91}
	tableB := map[string]float64{"meter": 0.87, "second": 1.12}

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.U("meter"), symbol.U("second"))},
		nil,
		symbol.WithUnitTables(tableA, tableB),
	)
	require.NoError(t, err)
	require.Empty(t, sols)
}

// TestSolveSystem_NonAlgebraic rejects 2^x = 8.
func TestSolveSystem_NonAlgebraic(t *testing.T) {
	x := symbol.S("x")

	_, err := symbol.SolveSystem(
		[]symbol.Expr{residual(symbol.PowOf(symbol.N(2), x), symbol.N(8))},
		[]string{"x"},
	)
	require.ErrorIs(t, err, symbol.ErrNonAlgebraic)
}

// TestSolveSystem_RedundantOnly drops identically-zero residuals and leaves
// every unknown free.
func TestSolveSystem_RedundantOnly(t *testing.T) {
	x := symbol.S("x")

	sols, err := symbol.SolveSystem(
		[]symbol.Expr{residual(x, x)},
		[]string{"x"},
	)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Equal(t, "x", sols[0]["x"].String())
}
