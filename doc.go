// Package eqsolve is a declarative equation-solving engine: declare the
// unknowns of a physical or algebraic system once, attach the relations and
// helper routines that tie them together, and let the solver discover every
// consistent assignment — forking into parallel solution branches whenever a
// relation admits more than one answer, and pruning branches that turn out to
// be contradictory.
//
// 🚀 What is eqsolve?
//
//	A deterministic, single-threaded library that brings together:
//		• symbol/  — an exact symbolic kernel (big.Rat arithmetic, canonical
//		  simplification, polynomial views, small-system solving)
//		• unit/    — physical-unit atoms with the bundled constant catalog and
//		  Monte-Carlo substitution tables for dimensional consistency checks
//		• branch/  — the branch store: independent, mutually exclusive
//		  variable-binding contexts with copy-on-fork semantics
//		• solver/  — the branching solver: relation classification under a
//		  relative tolerance, subset search over collected relations,
//		  fork-per-root exploration and contradiction pruning
//
// ✨ Why choose eqsolve?
//
//   - Declarative – state relations once; the engine decides solve order
//   - Branch-complete – ambiguous systems (x² = 4) never collapse silently
//     to one answer; every root gets its own branch
//   - Unit-aware – quantities may carry physical units; mismatched dimensions
//     are detected as contradictions, compatible ones cancel
//   - Loud failures – globally inconsistent systems raise a single error
//     carrying every contradictory relation set found
//
// Quick sketch:
//
//	sys, _ := solver.NewSystem([]solver.Var{{Name: "x"}, {Name: "y"}})
//	sys.Equation(func(c *solver.Context) []symbol.Expr {
//	    return []symbol.Expr{symbol.PowOf(c.Get("x"), symbol.N(2)), symbol.N(4)}
//	})
//	_ = sys.Solve()
//	// sys.BranchCount() == 2, x ∈ {2, -2}
//
// Dive into each package's doc.go for the full contracts, sentinel errors,
// and complexity notes.
package eqsolve
