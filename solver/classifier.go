package solver

import (
	"math"

	"github.com/katalvlaran/eqsolve/symbol"
)

// classify decides what one relation means inside the current branch:
// still usable, already satisfied, or provably violated. The returned
// residual is the canonical left − right form.
//
// Only a relation whose BOTH sides are constant can be a contradiction;
// while an unresolved variable remains, the relation stays usable and the
// verdict is deferred to the oracle.
func (s *System) classify(lhs, rhs symbol.Expr) (Kind, symbol.Expr) {
	diff := symbol.Expand(symbol.SubOf(lhs, rhs))
	if symbol.HasUnit(diff) {
		// A second pass lets unit powers introduced by expansion cancel.
		diff = symbol.Expand(diff.Simplify())
	}

	if n, ok := diff.(*symbol.Num); ok && n.IsZero() {
		return KindRedundant, diff
	}

	lhsConst := len(symbol.FreeSymbols(lhs)) == 0
	rhsConst := len(symbol.FreeSymbols(rhs)) == 0
	if !lhsConst || !rhsConst {
		s.observeFloats(diff)

		return KindUsable, diff
	}

	// Both sides constant: a purely numeric/dimensional comparison, decided
	// under both substitution tables. A single agreeing table could be a
	// numeric coincidence, two independent ones cannot.
	for _, table := range s.tables.Maps() {
		a, okA := symbol.Float(symbol.SubstituteUnits(lhs.Simplify(), table))
		b, okB := symbol.Float(symbol.SubstituteUnits(rhs.Simplify(), table))
		if !okA || !okB {
			// A unit atom outside the table: cannot be decided numerically,
			// leave the relation to the oracle.
			s.observeFloats(diff)

			return KindUsable, diff
		}
		if !s.closeEnough(a, b) {
			return KindContradiction, diff
		}
	}

	return KindRedundant, diff
}

// closeEnough is the relative equality test between two evaluated sides.
// Zero has no magnitude to scale by, so comparisons against it use the
// smallest magnitude the system has seen instead.
func (s *System) closeEnough(a, b float64) bool {
	switch {
	case a == 0 && b == 0:
		return true
	case a == 0:
		return math.Abs(b) <= s.opts.Epsilon*s.minFloatRef()
	case b == 0:
		return math.Abs(a) <= s.opts.Epsilon*s.minFloatRef()
	default:
		return math.Abs(a-b) <= s.opts.Epsilon*math.Abs(a+b)
	}
}

// minFloatRef is the reference scale for compare-against-zero; 1 until the
// first observation.
func (s *System) minFloatRef() float64 {
	if math.IsInf(s.minFloat, 1) {
		return 1
	}

	return s.minFloat
}

// observeFloats feeds every nonzero constant in e into the minimum-magnitude
// tracker behind minFloatRef.
func (s *System) observeFloats(e symbol.Expr) {
	for _, n := range symbol.Numbers(e) {
		if n.IsZero() {
			continue
		}
		if m := math.Abs(n.Float64()); m < s.minFloat {
			s.minFloat = m
		}
	}
}
