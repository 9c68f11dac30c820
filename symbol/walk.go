package symbol

// Tree-walking helpers shared by the polynomial view and the solver.

// FreeSymbols collects the distinct Sym names occurring in e, in no
// particular order. Unit atoms are not free symbols.
func FreeSymbols(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectSymbols(e, out)

	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	}
}

// HasUnit reports whether any Unit atom occurs in e.
func HasUnit(e Expr) bool {
	switch v := e.(type) {
	case *Unit:
		return true
	case *Add:
		for _, t := range v.terms {
			if HasUnit(t) {
				return true
			}
		}
	case *Mul:
		for _, f := range v.factors {
			if HasUnit(f) {
				return true
			}
		}
	case *Pow:
		return HasUnit(v.base) || HasUnit(v.exp)
	}

	return false
}

// Numbers collects every Num atom in e, in traversal order. The solver feeds
// these into its smallest-magnitude tracker.
func Numbers(e Expr) []*Num {
	var out []*Num
	collectNumbers(e, &out)

	return out
}

func collectNumbers(e Expr, out *[]*Num) {
	switch v := e.(type) {
	case *Num:
		*out = append(*out, v)
	case *Add:
		for _, t := range v.terms {
			collectNumbers(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectNumbers(f, out)
		}
	case *Pow:
		collectNumbers(v.base, out)
		collectNumbers(v.exp, out)
	}
}

// SubstituteUnits replaces every Unit atom whose name appears in factors with
// the exact rational form of its factor, then re-canonicalizes. Unit atoms
// missing from the table are left in place.
func SubstituteUnits(e Expr, factors map[string]float64) Expr {
	switch v := e.(type) {
	case *Unit:
		if f, ok := factors[v.name]; ok {
			return NFloat(f)
		}

		return v
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = SubstituteUnits(t, factors)
		}

		return AddOf(terms...)
	case *Mul:
		fs := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			fs[i] = SubstituteUnits(f, factors)
		}

		return MulOf(fs...)
	case *Pow:
		return PowOf(SubstituteUnits(v.base, factors), SubstituteUnits(v.exp, factors))
	default:
		return e
	}
}

// Float evaluates e to a float64, reporting false when any Sym or Unit atom
// remains.
func Float(e Expr) (float64, bool) {
	n, ok := e.Eval()
	if !ok {
		return 0, false
	}

	return n.Float64(), true
}
