package symbol

import (
	"errors"
	"math"
	"math/big"
	"sort"
)

// ErrNonAlgebraic reports a system outside the supported fragment: not
// jointly linear and containing no univariate polynomial residual of degree
// one to three to branch on.
var ErrNonAlgebraic = errors.New("symbol: system outside the solvable fragment")

// zeroTol is the absolute tolerance for deciding that a unit-substituted
// constant residual evaluates to zero. Substitution factors are all near 1,
// so an absolute test is appropriate here.
const zeroTol = 1e-10

// SolveOption configures SolveSystem.
type SolveOption func(*solveConfig)

type solveConfig struct {
	tables []map[string]float64
}

// WithUnitTables supplies unit-substitution tables used to decide whether a
// constant, unit-carrying expression is zero. A value counts as zero only
// when every table agrees; disagreement marks a dimensional inconsistency.
func WithUnitTables(tables ...map[string]float64) SolveOption {
	return func(c *solveConfig) { c.tables = tables }
}

// SolveSystem solves the residual equations residuals[i] = 0 for the given
// unknowns and returns every real solution as a name→value map. Each map
// binds every unknown; unknowns the system does not constrain are bound to
// their own Sym, which callers detect as an incomplete solution.
//
// An empty slice with a nil error means the system is provably inconsistent
// (no real solution). ErrNonAlgebraic means the system falls outside the
// supported fragment and nothing can be concluded.
func SolveSystem(residuals []Expr, unknowns []string, opts ...SolveOption) ([]map[string]Expr, error) {
	var cfg solveConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return solve(residuals, unknowns, &cfg)
}

func solve(residuals []Expr, unknowns []string, cfg *solveConfig) ([]map[string]Expr, error) {
	// 1) Canonicalize and triage: drop residuals that are identically zero,
	//    bail out on residuals that are provably nonzero constants.
	kept := make([]Expr, 0, len(residuals))
	for _, r := range residuals {
		e := Expand(r.Simplify())
		switch classifyConst(e, cfg) {
		case constZero:
			continue
		case constNonzero:
			return nil, nil // inconsistent
		default:
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return []map[string]Expr{freeSolution(unknowns)}, nil
	}

	// 2) Jointly linear systems go through Gauss–Jordan elimination.
	linear := true
	for _, r := range kept {
		if !IsLinear(r, unknowns) {
			linear = false

			break
		}
	}
	if linear {
		return solveLinear(kept, unknowns, cfg)
	}

	// 3) Otherwise branch on a univariate polynomial residual of degree ≤ 3
	//    and recurse on each root.
	for i, r := range kept {
		name, ok := soleUnknown(r, unknowns)
		if !ok {
			continue
		}
		roots, ok := univariateRoots(r, name)
		if !ok {
			continue
		}

		rest := make([]Expr, 0, len(kept)-1)
		rest = append(rest, kept[:i]...)
		rest = append(rest, kept[i+1:]...)
		remaining := without(unknowns, name)

		var out []map[string]Expr
		for _, root := range roots {
			subbed := make([]Expr, len(rest))
			for j, e := range rest {
				subbed[j] = e.Sub(name, root)
			}
			subs, err := solve(subbed, remaining, cfg)
			if err != nil {
				return nil, err
			}
			for _, s := range subs {
				s[name] = root
				out = append(out, s)
			}
		}

		return out, nil
	}

	// 4) Eliminate one unknown through a residual linear in it with a
	//    provably nonzero constant coefficient: substitute its symbolic root
	//    into the rest, recurse, then back-substitute. This unlocks coupled
	//    systems like w·h = 24, w + h = 10.
	for i, r := range kept {
		free := FreeSymbols(r)
		for _, name := range unknowns {
			if _, hit := free[name]; !hit {
				continue
			}
			coeffs, ok := PolyCoeffs(r, name)
			if !ok {
				continue
			}
			deg := 0
			for d := range coeffs {
				if d > deg {
					deg = d
				}
			}
			if deg != 1 || classifyConst(coeffs[1], cfg) != constNonzero {
				continue
			}
			c0, has := coeffs[0]
			if !has {
				c0 = N(0)
			}
			root := NegOf(DivOf(c0, coeffs[1])).Simplify()

			rest := make([]Expr, 0, len(kept)-1)
			for j, e := range kept {
				if j != i {
					rest = append(rest, e.Sub(name, root))
				}
			}
			subs, err := solve(rest, without(unknowns, name), cfg)
			if errors.Is(err, ErrNonAlgebraic) {
				continue
			}
			if err != nil {
				return nil, err
			}
			for _, s := range subs {
				value := root
				for other, bound := range s {
					value = value.Sub(other, bound)
				}
				s[name] = value.Simplify()
			}

			return subs, nil
		}
	}

	return nil, ErrNonAlgebraic
}

// freeSolution binds every unknown to its own Sym: nothing is constrained.
func freeSolution(unknowns []string) map[string]Expr {
	m := make(map[string]Expr, len(unknowns))
	for _, name := range unknowns {
		m[name] = S(name)
	}

	return m
}

func without(names []string, drop string) []string {
	out := make([]string, 0, len(names)-1)
	for _, n := range names {
		if n != drop {
			out = append(out, n)
		}
	}

	return out
}

// soleUnknown reports the single unknown occurring in r, when exactly one does.
func soleUnknown(r Expr, unknowns []string) (string, bool) {
	free := FreeSymbols(r)
	found := ""
	for _, name := range unknowns {
		if _, ok := free[name]; !ok {
			continue
		}
		if found != "" {
			return "", false
		}
		found = name
	}

	return found, found != ""
}

// Constant classification for triage and pivot selection.

type constClass uint8

const (
	constZero constClass = iota
	constNonzero
	constUnknown // carries free symbols, cannot decide
)

func classifyConst(e Expr, cfg *solveConfig) constClass {
	if len(FreeSymbols(e)) > 0 {
		return constUnknown
	}
	if n, ok := e.Eval(); ok {
		if n.IsZero() {
			return constZero
		}

		return constNonzero
	}
	if !HasUnit(e) || len(cfg.tables) == 0 {
		return constUnknown
	}
	// Unit-carrying constant: zero only if every substitution table agrees.
	for _, table := range cfg.tables {
		v, ok := Float(SubstituteUnits(e, table))
		if !ok || math.Abs(v) > zeroTol {
			return constNonzero
		}
	}

	return constZero
}

// Linear path: Gauss–Jordan over symbolic coefficients.

// linearRow splits an expanded residual Σ aᵢ·xᵢ + c into its coefficient
// vector and constant part.
func linearRow(e Expr, unknowns []string) ([]Expr, Expr, bool) {
	var terms []Expr
	if a, ok := e.(*Add); ok {
		terms = a.terms
	} else {
		terms = []Expr{e}
	}

	coeffParts := make([][]Expr, len(unknowns))
	var constParts []Expr
	index := make(map[string]int, len(unknowns))
	for i, name := range unknowns {
		index[name] = i
	}

	for _, t := range terms {
		var factors []Expr
		if m, ok := t.(*Mul); ok {
			factors = m.factors
		} else {
			factors = []Expr{t}
		}

		col := -1
		rest := make([]Expr, 0, len(factors))
		for _, f := range factors {
			if s, ok := f.(*Sym); ok {
				if i, hit := index[s.name]; hit {
					if col >= 0 {
						return nil, nil, false // degree 2 term
					}
					col = i

					continue
				}
			}
			if containsAnyUnknown(f, index) {
				return nil, nil, false
			}
			rest = append(rest, f)
		}

		if col >= 0 {
			coeffParts[col] = append(coeffParts[col], MulOf(rest...))
		} else {
			constParts = append(constParts, t)
		}
	}

	coeffs := make([]Expr, len(unknowns))
	for i, parts := range coeffParts {
		coeffs[i] = AddOf(parts...)
	}

	return coeffs, AddOf(constParts...), true
}

func containsAnyUnknown(e Expr, index map[string]int) bool {
	for name := range FreeSymbols(e) {
		if _, ok := index[name]; ok {
			return true
		}
	}

	return false
}

func solveLinear(residuals []Expr, unknowns []string, cfg *solveConfig) ([]map[string]Expr, error) {
	type row struct {
		coeffs []Expr
		c      Expr
	}
	rows := make([]row, 0, len(residuals))
	for _, r := range residuals {
		coeffs, c, ok := linearRow(r, unknowns)
		if !ok {
			return nil, ErrNonAlgebraic
		}
		rows = append(rows, row{coeffs: coeffs, c: c})
	}

	// Gauss–Jordan: for each column pick a pivot row whose coefficient is
	// not provably zero and eliminate the column from every other row.
	pivotOf := make(map[int]int, len(unknowns)) // column → row index
	used := make(map[int]bool, len(rows))
	for col := range unknowns {
		pivot := -1
		for ri, rw := range rows {
			if used[ri] {
				continue
			}
			if classifyConst(rw.coeffs[col], cfg) != constZero {
				pivot = ri

				break
			}
		}
		if pivot < 0 {
			continue // free column
		}
		pivotOf[col] = pivot
		used[pivot] = true
		p := rows[pivot]
		for ri := range rows {
			if ri == pivot {
				continue
			}
			rw := &rows[ri]
			if classifyConst(rw.coeffs[col], cfg) == constZero {
				continue
			}
			factor := DivOf(rw.coeffs[col], p.coeffs[col])
			for cj := range rw.coeffs {
				rw.coeffs[cj] = SubOf(rw.coeffs[cj], MulOf(factor, p.coeffs[cj])).Simplify()
			}
			rw.c = SubOf(rw.c, MulOf(factor, p.c)).Simplify()
		}
	}

	// A row reduced to 0 = nonzero-constant proves inconsistency.
	for ri, rw := range rows {
		if used[ri] {
			continue
		}
		allZero := true
		for _, a := range rw.coeffs {
			if classifyConst(a, cfg) != constZero {
				allZero = false

				break
			}
		}
		if allZero && classifyConst(rw.c, cfg) == constNonzero {
			return nil, nil
		}
	}

	// Back-substitution: free columns resolve to their own Sym, pivot
	// columns to −(c + Σ a_f·x_f)/a_pivot.
	solution := freeSolution(unknowns)
	cols := make([]int, 0, len(pivotOf))
	for col := range pivotOf {
		cols = append(cols, col)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(cols)))
	for _, col := range cols {
		rw := rows[pivotOf[col]]
		acc := []Expr{rw.c}
		for cj, a := range rw.coeffs {
			if cj == col || classifyConst(a, cfg) == constZero {
				continue
			}
			acc = append(acc, MulOf(a, solution[unknowns[cj]]))
		}
		solution[unknowns[col]] = NegOf(DivOf(AddOf(acc...), rw.coeffs[col])).Simplify()
	}

	return []map[string]Expr{solution}, nil
}

// Univariate path: polynomial roots up to degree three.

// univariateRoots returns the real roots of r viewed as a polynomial in
// name. Reports false when r is not a polynomial of degree 1..3 in name, or
// when a quadratic/cubic carries non-numeric coefficients.
func univariateRoots(r Expr, name string) ([]Expr, bool) {
	coeffs, ok := PolyCoeffs(r, name)
	if !ok {
		return nil, false
	}
	deg := 0
	for d := range coeffs {
		if d > deg {
			deg = d
		}
	}
	coeffAt := func(d int) Expr {
		if c, ok := coeffs[d]; ok {
			return c
		}

		return N(0)
	}

	switch deg {
	case 1:
		// Symbolic division is fine here: linear coefficients may carry units.
		return []Expr{NegOf(DivOf(coeffAt(0), coeffAt(1))).Simplify()}, true
	case 2:
		a, okA := coeffAt(2).Eval()
		b, okB := coeffAt(1).Eval()
		c, okC := coeffAt(0).Eval()
		if !okA || !okB || !okC {
			return nil, false
		}

		return quadraticRoots(a, b, c), true
	case 3:
		a, okA := coeffAt(3).Eval()
		b, okB := coeffAt(2).Eval()
		c, okC := coeffAt(1).Eval()
		d, okD := coeffAt(0).Eval()
		if !okA || !okB || !okC || !okD {
			return nil, false
		}

		return cubicRoots(a.Float64(), b.Float64(), c.Float64(), d.Float64()), true
	default:
		return nil, false
	}
}

// quadraticRoots solves a·x² + b·x + c = 0 over the reals, exactly when the
// discriminant is a perfect rational square. The (−b+√d)/(2a) branch comes
// first so fork order is deterministic.
func quadraticRoots(a, b, c *Num) []Expr {
	disc := numAdd(numMul(b, b), numMul(N(-4), numMul(a, c)))
	twoA := numMul(N(2), a)

	switch {
	case disc.IsNegative():
		return nil // no real roots
	case disc.IsZero():
		return []Expr{numMul(numNeg(b), numRecip(twoA))}
	}

	var sqrtD *Num
	if exact, ok := ratSqrt(disc.val); ok {
		sqrtD = &Num{val: exact}
	} else {
		sqrtD = NFloat(math.Sqrt(disc.Float64()))
	}

	return []Expr{
		numMul(numAdd(numNeg(b), sqrtD), numRecip(twoA)),
		numMul(numAdd(numNeg(b), numNeg(sqrtD)), numRecip(twoA)),
	}
}

// ratSqrt returns the exact rational square root of r when both numerator
// and denominator are perfect squares.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	num := new(big.Int).Sqrt(r.Num())
	if new(big.Int).Mul(num, num).Cmp(r.Num()) != 0 {
		return nil, false
	}
	den := new(big.Int).Sqrt(r.Denom())
	if new(big.Int).Mul(den, den).Cmp(r.Denom()) != 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(num, den), true
}

// cubicRoots solves a·x³ + b·x² + c·x + d = 0 numerically over the reals via
// the depressed-cubic form. Roots are returned in descending order; roots
// closer together than cubicRootTol are merged.
const cubicRootTol = 1e-9

func cubicRoots(a, b, c, d float64) []Expr {
	// t = x + b/(3a) turns the cubic into t³ + p·t + q = 0.
	p := c/a - b*b/(3*a*a)
	q := 2*b*b*b/(27*a*a*a) - b*c/(3*a*a) + d/a
	shift := -b / (3 * a)

	var ts []float64
	disc := q*q/4 + p*p*p/27
	switch {
	case p == 0:
		ts = []float64{math.Cbrt(-q)}
	case disc > 0:
		// One real root (Cardano).
		s := math.Sqrt(disc)
		ts = []float64{math.Cbrt(-q/2+s) + math.Cbrt(-q/2-s)}
	default:
		// Three real roots, possibly repeated (trigonometric form; disc ≤ 0
		// forces p < 0 here, so the square root is safe).
		m := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * m)
		arg = math.Max(-1, math.Min(1, arg))
		theta := math.Acos(arg)
		for k := 0; k < 3; k++ {
			ts = append(ts, m*math.Cos(theta/3-2*math.Pi*float64(k)/3))
		}
	}

	xs := make([]float64, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, t+shift)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(xs)))

	out := make([]Expr, 0, len(xs))
	for i, x := range xs {
		if i > 0 && math.Abs(x-xs[i-1]) <= cubicRootTol*(1+math.Abs(x)) {
			continue
		}
		out = append(out, NFloat(x))
	}

	return out
}
