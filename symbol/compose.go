package symbol

import (
	"sort"
	"strings"
)

// Composite node construction. The *Of combinators canonicalize eagerly, so
// every Expr handed to the solver is already in canonical form.

// AddOf returns the canonical sum of the given terms.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// MulOf returns the canonical product of the given factors.
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// PowOf returns the canonical power base^exp.
func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// SubOf returns the canonical difference a − b.
func SubOf(a, b Expr) Expr { return AddOf(a, MulOf(N(-1), b)) }

// DivOf returns the canonical quotient a / b, rendered as a·b⁻¹.
func DivOf(a, b Expr) Expr { return MulOf(a, PowOf(b, N(-1))) }

// NegOf returns the canonical negation −a.
func NegOf(a Expr) Expr { return MulOf(N(-1), a) }

// Add is a sum of terms. Canonical form: like terms combined, non-numeric
// terms sorted by canonical key, numeric tail last, never fewer than two
// terms (smaller sums collapse to their single term or to a Num).
type Add struct{ terms []Expr }

// Terms exposes the term list (callers must not mutate it).
func (a *Add) Terms() []Expr { return a.terms }

func (a *Add) kind() exprKind { return kindAdd }

func (a *Add) Simplify() Expr {
	// 1) Simplify children and flatten nested sums.
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		switch s := t.Simplify().(type) {
		case *Add:
			flat = append(flat, s.terms...)
		default:
			flat = append(flat, s)
		}
	}

	// 2) Group terms by the canonical key of their non-numeric part,
	//    accumulating exact rational coefficients per group.
	type group struct {
		coeff *Num
		rest  Expr
	}
	acc := N(0)
	groups := make(map[string]*group, len(flat))
	order := make([]string, 0, len(flat))
	for _, t := range flat {
		coeff, rest := splitCoeff(t)
		if rest == nil {
			acc = numAdd(acc, coeff)

			continue
		}
		key := rest.String()
		g, seen := groups[key]
		if !seen {
			groups[key] = &group{coeff: coeff, rest: rest}
			order = append(order, key)

			continue
		}
		g.coeff = numAdd(g.coeff, coeff)
	}
	sort.Strings(order)

	// 3) Rebuild: dropped zero groups, coefficient-1 groups collapse to the
	//    bare term, the numeric accumulator goes last.
	result := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		g := groups[key]
		switch {
		case g.coeff.IsZero():
			// Cancelled out entirely.
		case g.coeff.IsOne():
			result = append(result, g.rest)
		default:
			result = append(result, scaleTerm(g.coeff, g.rest))
		}
	}
	if !acc.IsZero() {
		result = append(result, acc)
	}

	switch len(result) {
	case 0:
		return N(0)
	case 1:
		return result[0]
	default:
		return &Add{terms: result}
	}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}

func (a *Add) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Sub(name, value)
	}

	return AddOf(terms...)
}

func (a *Add) Eval() (*Num, bool) {
	acc := N(0)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, v)
	}

	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}

	return true
}

// Mul is a product of factors. Canonical form: exact numeric coefficient
// first (omitted when 1), remaining factors with like bases combined into
// powers and sorted by canonical key.
type Mul struct{ factors []Expr }

// Factors exposes the factor list (callers must not mutate it).
func (m *Mul) Factors() []Expr { return m.factors }

func (m *Mul) kind() exprKind { return kindMul }

func (m *Mul) Simplify() Expr {
	// 1) Simplify children and flatten nested products.
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		switch s := f.Simplify().(type) {
		case *Mul:
			flat = append(flat, s.factors...)
		default:
			flat = append(flat, s)
		}
	}

	// 2) Fold numeric factors into one exact coefficient; group the rest by
	//    base, accumulating numeric exponents (x·x → x², cm·cm⁻¹ → 1).
	type group struct {
		base Expr
		exp  *Num
	}
	coeff := N(1)
	groups := make(map[string]*group, len(flat))
	order := make([]string, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)

			continue
		}
		base, exp := splitPow(f)
		key := base.String()
		g, seen := groups[key]
		if !seen {
			groups[key] = &group{base: base, exp: exp}
			order = append(order, key)

			continue
		}
		g.exp = numAdd(g.exp, exp)
	}
	if coeff.IsZero() {
		return N(0)
	}

	// 3) Rebuild each group; powers that fold back to numbers join the
	//    coefficient.
	rebuilt := make([]Expr, 0, len(order))
	for _, key := range order {
		g := groups[key]
		var factor Expr
		switch {
		case g.exp.IsZero():
			continue // x^0 → 1
		case g.exp.IsOne():
			factor = g.base
		default:
			factor = PowOf(g.base, g.exp)
		}
		if n, ok := factor.(*Num); ok {
			coeff = numMul(coeff, n)

			continue
		}
		rebuilt = append(rebuilt, factor)
	}
	if coeff.IsZero() {
		return N(0)
	}
	sort.Slice(rebuilt, func(i, j int) bool { return rebuilt[i].String() < rebuilt[j].String() })

	switch {
	case len(rebuilt) == 0:
		return coeff
	case coeff.IsOne() && len(rebuilt) == 1:
		return rebuilt[0]
	case coeff.IsOne():
		return &Mul{factors: rebuilt}
	default:
		return &Mul{factors: append([]Expr{coeff}, rebuilt...)}
	}
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if f.kind() == kindAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}

	return strings.Join(parts, "*")
}

func (m *Mul) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Sub(name, value)
	}

	return MulOf(factors...)
}

func (m *Mul) Eval() (*Num, bool) {
	acc := N(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, v)
	}

	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}

	return true
}

// Pow is base^exp. Canonical form: numeric integer powers folded exactly,
// nested powers flattened, integer powers distributed over products.
type Pow struct{ base, exp Expr }

// Base returns the base operand.
func (p *Pow) Base() Expr { return p.base }

// Exp returns the exponent operand.
func (p *Pow) Exp() Expr { return p.exp }

func (p *Pow) kind() exprKind { return kindPow }

// maxFoldExp bounds exact integer-power folding; larger exponents stay
// symbolic to keep canonicalization cheap.
const maxFoldExp = 20

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	en, expNum := exp.(*Num)
	if expNum && en.IsZero() {
		return N(1)
	}
	if expNum && en.IsOne() {
		return base
	}

	if bn, ok := base.(*Num); ok {
		// 0^positive is 0; 0^0 and 0^negative stay symbolic rather than panic.
		if bn.IsZero() {
			if expNum && en.IsPositive() {
				return N(0)
			}

			return &Pow{base: base, exp: exp}
		}
		if bn.IsOne() {
			return N(1)
		}
		if expNum && en.IsInteger() {
			if e := en.val.Num().Int64(); e >= -maxFoldExp && e <= maxFoldExp {
				return numIntPow(bn, e)
			}
		}
	}

	// (x^a)^b → x^(a·b)
	if inner, ok := base.(*Pow); ok {
		return PowOf(inner.base, MulOf(inner.exp, exp))
	}

	// (a·b)^n → a^n · b^n for integer n: required so products of units
	// cancel against their inverses.
	if m, ok := base.(*Mul); ok && expNum && en.IsInteger() {
		factors := make([]Expr, len(m.factors))
		for i, f := range m.factors {
			factors[i] = PowOf(f, en)
		}

		return MulOf(factors...)
	}

	return &Pow{base: base, exp: exp}
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	if k := p.base.kind(); k == kindAdd || k == kindMul || k == kindPow {
		baseStr = "(" + baseStr + ")"
	}
	expStr := p.exp.String()
	if n, ok := p.exp.(*Num); !ok || n.IsNegative() || !n.IsInteger() {
		expStr = "(" + expStr + ")"
	}

	return baseStr + "^" + expStr
}

func (p *Pow) Sub(name string, value Expr) Expr {
	return PowOf(p.base.Sub(name, value), p.exp.Sub(name, value))
}

func (p *Pow) Eval() (*Num, bool) {
	b, ok := p.base.Eval()
	if !ok {
		return nil, false
	}
	e, ok := p.exp.Eval()
	if !ok || !e.IsInteger() {
		return nil, false
	}
	exp := e.val.Num().Int64()
	if exp < -maxFoldExp*8 || exp > maxFoldExp*8 || (b.IsZero() && exp <= 0) {
		return nil, false
	}

	return numIntPow(b, exp), true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)

	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

// numIntPow computes b^e exactly for a nonzero rational base.
func numIntPow(b *Num, e int64) *Num {
	neg := e < 0
	if neg {
		e = -e
	}
	acc := N(1)
	for i := int64(0); i < e; i++ {
		acc = numMul(acc, b)
	}
	if neg {
		acc = numRecip(acc)
	}

	return acc
}

// splitCoeff splits a canonical term into its exact numeric coefficient and
// the remaining factor. A pure number yields (n, nil); a product with a
// leading Num yields (that Num, the rest); anything else yields (1, term).
func splitCoeff(e Expr) (*Num, Expr) {
	switch v := e.(type) {
	case *Num:
		return v, nil
	case *Mul:
		if len(v.factors) > 1 {
			if n, ok := v.factors[0].(*Num); ok {
				rest := v.factors[1:]
				if len(rest) == 1 {
					return n, rest[0]
				}

				return n, &Mul{factors: rest}
			}
		}
	}

	return N(1), e
}

// scaleTerm rebuilds coeff·rest without a full re-simplification pass;
// rest is already canonical and coefficient-free.
func scaleTerm(coeff *Num, rest Expr) Expr {
	if m, ok := rest.(*Mul); ok {
		return &Mul{factors: append([]Expr{coeff}, m.factors...)}
	}

	return &Mul{factors: []Expr{coeff, rest}}
}

// splitPow splits a canonical factor into (base, numeric exponent):
// x^3 → (x, 3); anything without a numeric exponent counts as itself to the
// first power.
func splitPow(e Expr) (Expr, *Num) {
	if p, ok := e.(*Pow); ok {
		if n, ok := p.exp.(*Num); ok {
			return p.base, n
		}
	}

	return e, N(1)
}
