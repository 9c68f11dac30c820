package symbol

// Expand rewrites e into a sum of monomials: products distribute over sums
// and small positive integer powers of sums unroll into repeated products.
// The result is canonical.
func Expand(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Expand(t)
		}

		return AddOf(terms...)
	case *Mul:
		// 1) Expand every factor first.
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Expand(f)
		}
		// 2) Distribute: fold the factors left-to-right, multiplying each
		//    accumulated monomial with each term of the next factor.
		acc := []Expr{N(1)}
		for _, f := range factors {
			var terms []Expr
			if a, ok := f.(*Add); ok {
				terms = a.terms
			} else {
				terms = []Expr{f}
			}
			next := make([]Expr, 0, len(acc)*len(terms))
			for _, left := range acc {
				for _, right := range terms {
					next = append(next, MulOf(left, right))
				}
			}
			acc = next
		}

		return AddOf(acc...)
	case *Pow:
		base := Expand(v.base)
		exp := Expand(v.exp)
		if n, ok := exp.(*Num); ok && n.IsInteger() && n.IsPositive() {
			if e := n.val.Num().Int64(); e <= maxFoldExp {
				if _, sum := base.(*Add); sum {
					factors := make([]Expr, e)
					for i := range factors {
						factors[i] = base
					}

					return Expand(MulOf(factors...))
				}
			}
		}

		return PowOf(base, exp)
	default:
		return e
	}
}

// PolyCoeffs views e as a polynomial in the named unknown and returns its
// coefficients keyed by degree (zero coefficients omitted, constant-zero
// yields an empty map). It reports false when e is not polynomial in name:
// the unknown appears in an exponent, under a non-integer or negative power,
// or e is not expandable into monomials.
func PolyCoeffs(e Expr, name string) (map[int]Expr, bool) {
	expanded := Expand(e.Simplify())

	var terms []Expr
	if a, ok := expanded.(*Add); ok {
		terms = a.terms
	} else {
		terms = []Expr{expanded}
	}

	acc := make(map[int][]Expr, len(terms))
	for _, t := range terms {
		deg, coeff, ok := monomialInVar(t, name)
		if !ok {
			return nil, false
		}
		acc[deg] = append(acc[deg], coeff)
	}

	out := make(map[int]Expr, len(acc))
	for deg, parts := range acc {
		c := AddOf(parts...)
		if n, ok := c.(*Num); ok && n.IsZero() {
			continue
		}
		out[deg] = c
	}

	return out, true
}

// monomialInVar splits a single monomial into (degree in name, coefficient).
// Reports false when name occurs non-polynomially.
func monomialInVar(t Expr, name string) (int, Expr, bool) {
	var factors []Expr
	if m, ok := t.(*Mul); ok {
		factors = m.factors
	} else {
		factors = []Expr{t}
	}

	deg := 0
	coeff := make([]Expr, 0, len(factors))
	for _, f := range factors {
		base, exp := splitPow(f)
		if s, ok := base.(*Sym); ok && s.name == name {
			if p, isPow := f.(*Pow); isPow {
				if _, free := FreeSymbols(p.exp)[name]; free {
					return 0, nil, false
				}
			}
			if !exp.IsInteger() || exp.IsNegative() {
				return 0, nil, false
			}
			deg += int(exp.val.Num().Int64())

			continue
		}
		if _, free := FreeSymbols(f)[name]; free {
			// name buried inside a structure splitPow could not peel
			// (e.g. an exponent): not polynomial.
			return 0, nil, false
		}
		coeff = append(coeff, f)
	}
	if len(coeff) == 0 {
		return deg, N(1), true
	}

	return deg, MulOf(coeff...), true
}

// Degree returns the degree of e viewed as a polynomial in name, reporting
// false when e is not polynomial in name. A constant has degree 0.
func Degree(e Expr, name string) (int, bool) {
	coeffs, ok := PolyCoeffs(e, name)
	if !ok {
		return 0, false
	}
	max := 0
	for deg := range coeffs {
		if deg > max {
			max = deg
		}
	}

	return max, true
}

// IsLinear reports whether e is jointly linear in the given unknowns: after
// expansion, every monomial has total degree at most one over all of them.
func IsLinear(e Expr, unknowns []string) bool {
	expanded := Expand(e.Simplify())

	var terms []Expr
	if a, ok := expanded.(*Add); ok {
		terms = a.terms
	} else {
		terms = []Expr{expanded}
	}

	for _, t := range terms {
		total := 0
		for _, name := range unknowns {
			deg, _, ok := monomialInVar(t, name)
			if !ok {
				return false
			}
			total += deg
		}
		if total > 1 {
			return false
		}
	}

	return true
}
