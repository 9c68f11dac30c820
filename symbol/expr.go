package symbol

import (
	"math/big"
)

// Expr is an immutable symbolic expression.
//
// Implementations are Num, Sym, Unit, Add, Mul and Pow. The set is sealed:
// the solver relies on exhaustive type switches over these six kinds.
type Expr interface {
	// Simplify returns the canonical form of the expression.
	// Expressions built through the *Of combinators are already canonical.
	Simplify() Expr

	// String renders the canonical textual form. For two canonical
	// expressions, String equality implies structural equality.
	String() string

	// Sub substitutes value for every occurrence of the named Sym and
	// returns the re-canonicalized result. Unit atoms are never touched.
	Sub(name string, value Expr) Expr

	// Eval reduces the expression to a single exact rational, reporting
	// false when any Sym or Unit atom remains.
	Eval() (*Num, bool)

	// Equal reports structural equality with another expression.
	Equal(other Expr) bool

	kind() exprKind
}

// exprKind discriminates the sealed Expr implementations.
type exprKind uint8

const (
	kindNum exprKind = iota
	kindSym
	kindUnit
	kindAdd
	kindMul
	kindPow
)

// Num is an exact rational constant.
type Num struct{ val *big.Rat }

// N returns the integer constant n.
func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F returns the exact fraction p/q. Panics if q == 0 (programmer error).
func F(p, q int64) *Num {
	if q == 0 {
		panic("symbol: denominator is zero")
	}

	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NFloat returns the exact rational value of the float64 f.
// Panics on NaN or ±Inf (programmer error).
func NFloat(f float64) *Num {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("symbol: NaN or Inf is not a rational")
	}

	return &Num{val: r}
}

func (n *Num) Simplify() Expr        { return n }
func (n *Num) String() string        { return n.val.RatString() }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Eval() (*Num, bool)    { return n, true }
func (n *Num) kind() exprKind        { return kindNum }

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)

	return ok && n.val.Cmp(o.val) == 0
}

// Rat returns a defensive copy of the underlying rational.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

// Float64 returns the nearest float64 value.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

func (n *Num) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Num) IsNegative() bool { return n.val.Sign() < 0 }
func (n *Num) IsPositive() bool { return n.val.Sign() > 0 }
func (n *Num) IsInteger() bool  { return n.val.IsInt() }

func (n *Num) IsOne() bool    { return n.val.Cmp(ratOne) == 0 }
func (n *Num) IsNegOne() bool { return n.val.Cmp(ratNegOne) == 0 }

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

// Exact rational helpers shared across the package.

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("symbol: division by zero")
	}

	return &Num{val: new(big.Rat).Inv(a.val)}
}

// Sym is a named unknown. Two Syms with the same name are the same unknown.
type Sym struct{ name string }

// S returns the unknown with the given name.
func S(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Simplify() Expr     { return s }
func (s *Sym) String() string     { return s.name }
func (s *Sym) Eval() (*Num, bool) { return nil, false }
func (s *Sym) kind() exprKind     { return kindSym }

// Name returns the unknown's name.
func (s *Sym) Name() string { return s.name }

func (s *Sym) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}

	return s
}

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)

	return ok && s.name == o.name
}

// Unit is a physical-unit atom. It multiplies and exponentiates like an
// opaque symbol, but is not a free variable: FreeSymbols ignores it and Sub
// never replaces it. Units only become numbers through SubstituteUnits.
type Unit struct{ name string }

// U returns the unit atom with the given name.
func U(name string) *Unit { return &Unit{name: name} }

func (u *Unit) Simplify() Expr        { return u }
func (u *Unit) String() string        { return u.name }
func (u *Unit) Sub(string, Expr) Expr { return u }
func (u *Unit) Eval() (*Num, bool)    { return nil, false }
func (u *Unit) kind() exprKind        { return kindUnit }

// Name returns the unit's name.
func (u *Unit) Name() string { return u.name }

func (u *Unit) Equal(other Expr) bool {
	o, ok := other.(*Unit)

	return ok && u.name == o.name
}
