// Package symbol provides the exact symbolic kernel used by the eqsolve
// solver: expression construction, deterministic canonical simplification,
// polynomial views, and solving of small algebraic systems.
//
// Expressions are immutable trees built from six node kinds:
//
//	Num  – exact rational constant (math/big.Rat, no float drift)
//	Sym  – a named unknown (a free variable of the enclosing system)
//	Unit – a physical-unit atom (meter, kilogram, …); behaves like an
//	       opaque multiplicative symbol but is NOT a free variable
//	Add  – sum of terms
//	Mul  – product of factors
//	Pow  – base raised to an exponent
//
// Construction goes through the *Of combinators (AddOf, MulOf, PowOf, …),
// which immediately canonicalize:
//
//   - sums combine like terms (2*x + 3*x → 5*x) and fold constants;
//   - products fold numeric coefficients first, combine like bases into
//     powers (x*x → x^2, cm*cm^-1 → 1) and sort factors deterministically;
//   - integer powers of constants fold exactly; nested powers flatten.
//
// Determinism is load-bearing: the solver enumerates relation subsets in the
// order induced by canonical String() forms, so String() must be stable for
// equal inputs across runs.
//
// SolveSystem solves a set of residual expressions (lhs − rhs, implicitly
// = 0) for a set of unknowns. The supported fragment covers linear systems
// with constant (possibly unit-carrying) coefficients, univariate
// polynomials up to degree three, and mixed systems reducible to those by
// root substitution. Systems outside the fragment return ErrNonAlgebraic so
// callers can distinguish "cannot decide" from "provably inconsistent"
// (which is reported as an empty solution list with a nil error).
//
// Errors (sentinel):
//
//	– ErrNonAlgebraic if a system falls outside the supported fragment.
package symbol
