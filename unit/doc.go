// Package unit provides physical-unit atoms for eqsolve expressions and the
// Monte-Carlo substitution tables the solver uses for dimensional checks.
//
// A unit is a symbol.Unit atom: it multiplies and cancels like an opaque
// symbol (centimeter · centimeter⁻¹ → 1) but is never treated as a free
// variable. Nine fundamental units (meter, kilogram, second, ampere, kelvin,
// mole, candela, bit, radian) anchor the catalog; every other entry derives
// from them by a fixed conversion formula, so compatible units stay in exact
// ratio inside one table.
//
// Dimensional consistency is decided numerically: New(seed) draws a random
// factor near 1 for each fundamental unit, computes the derived factors, and
// does that twice with independent draws. An equation whose sides agree under
// BOTH tables is dimensionally sound; one table alone could coincide by
// accident, two independent ones all but cannot. Factors are kept at least
// Separation apart so distinct units never alias.
package unit
