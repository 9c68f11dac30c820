package unit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqsolve/symbol"
	"github.com/katalvlaran/eqsolve/unit"
)

// TestNew_Deterministic checks that the same seed reproduces the tables and
// a different seed does not.
func TestNew_Deterministic(t *testing.T) {
	first := unit.New(42)
	second := unit.New(42)
	require.Equal(t, first.A, second.A)
	require.Equal(t, first.B, second.B)

	other := unit.New(43)
	require.NotEqual(t, first.A["meter"], other.A["meter"])
}

// TestNew_FundamentalRange checks that every fundamental factor lies in
// [1−RandRange, 1+RandRange].
func TestNew_FundamentalRange(t *testing.T) {
	tables := unit.New(7)

	for _, name := range []string{
		"meter", "kilogram", "second", "ampere", "kelvin",
		"mole", "candela", "bit", "radian",
	} {
		for _, m := range tables.Maps() {
			f, ok := m[name]
			require.True(t, ok, name)
			require.GreaterOrEqual(t, f, 1-unit.RandRange)
			require.LessOrEqual(t, f, 1+unit.RandRange)
		}
	}
}

// TestNew_FundamentalSeparation checks the pairwise-distance invariant
// within one table.
func TestNew_FundamentalSeparation(t *testing.T) {
	tables := unit.New(11)

	names := []string{
		"meter", "kilogram", "second", "ampere", "kelvin",
		"mole", "candela", "bit", "radian",
	}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			d := math.Abs(tables.A[names[i]] - tables.A[names[j]])
			require.GreaterOrEqual(t, d, unit.Separation)
		}
	}
}

// TestNew_TablesIndependent checks the two tables differ: identical tables
// would defeat the double-check against coincidental matches.
func TestNew_TablesIndependent(t *testing.T) {
	tables := unit.New(3)
	require.NotEqual(t, tables.A["meter"], tables.B["meter"])
}

// TestNew_DerivedRatios spot-checks derived factors against their SI
// decompositions inside one table.
func TestNew_DerivedRatios(t *testing.T) {
	tables := unit.New(99)

	for _, m := range tables.Maps() {
		require.InEpsilon(t, 0.01*m["meter"], m["centimeter"], 1e-12)
		require.InEpsilon(t, 1000*m["meter"], m["kilometer"], 1e-12)
		require.InEpsilon(t, 3600*m["second"], m["hour"], 1e-12)
		require.InEpsilon(t, 8*m["bit"], m["byte"], 1e-12)
		require.InEpsilon(t,
			m["kilogram"]*m["meter"]/(m["second"]*m["second"]),
			m["newton"], 1e-12)
		require.InEpsilon(t,
			m["newton"]*m["meter"],
			m["joule"], 1e-9)
	}
}

// TestAtoms_CancelUnderSubstitution checks the property the solver relies
// on: a unit ratio like kilometer/meter becomes a pure number under either
// table, and the same number under both.
func TestAtoms_CancelUnderSubstitution(t *testing.T) {
	tables := unit.New(5)

	ratio := symbol.DivOf(unit.Kilometer, unit.Meter)
	var got []float64
	for _, m := range tables.Maps() {
		v, ok := symbol.Float(symbol.SubstituteUnits(ratio, m))
		require.True(t, ok)
		got = append(got, v)
	}
	require.InEpsilon(t, 1000.0, got[0], 1e-9)
	require.InEpsilon(t, got[0], got[1], 1e-9)
}

// TestAtoms_MismatchDetected checks that incompatible units disagree across
// the two tables.
func TestAtoms_MismatchDetected(t *testing.T) {
	tables := unit.New(13)

	diff := symbol.SubOf(unit.Meter, unit.Second)
	a, okA := symbol.Float(symbol.SubstituteUnits(diff, tables.A))
	b, okB := symbol.Float(symbol.SubstituteUnits(diff, tables.B))
	require.True(t, okA)
	require.True(t, okB)

	// Both tables agreeing on zero would be a false positive; at least one
	// must report a nonzero residual.
	require.True(t, math.Abs(a) > 1e-10 || math.Abs(b) > 1e-10)
}
