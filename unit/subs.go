package unit

import (
	"math"
	"math/rand"
)

const (
	// RandRange bounds the random factor drawn for each fundamental unit:
	// factors lie in [1−RandRange, 1+RandRange].
	RandRange = 0.2

	// Separation is the minimum distance between two fundamental factors in
	// one table. Factors closer than this could make distinct units alias
	// under the solver's tolerance.
	Separation = 1e-10
)

// fundamental lists the units every catalog entry derives from.
var fundamental = []string{
	"meter", "kilogram", "second", "ampere", "kelvin",
	"mole", "candela", "bit", "radian",
}

// SubTables is a pair of independent unit→factor substitution tables. An
// equation is dimensionally consistent only when both tables agree on it.
type SubTables struct {
	A map[string]float64
	B map[string]float64
}

// Maps returns the two tables in a form symbol.WithUnitTables accepts.
func (t SubTables) Maps() []map[string]float64 {
	return []map[string]float64{t.A, t.B}
}

// New draws two independent substitution tables from the given seed. The
// same seed always yields the same tables.
func New(seed int64) SubTables {
	rng := rand.New(rand.NewSource(seed))

	return SubTables{A: generate(rng), B: generate(rng)}
}

// generate draws one table: a random factor per fundamental unit, then every
// derived factor computed from those.
func generate(rng *rand.Rand) map[string]float64 {
	m := make(map[string]float64, 128)

	used := make([]float64, 0, len(fundamental))
	for _, name := range fundamental {
		f := drawFactor(rng, used)
		used = append(used, f)
		m[name] = f
	}
	addDerived(m)

	return m
}

// drawFactor draws uniformly from [1−RandRange, 1+RandRange], redrawing
// until the value is at least Separation away from every earlier draw.
func drawFactor(rng *rand.Rand, used []float64) float64 {
	for {
		f := 1 - RandRange + 2*RandRange*rng.Float64()
		ok := true
		for _, u := range used {
			if math.Abs(f-u) < Separation {
				ok = false

				break
			}
		}
		if ok {
			return f
		}
	}
}

// addDerived fills in the catalog from the fundamental factors. Each formula
// is the unit's exact SI decomposition, so compatible units keep their exact
// ratio inside one table and cancel under substitution.
func addDerived(m map[string]float64) {
	var (
		meter    = m["meter"]
		kilogram = m["kilogram"]
		second   = m["second"]
		ampere   = m["ampere"]
		kelvin   = m["kelvin"]
		mole     = m["mole"]
		candela  = m["candela"]
		bit      = m["bit"]
		radian   = m["radian"]
	)
	p := math.Pow

	m["acceleration_due_to_gravity"] = 9.80665 * meter / p(second, 2)
	m["angular_mil"] = 0.001 * radian
	m["anomalistic_year"] = 365.259636 * 24 * 60 * 60 * second
	m["atmosphere"] = 101325 * kilogram / (meter * p(second, 2))
	m["atomic_mass_constant"] = 1.66053906660e-27 * kilogram
	m["astronomical_unit"] = 149597870700 * meter
	m["avogadro_constant"] = 6.02214076e23 / mole
	m["avogadro_number"] = 6.02214076e23
	m["bar"] = 1e5 * kilogram / (meter * p(second, 2))
	m["becquerel"] = 1 / second
	m["boltzmann_constant"] = 1.380649e-23 * p(meter, 2) * kilogram / (p(second, 2) * kelvin)
	m["byte"] = 8 * bit
	m["centiliter"] = 1e-5 * p(meter, 3)
	m["centimeter"] = 0.01 * meter
	m["common_year"] = 365 * 24 * 60 * 60 * second
	m["coulomb"] = second * ampere
	m["coulomb_constant"] = 8.9875517923e9 * p(meter, 3) / (kilogram * p(second, 2) * p(ampere, 2))
	m["day"] = 86400 * second
	m["deciliter"] = 1e-4 * p(meter, 3)
	m["decimeter"] = 0.1 * meter
	m["degree"] = 0.0174532925199433 * radian
	m["dioptre"] = 1 / meter
	m["draconic_year"] = 346.620075883 * 24 * 60 * 60 * second
	m["vacuum_permittivity"] = 8.8541878128e-12 * p(second, 4) * p(ampere, 2) / (p(meter, 3) * kilogram)
	m["electronvolt"] = 1.602176634e-19 * p(meter, 2) * kilogram / p(second, 2)
	m["elementary_charge"] = 1.602176634e-19 * ampere * second
	m["exbibyte"] = p(2, 63) * bit
	m["farad"] = p(second, 4) * p(ampere, 2) / (p(meter, 2) * kilogram)
	m["faraday_constant"] = 96485.33212 * ampere * second / mole
	m["foot"] = 0.3048 * meter
	m["full_moon_cycle"] = 29.530588853 * 24 * 60 * 60 * second
	m["gibibyte"] = p(2, 33) * bit
	m["gram"] = 1e-3 * kilogram
	m["gaussian_year"] = 365.256898326 * 24 * 60 * 60 * second
	m["gravitational_constant"] = 6.67430e-11 * p(meter, 3) / (kilogram * p(second, 2))
	m["gray"] = p(meter, 2) / p(second, 2)
	m["hbar"] = 1.054571817e-34 * p(meter, 2) * kilogram / second
	m["hectare"] = 1e4 * p(meter, 2)
	m["henry"] = p(meter, 2) * kilogram / (p(second, 2) * p(ampere, 2))
	m["hertz"] = 1 / second
	m["hour"] = 3600 * second
	m["inch"] = 0.0254 * meter
	m["josephson_constant"] = 483597.8484e9 * p(meter, 2) * kilogram / (second * p(ampere, 2))
	m["joule"] = p(meter, 2) * kilogram / p(second, 2)
	m["julian_year"] = 365.25 * 24 * 60 * 60 * second
	m["katal"] = mole / second
	m["kibibyte"] = p(2, 13) * bit
	m["kilometer"] = 1000 * meter
	m["liter"] = 0.001 * p(meter, 3)
	m["lightyear"] = 9460730472580800 * meter
	m["lux"] = candela / p(meter, 2)
	m["magnetic_constant"] = 1.25663706212e-6 * meter * kilogram / (p(second, 2) * p(ampere, 2))
	m["mebibyte"] = p(2, 23) * bit
	m["milliliter"] = 1e-6 * p(meter, 3)
	m["tonne"] = 1000 * kilogram
	m["milligram"] = 1e-3 * kilogram
	m["mile"] = 1609.344 * meter
	m["microgram"] = 1e-6 * kilogram
	m["micrometer"] = 1e-6 * meter
	m["microsecond"] = 1e-6 * second
	m["millimeter"] = 0.001 * meter
	m["minute"] = 60 * second
	m["mmHg"] = 133.322 * kilogram / (meter * p(second, 2))
	m["milli_mass_unit"] = 1.66053906660e-30 * kilogram
	m["molar_gas_constant"] = 8.31446261815324 * p(meter, 2) * kilogram / (p(second, 2) * kelvin * mole)
	m["millisecond"] = 1e-3 * second
	m["nanometer"] = 1e-9 * meter
	m["nanosecond"] = 1e-9 * second
	m["nautical_mile"] = 1852 * meter
	m["newton"] = kilogram * meter / p(second, 2)
	m["ohm"] = p(meter, 2) * kilogram / (p(second, 3) * p(ampere, 2))
	m["pascal"] = kilogram / (meter * p(second, 2))
	m["pebibyte"] = p(2, 53) * bit
	m["percent"] = 0.01
	m["permille"] = 0.001
	m["picometer"] = 1e-12 * meter
	m["picosecond"] = 1e-12 * second
	m["planck"] = 5.39116e-44 * second
	m["planck_acceleration"] = 5.560e51 * meter / p(second, 2)
	m["planck_angular_frequency"] = 1.854e43 / second
	m["planck_area"] = 2.612e-70 * p(meter, 2)
	m["planck_charge"] = 1.875e-18 * ampere * second
	m["planck_current"] = 3.478e25 * ampere
	m["planck_density"] = 5.155e96 * kilogram / p(meter, 3)
	m["planck_energy"] = 1.956e9 * kilogram * p(meter, 2) / p(second, 2)
	m["planck_energy_density"] = 1.354e112 * kilogram / meter
	m["planck_force"] = 1.210e44 * kilogram * meter / p(second, 2)
	m["planck_impedance"] = 29.979 * kilogram * second / p(ampere, 2)
	m["planck_intensity"] = 1.358e121 * kilogram / (p(meter, 2) * p(second, 3))
	m["planck_length"] = 1.616e-35 * meter
	m["planck_mass"] = 2.176e-8 * kilogram
	m["planck_momentum"] = 6.524e-24 * kilogram * meter / second
	m["planck_power"] = 3.628e52 * kilogram * p(meter, 2) / p(second, 3)
	m["planck_pressure"] = 4.633e113 * kilogram / (meter * p(second, 2))
	m["planck_temperature"] = 1.416e32 * kelvin
	m["planck_time"] = 5.391e-44 * second
	m["planck_voltage"] = 1.221e27 * kilogram * p(meter, 2) / (ampere * p(second, 3))
	m["planck_volume"] = 4.222e-105 * p(meter, 3)
	m["pound"] = 0.45359237 * kilogram
	m["psi"] = 6894.757293168361 * kilogram / (meter * p(second, 2))
	m["quart"] = 0.946352946 * p(meter, 3)
	m["sidereal_year"] = 365.256363004 * 24 * 60 * 60 * second
	m["siemens"] = p(second, 3) * p(ampere, 2) / (kilogram * p(meter, 2))
	m["speed_of_light"] = 299792458 * meter / second
	m["steradian"] = p(radian, 2)
	m["stefan_boltzmann_constant"] = 5.670374419e-8 * kilogram / (p(second, 3) * p(kelvin, 4))
	m["tebibyte"] = p(2, 43) * bit
	m["tesla"] = kilogram / (p(second, 2) * ampere)
	m["tropical_year"] = 365.24219 * 24 * 60 * 60 * second
	m["von_klitzing_constant"] = 25812.8074555 * p(meter, 2) * kilogram / (p(second, 3) * p(ampere, 2))
	m["volt"] = p(meter, 2) * kilogram / (p(second, 3) * ampere)
	m["watt"] = p(meter, 2) * kilogram / p(second, 3)
	m["yard"] = 0.9144 * meter
}
