package unit

import "github.com/katalvlaran/eqsolve/symbol"

// Fundamental units. Every derived unit in the catalog reduces to these.
var (
	Meter    = symbol.U("meter")
	Kilogram = symbol.U("kilogram")
	Second   = symbol.U("second")
	Ampere   = symbol.U("ampere")
	Kelvin   = symbol.U("kelvin")
	Mole     = symbol.U("mole")
	Candela  = symbol.U("candela")
	Bit      = symbol.U("bit")
	Radian   = symbol.U("radian")
)

// Derived units and physical constants.
var (
	AccelerationDueToGravity = symbol.U("acceleration_due_to_gravity")
	AngularMil               = symbol.U("angular_mil")
	AnomalisticYear          = symbol.U("anomalistic_year")
	Atmosphere               = symbol.U("atmosphere")
	AtomicMassConstant       = symbol.U("atomic_mass_constant")
	AstronomicalUnit         = symbol.U("astronomical_unit")
	AvogadroConstant         = symbol.U("avogadro_constant")
	AvogadroNumber           = symbol.U("avogadro_number")
	Bar                      = symbol.U("bar")
	Becquerel                = symbol.U("becquerel")
	BoltzmannConstant        = symbol.U("boltzmann_constant")
	Byte                     = symbol.U("byte")
	Centiliter               = symbol.U("centiliter")
	Centimeter               = symbol.U("centimeter")
	CommonYear               = symbol.U("common_year")
	Coulomb                  = symbol.U("coulomb")
	CoulombConstant          = symbol.U("coulomb_constant")
	Day                      = symbol.U("day")
	Deciliter                = symbol.U("deciliter")
	Decimeter                = symbol.U("decimeter")
	Degree                   = symbol.U("degree")
	Dioptre                  = symbol.U("dioptre")
	DraconicYear             = symbol.U("draconic_year")
	VacuumPermittivity       = symbol.U("vacuum_permittivity")
	Electronvolt             = symbol.U("electronvolt")
	ElementaryCharge         = symbol.U("elementary_charge")
	Exbibyte                 = symbol.U("exbibyte")
	Farad                    = symbol.U("farad")
	FaradayConstant          = symbol.U("faraday_constant")
	Foot                     = symbol.U("foot")
	FullMoonCycle            = symbol.U("full_moon_cycle")
	Gibibyte                 = symbol.U("gibibyte")
	Gram                     = symbol.U("gram")
	GaussianYear             = symbol.U("gaussian_year")
	GravitationalConstant    = symbol.U("gravitational_constant")
	Gray                     = symbol.U("gray")
	HBar                     = symbol.U("hbar")
	Hectare                  = symbol.U("hectare")
	Henry                    = symbol.U("henry")
	Hertz                    = symbol.U("hertz")
	Hour                     = symbol.U("hour")
	Inch                     = symbol.U("inch")
	JosephsonConstant        = symbol.U("josephson_constant")
	Joule                    = symbol.U("joule")
	JulianYear               = symbol.U("julian_year")
	Katal                    = symbol.U("katal")
	Kibibyte                 = symbol.U("kibibyte")
	Kilometer                = symbol.U("kilometer")
	Liter                    = symbol.U("liter")
	Lightyear                = symbol.U("lightyear")
	Lux                      = symbol.U("lux")
	MagneticConstant         = symbol.U("magnetic_constant")
	Mebibyte                 = symbol.U("mebibyte")
	Milliliter               = symbol.U("milliliter")
	Tonne                    = symbol.U("tonne")
	Milligram                = symbol.U("milligram")
	Mile                     = symbol.U("mile")
	Microgram                = symbol.U("microgram")
	Micrometer               = symbol.U("micrometer")
	Microsecond              = symbol.U("microsecond")
	Millimeter               = symbol.U("millimeter")
	Minute                   = symbol.U("minute")
	MmHg                     = symbol.U("mmHg")
	MilliMassUnit            = symbol.U("milli_mass_unit")
	MolarGasConstant         = symbol.U("molar_gas_constant")
	Millisecond              = symbol.U("millisecond")
	Nanometer                = symbol.U("nanometer")
	Nanosecond               = symbol.U("nanosecond")
	NauticalMile             = symbol.U("nautical_mile")
	Newton                   = symbol.U("newton")
	Ohm                      = symbol.U("ohm")
	Pascal                   = symbol.U("pascal")
	Pebibyte                 = symbol.U("pebibyte")
	Percent                  = symbol.U("percent")
	Permille                 = symbol.U("permille")
	Picometer                = symbol.U("picometer")
	Picosecond               = symbol.U("picosecond")
	Planck                   = symbol.U("planck")
	PlanckAcceleration       = symbol.U("planck_acceleration")
	PlanckAngularFrequency   = symbol.U("planck_angular_frequency")
	PlanckArea               = symbol.U("planck_area")
	PlanckCharge             = symbol.U("planck_charge")
	PlanckCurrent            = symbol.U("planck_current")
	PlanckDensity            = symbol.U("planck_density")
	PlanckEnergy             = symbol.U("planck_energy")
	PlanckEnergyDensity      = symbol.U("planck_energy_density")
	PlanckForce              = symbol.U("planck_force")
	PlanckImpedance          = symbol.U("planck_impedance")
	PlanckIntensity          = symbol.U("planck_intensity")
	PlanckLength             = symbol.U("planck_length")
	PlanckMass               = symbol.U("planck_mass")
	PlanckMomentum           = symbol.U("planck_momentum")
	PlanckPower              = symbol.U("planck_power")
	PlanckPressure           = symbol.U("planck_pressure")
	PlanckTemperature        = symbol.U("planck_temperature")
	PlanckTime               = symbol.U("planck_time")
	PlanckVoltage            = symbol.U("planck_voltage")
	PlanckVolume             = symbol.U("planck_volume")
	Pound                    = symbol.U("pound")
	Psi                      = symbol.U("psi")
	Quart                    = symbol.U("quart")
	SiderealYear             = symbol.U("sidereal_year")
	Siemens                  = symbol.U("siemens")
	SpeedOfLight             = symbol.U("speed_of_light")
	Steradian                = symbol.U("steradian")
	StefanBoltzmannConstant  = symbol.U("stefan_boltzmann_constant")
	Tebibyte                 = symbol.U("tebibyte")
	Tesla                    = symbol.U("tesla")
	TropicalYear             = symbol.U("tropical_year")
	VonKlitzingConstant      = symbol.U("von_klitzing_constant")
	Volt                     = symbol.U("volt")
	Watt                     = symbol.U("watt")
	Yard                     = symbol.U("yard")
)
