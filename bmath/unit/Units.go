//Package unit provides typed measurement values (distance, temperature,
//pressure, density, velocity and viscosity) and conversion between units
//named either by the byte constants or by their conventional names
//("ft", "in HG", "kg/m**3", ...).
package unit

import (
	"errors"
	"fmt"
	"strings"
)

//ErrInvalidUnit is returned when a unit code or unit name is not recognized
var ErrInvalidUnit = errors.New("unit: invalid unit")

//Kind is the physical quantity a unit measures
type Kind byte

const (
	KindDistance Kind = iota
	KindTemperature
	KindPressure
	KindDensity
	KindVelocity
	KindViscosity
)

func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindTemperature:
		return "temperature"
	case KindPressure:
		return "pressure"
	case KindDensity:
		return "density"
	case KindVelocity:
		return "velocity"
	case KindViscosity:
		return "viscosity"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

type converter struct {
	toDefault   func(float64, byte) (float64, error)
	fromDefault func(float64, byte) (float64, error)
}

var converters = map[Kind]converter{
	KindDistance:    {distanceToDefault, distanceFromDefault},
	KindTemperature: {temperatureToDefault, temperatureFromDefault},
	KindPressure:    {pressureToDefault, pressureFromDefault},
	KindDensity:     {densityToDefault, densityFromDefault},
	KindVelocity:    {velocityToDefault, velocityFromDefault},
	KindViscosity:   {viscosityToDefault, viscosityFromDefault},
}

// names are matched case-insensitively with surrounding blanks removed
var unitNames = map[Kind]map[string]byte{
	KindDistance: {
		"in": DistanceInch,
		"ft": DistanceFoot,
		"yd": DistanceYard,
		"sm": DistanceMile,
		"mi": DistanceMile,
		"nm": DistanceNauticalMile,
		"mm": DistanceMillimeter,
		"cm": DistanceCentimeter,
		"m":  DistanceMeter,
		"km": DistanceKilometer,
	},
	KindTemperature: {
		"c": TemperatureCelsius,
		"f": TemperatureFahrenheit,
		"k": TemperatureKelvin,
		"r": TemperatureRankin,
	},
	KindPressure: {
		"in hg":    PressureInHg,
		"inhg":     PressureInHg,
		"mm hg":    PressureMmHg,
		"mmhg":     PressureMmHg,
		"psi":      PressurePSI,
		"psf":      PressurePSF,
		"lb/ft**2": PressurePSF,
		"mb":       PressureHP,
		"hpa":      PressureHP,
		"pa":       PressurePascal,
		"kpa":      PressureKiloPascal,
		"bar":      PressureBar,
		"in h2o":   PressureInH2O,
		"cm h2o":   PressureCmH2O,
	},
	KindDensity: {
		"lb/ft**3":   DensityPoundPerCubicFoot,
		"slug/ft**3": DensitySlugPerCubicFoot,
		"kg/m**3":    DensityKilogramPerCubicMeter,
		"g/cm**3":    DensityGramPerCubicCentimeter,
	},
	KindVelocity: {
		"m/s":  VelocityMPS,
		"km/h": VelocityKMH,
		"ft/s": VelocityFPS,
		"mph":  VelocityMPH,
		"kt":   VelocityKT,
	},
	KindViscosity: {
		"pa s":       ViscosityPascalSecond,
		"pa-s":       ViscosityPascalSecond,
		"n s/m**2":   ViscosityPascalSecond,
		"cp":         ViscosityCentipoise,
		"p":          ViscosityPoise,
		"lb s/ft**2": ViscosityPoundSecondPerSquareFoot,
	},
}

//ParseUnit returns the unit code for the unit name of the specified kind
func ParseUnit(kind Kind, name string) (byte, error) {
	names, ok := unitNames[kind]
	if !ok {
		return 0, fmt.Errorf("%w: unknown quantity %s", ErrInvalidUnit, kind)
	}
	units, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrInvalidUnit, name, kind)
	}
	return units, nil
}

//Convert converts a value of the specified kind between two named units
func Convert(value float64, kind Kind, from, to string) (float64, error) {
	fromUnits, err := ParseUnit(kind, from)
	if err != nil {
		return 0, err
	}
	toUnits, err := ParseUnit(kind, to)
	if err != nil {
		return 0, err
	}
	c := converters[kind]
	v, err := c.toDefault(value, fromUnits)
	if err != nil {
		return 0, err
	}
	return c.fromDefault(v, toUnits)
}

//TemperatureDifference converts a temperature difference (not an absolute
//temperature) between two named temperature units, i.e. only the scale
//of the units is applied and their offsets cancel out.
func TemperatureDifference(delta float64, from, to string) (float64, error) {
	x, err := Convert(delta, KindTemperature, from, to)
	if err != nil {
		return 0, err
	}
	zero, err := Convert(0, KindTemperature, from, to)
	if err != nil {
		return 0, err
	}
	return x - zero, nil
}
