package unit

import "fmt"

//ViscosityPascalSecond is the value indicating that dynamic viscosity is expressed in Pa·s (N·s/m²)
const ViscosityPascalSecond byte = 90

//ViscosityCentipoise is the value indicating that dynamic viscosity is expressed in centipoise
const ViscosityCentipoise byte = 91

//ViscosityPoise is the value indicating that dynamic viscosity is expressed in poise
const ViscosityPoise byte = 92

//ViscosityPoundSecondPerSquareFoot is the value indicating that dynamic viscosity is expressed in lbf·s/ft²
const ViscosityPoundSecondPerSquareFoot byte = 93

const cPascalSecondsPerPoundSecondPerSquareFoot float64 = 47.88025898

func viscosityToDefault(value float64, units byte) (float64, error) {
	switch units {
	case ViscosityPascalSecond:
		return value, nil
	case ViscosityCentipoise:
		return value / 1000, nil
	case ViscosityPoise:
		return value / 10, nil
	case ViscosityPoundSecondPerSquareFoot:
		return value * cPascalSecondsPerPoundSecondPerSquareFoot, nil
	default:
		return 0, fmt.Errorf("Viscosity: unit %d is not supported: %w", units, ErrInvalidUnit)
	}
}

func viscosityFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case ViscosityPascalSecond:
		return value, nil
	case ViscosityCentipoise:
		return value * 1000, nil
	case ViscosityPoise:
		return value * 10, nil
	case ViscosityPoundSecondPerSquareFoot:
		return value / cPascalSecondsPerPoundSecondPerSquareFoot, nil
	default:
		return 0, fmt.Errorf("Viscosity: unit %d is not supported: %w", units, ErrInvalidUnit)
	}
}

//Viscosity struct keeps the dynamic viscosity value
type Viscosity struct {
	value        float64
	defaultUnits byte
}

//CreateViscosity creates a dynamic viscosity value.
func CreateViscosity(value float64, units byte) (Viscosity, error) {
	v, err := viscosityToDefault(value, units)
	if err != nil {
		return Viscosity{}, err
	}
	return Viscosity{value: v, defaultUnits: units}, nil
}

//MustCreateViscosity creates the viscosity value but panics instead of returned a error
func MustCreateViscosity(value float64, units byte) Viscosity {
	v, err := CreateViscosity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the viscosity in the specified units.
func (v Viscosity) Value(units byte) (float64, error) {
	return viscosityFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Viscosity) Convert(units byte) Viscosity {
	return Viscosity{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Viscosity) In(units byte) float64 {
	x, e := viscosityFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Viscosity) String() string {
	x, e := viscosityFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	switch v.defaultUnits {
	case ViscosityPascalSecond:
		unitName = "Pa·s"
	case ViscosityCentipoise:
		unitName = "cP"
	case ViscosityPoise:
		unitName = "P"
	case ViscosityPoundSecondPerSquareFoot:
		unitName = "lbf·s/ft²"
	default:
		unitName = "?"
	}
	return fmt.Sprintf("%.5g%s", x, unitName)
}

//Units return the units in which the value is measured
func (v Viscosity) Units() byte {
	return v.defaultUnits
}
