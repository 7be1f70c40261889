package unit

import "fmt"

//DensityPoundPerCubicFoot is the value indicating that density value is expressed in lb/ft³
const DensityPoundPerCubicFoot byte = 80

//DensitySlugPerCubicFoot is the value indicating that density value is expressed in slug/ft³
const DensitySlugPerCubicFoot byte = 81

//DensityKilogramPerCubicMeter is the value indicating that density value is expressed in kg/m³
const DensityKilogramPerCubicMeter byte = 82

//DensityGramPerCubicCentimeter is the value indicating that density value is expressed in g/cm³
const DensityGramPerCubicCentimeter byte = 83

const cKilogramsPerCubicMeterInPoundPerCubicFoot float64 = 16.01846337396

// pounds of mass in one slug (standard gravity in ft/s²)
const cPoundsPerSlug float64 = 9.80665 / cMetersPerFoot

func densityToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DensityPoundPerCubicFoot:
		return value, nil
	case DensitySlugPerCubicFoot:
		return value * cPoundsPerSlug, nil
	case DensityKilogramPerCubicMeter:
		return value / cKilogramsPerCubicMeterInPoundPerCubicFoot, nil
	case DensityGramPerCubicCentimeter:
		return value * 1000 / cKilogramsPerCubicMeterInPoundPerCubicFoot, nil
	default:
		return 0, fmt.Errorf("Density: unit %d is not supported: %w", units, ErrInvalidUnit)
	}
}

func densityFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DensityPoundPerCubicFoot:
		return value, nil
	case DensitySlugPerCubicFoot:
		return value / cPoundsPerSlug, nil
	case DensityKilogramPerCubicMeter:
		return value * cKilogramsPerCubicMeterInPoundPerCubicFoot, nil
	case DensityGramPerCubicCentimeter:
		return value * cKilogramsPerCubicMeterInPoundPerCubicFoot / 1000, nil
	default:
		return 0, fmt.Errorf("Density: unit %d is not supported: %w", units, ErrInvalidUnit)
	}
}

//Density struct keeps the mass density value
type Density struct {
	value        float64
	defaultUnits byte
}

//CreateDensity creates a density value.
//
//units are measurement unit and may be any value from
//unit.Density* constants.
func CreateDensity(value float64, units byte) (Density, error) {
	v, err := densityToDefault(value, units)
	if err != nil {
		return Density{}, err
	}
	return Density{value: v, defaultUnits: units}, nil
}

//MustCreateDensity creates the density value but panics instead of returned a error
func MustCreateDensity(value float64, units byte) Density {
	v, err := CreateDensity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the density in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Density) Value(units byte) (float64, error) {
	return densityFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Density) Convert(units byte) Density {
	return Density{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Density) In(units byte) float64 {
	x, e := densityFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Density) String() string {
	x, e := densityFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case DensityPoundPerCubicFoot:
		unitName = "lb/ft³"
		accuracy = 6
	case DensitySlugPerCubicFoot:
		unitName = "slug/ft³"
		accuracy = 7
	case DensityKilogramPerCubicMeter:
		unitName = "kg/m³"
		accuracy = 4
	case DensityGramPerCubicCentimeter:
		unitName = "g/cm³"
		accuracy = 7
	default:
		unitName = "?"
		accuracy = 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Density) Units() byte {
	return v.defaultUnits
}
