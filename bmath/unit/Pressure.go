package unit

import "fmt"

//PressureMmHg is the value indicating that pressure value is expressed in millimeters of mercury
const PressureMmHg byte = 40

//PressureInHg is the value indicating that pressure value is expressed in inches of mercury
const PressureInHg byte = 41

//PressureBar is the value indicating that pressure value is expressed in bars
const PressureBar byte = 42

//PressureHP is the value indicating that pressure value is expressed in hectopascals (millibars)
const PressureHP byte = 43

//PressurePSI is the value indicating that pressure value is expressed in pounds per square inch
const PressurePSI byte = 44

//PressurePSF is the value indicating that pressure value is expressed in pounds per square foot
const PressurePSF byte = 45

//PressurePascal is the value indicating that pressure value is expressed in pascals
const PressurePascal byte = 46

//PressureKiloPascal is the value indicating that pressure value is expressed in kilopascals
const PressureKiloPascal byte = 47

//PressureInH2O is the value indicating that pressure value is expressed in inches of water
const PressureInH2O byte = 48

//PressureCmH2O is the value indicating that pressure value is expressed in centimeters of water
const PressureCmH2O byte = 49

// pascals in one inch of mercury at 0°C
const cPascalsPerInHg float64 = 3386.38864034
const cPascalsPerPSI float64 = 6894.757293168
const cPascalsPerCmH2O float64 = 98.0665

func pressureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressureInHg:
		return value, nil
	case PressureMmHg:
		return value / 25.4, nil
	case PressureBar:
		return value * 100000 / cPascalsPerInHg, nil
	case PressureHP:
		return value * 100 / cPascalsPerInHg, nil
	case PressurePSI:
		return value * cPascalsPerPSI / cPascalsPerInHg, nil
	case PressurePSF:
		return value * cPascalsPerPSI / 144 / cPascalsPerInHg, nil
	case PressurePascal:
		return value / cPascalsPerInHg, nil
	case PressureKiloPascal:
		return value * 1000 / cPascalsPerInHg, nil
	case PressureInH2O:
		return value * cPascalsPerCmH2O * 2.54 / cPascalsPerInHg, nil
	case PressureCmH2O:
		return value * cPascalsPerCmH2O / cPascalsPerInHg, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported: %w", units, ErrInvalidUnit)

	}
}

func pressureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressureInHg:
		return value, nil
	case PressureMmHg:
		return value * 25.4, nil
	case PressureBar:
		return value * cPascalsPerInHg / 100000, nil
	case PressureHP:
		return value * cPascalsPerInHg / 100, nil
	case PressurePSI:
		return value * cPascalsPerInHg / cPascalsPerPSI, nil
	case PressurePSF:
		return value * cPascalsPerInHg * 144 / cPascalsPerPSI, nil
	case PressurePascal:
		return value * cPascalsPerInHg, nil
	case PressureKiloPascal:
		return value * cPascalsPerInHg / 1000, nil
	case PressureInH2O:
		return value * cPascalsPerInHg / cPascalsPerCmH2O / 2.54, nil
	case PressureCmH2O:
		return value * cPascalsPerInHg / cPascalsPerCmH2O, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported: %w", units, ErrInvalidUnit)

	}
}

//Pressure struct keeps the pressure value
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure value.
//
//units are measurement unit and may be any value from
//unit.Pressure* constants.
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := pressureToDefault(value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure creates the pressure value but panics instead of returned a error
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the pressure in the specified units.
//
//units are measurement unit and may be any value from
//unit.Pressure* constants.
//
//The method returns a error in case the unit is
//not supported.
func (v Pressure) Value(units byte) (float64, error) {
	return pressureFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Pressure) In(units byte) float64 {
	x, e := pressureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Pressure) String() string {
	x, e := pressureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case PressureMmHg:
		unitName = "mmHg"
		accuracy = 1
	case PressureInHg:
		unitName = "inHg"
		accuracy = 2
	case PressureBar:
		unitName = "bar"
		accuracy = 4
	case PressureHP:
		unitName = "hPa"
		accuracy = 1
	case PressurePSI:
		unitName = "psi"
		accuracy = 3
	case PressurePSF:
		unitName = "psf"
		accuracy = 1
	case PressurePascal:
		unitName = "Pa"
		accuracy = 0
	case PressureKiloPascal:
		unitName = "kPa"
		accuracy = 2
	case PressureInH2O:
		unitName = "inH2O"
		accuracy = 1
	case PressureCmH2O:
		unitName = "cmH2O"
		accuracy = 1
	default:
		unitName = "?"
		accuracy = 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Pressure) Units() byte {
	return v.defaultUnits
}
