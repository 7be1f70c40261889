package aerocalc

import (
	"math"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

const cHeatCapacityRatio float64 = 1.4

// Sutherland's law constants for air
const cSutherlandBeta float64 = 1.458e-6 // kg/(m·s·K^0.5)
const cSutherlandConstant float64 = 110.4 // K

//TemperatureToSpeedOfSound returns the speed of sound in dry air at the temperature
func TemperatureToSpeedOfSound(temperature unit.Temperature) unit.Velocity {
	t := temperature.In(unit.TemperatureKelvin)
	return unit.MustCreateVelocity(math.Sqrt(cHeatCapacityRatio*cGasConstant*t), unit.VelocityMPS)
}

//TemperatureToDynamicViscosity returns the dynamic viscosity of air at the temperature
func TemperatureToDynamicViscosity(temperature unit.Temperature) unit.Viscosity {
	t := temperature.In(unit.TemperatureKelvin)
	return unit.MustCreateViscosity(cSutherlandBeta*math.Pow(t, 1.5)/(t+cSutherlandConstant), unit.ViscosityPascalSecond)
}

//AltitudeToSpeedOfSound returns the speed of sound at the altitude in the standard atmosphere
func AltitudeToSpeedOfSound(altitude unit.Distance) (unit.Velocity, error) {
	t, err := AltitudeToTemperature(altitude)
	if err != nil {
		return unit.Velocity{}, err
	}
	return TemperatureToSpeedOfSound(t), nil
}

//AltitudeToDynamicViscosity returns the dynamic viscosity at the altitude in the standard atmosphere
func AltitudeToDynamicViscosity(altitude unit.Distance) (unit.Viscosity, error) {
	t, err := AltitudeToTemperature(altitude)
	if err != nil {
		return unit.Viscosity{}, err
	}
	return TemperatureToDynamicViscosity(t), nil
}
