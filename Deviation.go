package aerocalc

import (
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

//TemperatureToISADeviation returns the difference (°C, which is the same as K)
//between the actual temperature and the standard temperature at the altitude
func TemperatureToISADeviation(temperature unit.Temperature, altitude unit.Distance) (float64, error) {
	standard, err := AltitudeToTemperature(altitude)
	if err != nil {
		return 0, err
	}
	return temperature.In(unit.TemperatureCelsius) - standard.In(unit.TemperatureCelsius), nil
}

//ISADeviationToTemperature returns the actual temperature at the altitude for
//a deviation (°C) from the standard temperature
func ISADeviationToTemperature(deviation float64, altitude unit.Distance) (unit.Temperature, error) {
	standard, err := AltitudeToTemperature(altitude)
	if err != nil {
		return unit.Temperature{}, err
	}
	return unit.MustCreateTemperature(standard.In(unit.TemperatureCelsius)+deviation, unit.TemperatureCelsius), nil
}

//DensityAltitudeToTemperature returns the temperature which produces the
//density altitude at the pressure altitude (dry air)
func DensityAltitudeToTemperature(densityAltitude, pressureAltitude unit.Distance) (unit.Temperature, error) {
	pr, err := AltitudeToPressureRatio(pressureAltitude)
	if err != nil {
		return unit.Temperature{}, err
	}
	dr, err := AltitudeToDensityRatio(densityAltitude)
	if err != nil {
		return unit.Temperature{}, err
	}
	return unit.MustCreateTemperature(pr/dr*cStandardTemperatureK, unit.TemperatureKelvin).Convert(unit.TemperatureCelsius), nil
}
