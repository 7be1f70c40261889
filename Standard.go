package aerocalc

import (
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

//AltitudeToTemperature returns the standard temperature at the geopotential altitude
func AltitudeToTemperature(altitude unit.Distance) (unit.Temperature, error) {
	h := altitude.In(unit.DistanceFoot)
	l, err := standardLayers().layerForAltitude(h)
	if err != nil {
		return unit.Temperature{}, err
	}
	return unit.MustCreateTemperature(l.temperature(h)-cCelsiusToKelvin, unit.TemperatureCelsius), nil
}

//AltitudeToTemperatureRatio returns the ratio of the absolute standard temperature
//at the altitude to the absolute sea level temperature
func AltitudeToTemperatureRatio(altitude unit.Distance) (float64, error) {
	h := altitude.In(unit.DistanceFoot)
	l, err := standardLayers().layerForAltitude(h)
	if err != nil {
		return 0, err
	}
	return l.temperature(h) / cStandardTemperatureK, nil
}

//AltitudeToPressureRatio returns the ratio of the standard pressure at the
//altitude to the sea level pressure
func AltitudeToPressureRatio(altitude unit.Distance) (float64, error) {
	h := altitude.In(unit.DistanceFoot)
	l, err := standardLayers().layerForAltitude(h)
	if err != nil {
		return 0, err
	}
	return l.pressureRatio(h), nil
}

//AltitudeToDensityRatio returns the ratio of the standard density at the
//altitude to the sea level density
func AltitudeToDensityRatio(altitude unit.Distance) (float64, error) {
	h := altitude.In(unit.DistanceFoot)
	l, err := standardLayers().layerForAltitude(h)
	if err != nil {
		return 0, err
	}
	return l.densityRatio(h), nil
}

//AltitudeToPressure returns the standard pressure at the altitude
func AltitudeToPressure(altitude unit.Distance) (unit.Pressure, error) {
	pr, err := AltitudeToPressureRatio(altitude)
	if err != nil {
		return unit.Pressure{}, err
	}
	return unit.MustCreatePressure(pr*cStandardPressure, unit.PressureInHg), nil
}

//AltitudeToDensity returns the standard density at the altitude
func AltitudeToDensity(altitude unit.Distance) (unit.Density, error) {
	dr, err := AltitudeToDensityRatio(altitude)
	if err != nil {
		return unit.Density{}, err
	}
	return unit.MustCreateDensity(dr*cStandardDensity, unit.DensityPoundPerCubicFoot), nil
}

//AltitudeTemperatureToDensityRatio returns the density ratio of air at the
//standard pressure of the altitude but at the actual temperature specified
func AltitudeTemperatureToDensityRatio(altitude unit.Distance, temperature unit.Temperature) (float64, error) {
	pr, err := AltitudeToPressureRatio(altitude)
	if err != nil {
		return 0, err
	}
	return pr / (temperature.In(unit.TemperatureKelvin) / cStandardTemperatureK), nil
}
