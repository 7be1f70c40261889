package aerocalc

import (
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

//PressureRatioToAltitude returns the altitude at which the standard atmosphere
//has the specified pressure ratio
func PressureRatioToAltitude(pressureRatio float64) (unit.Distance, error) {
	l, err := standardLayers().layerForPressureRatio(pressureRatio)
	if err != nil {
		return unit.Distance{}, err
	}
	return unit.MustCreateDistance(l.altitudeForPressureRatio(pressureRatio), unit.DistanceFoot), nil
}

//DensityRatioToAltitude returns the altitude at which the standard atmosphere
//has the specified density ratio
func DensityRatioToAltitude(densityRatio float64) (unit.Distance, error) {
	l, err := standardLayers().layerForDensityRatio(densityRatio)
	if err != nil {
		return unit.Distance{}, err
	}
	return unit.MustCreateDistance(l.altitudeForDensityRatio(densityRatio), unit.DistanceFoot), nil
}

//PressureToAltitude returns the pressure altitude
func PressureToAltitude(pressure unit.Pressure) (unit.Distance, error) {
	return PressureRatioToAltitude(pressure.In(unit.PressureInHg) / cStandardPressure)
}

//DensityToAltitude returns the density altitude
func DensityToAltitude(density unit.Density) (unit.Distance, error) {
	return DensityRatioToAltitude(density.In(unit.DensityPoundPerCubicFoot) / cStandardDensity)
}
