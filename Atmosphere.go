package aerocalc

import (
	"fmt"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

//AtmosphericState describes the atmosphere conditions at an altitude
type AtmosphericState struct {
	altitude      unit.Distance
	temperature   unit.Temperature
	isaDeviation  float64
	pressure      unit.Pressure
	density       unit.Density
	pressureRatio float64
	densityRatio  float64
	mach          unit.Velocity
	viscosity     unit.Viscosity
}

//CreateStandardAtmosphere creates the state of the standard atmosphere at the altitude
func CreateStandardAtmosphere(altitude unit.Distance) (AtmosphericState, error) {
	return CreateAtmosphericState(altitude, 0)
}

//CreateAtmosphericState creates the state of the atmosphere at the altitude on
//a day which is isaDeviation °C warmer (or colder, if negative) than the standard one.
//
//The pressure is the standard pressure at the altitude, the density follows
//from it and the actual temperature.
func CreateAtmosphericState(altitude unit.Distance, isaDeviation float64) (AtmosphericState, error) {
	temperature, err := ISADeviationToTemperature(isaDeviation, altitude)
	if err != nil {
		return AtmosphericState{}, err
	}
	pr, err := AltitudeToPressureRatio(altitude)
	if err != nil {
		return AtmosphericState{}, err
	}
	a := AtmosphericState{
		altitude:      altitude,
		temperature:   temperature,
		isaDeviation:  isaDeviation,
		pressureRatio: pr,
	}
	a.calculate()
	return a, nil
}

func (a *AtmosphericState) calculate() {
	t := a.temperature.In(unit.TemperatureKelvin)
	a.densityRatio = a.pressureRatio / (t / cStandardTemperatureK)
	a.pressure = unit.MustCreatePressure(a.pressureRatio*cStandardPressure, unit.PressureInHg)
	a.density = unit.MustCreateDensity(a.densityRatio*cStandardDensity, unit.DensityPoundPerCubicFoot)
	a.mach = TemperatureToSpeedOfSound(a.temperature)
	a.viscosity = TemperatureToDynamicViscosity(a.temperature)
}

//Altitude returns the geopotential altitude of the state
func (a AtmosphericState) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the temperature
func (a AtmosphericState) Temperature() unit.Temperature {
	return a.temperature
}

//ISADeviation returns the difference between the temperature and the standard one, °C
func (a AtmosphericState) ISADeviation() float64 {
	return a.isaDeviation
}

//Pressure returns the pressure
func (a AtmosphericState) Pressure() unit.Pressure {
	return a.pressure
}

//Density returns the density of the air
func (a AtmosphericState) Density() unit.Density {
	return a.density
}

//PressureRatio returns the pressure relative to the sea level standard pressure
func (a AtmosphericState) PressureRatio() float64 {
	return a.pressureRatio
}

//DensityRatio returns the density relative to the sea level standard density
func (a AtmosphericState) DensityRatio() float64 {
	return a.densityRatio
}

//Mach returns the speed of sound
func (a AtmosphericState) Mach() unit.Velocity {
	return a.mach
}

//Viscosity returns the dynamic viscosity of the air
func (a AtmosphericState) Viscosity() unit.Viscosity {
	return a.viscosity
}

//DensityAltitude returns the altitude of the standard atmosphere with the same density.
//
//On a very hot or cold day near the limits of the standard atmosphere
//no such altitude exists and ErrOutOfRange is returned.
func (a AtmosphericState) DensityAltitude() (unit.Distance, error) {
	da, err := DensityRatioToAltitude(a.densityRatio)
	if err != nil {
		return unit.Distance{}, err
	}
	return da.Convert(a.altitude.Units()), nil
}

func (a AtmosphericState) String() string {
	return fmt.Sprintf("Altitude:%s,Temperature:%s,Pressure:%s,Density:%s,Mach:%s",
		a.altitude, a.temperature, a.pressure, a.density, a.mach)
}
