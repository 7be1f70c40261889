package main

import (
	"github.com/spf13/cobra"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

func newSoundCmd(a *app) *cobra.Command {
	var atAltitude bool
	cmd := computeCmd(a, "sound VALUE", "Speed of sound at the temperature (or altitude with --altitude)", 1,
		func(v []float64) ([]field, error) {
			var s float64
			var err error
			if atAltitude {
				s, err = a.units.AltitudeToSpeedOfSound(v[0])
			} else {
				s, err = a.units.TemperatureToSpeedOfSound(v[0])
			}
			return []field{{"speed_of_sound", s, a.units.Speed}}, err
		})
	cmd.Flags().BoolVar(&atAltitude, "altitude", false, "the value is a standard atmosphere altitude")
	return cmd
}

func newViscosityCmd(a *app) *cobra.Command {
	var atAltitude bool
	cmd := computeCmd(a, "viscosity VALUE", "Dynamic viscosity at the temperature (or altitude with --altitude)", 1,
		func(v []float64) ([]field, error) {
			var mu float64
			var err error
			if atAltitude {
				mu, err = a.units.AltitudeToDynamicViscosity(v[0])
			} else {
				mu, err = a.units.TemperatureToDynamicViscosity(v[0])
			}
			return []field{{"viscosity", mu, a.units.Viscosity}}, err
		})
	cmd.Flags().BoolVar(&atAltitude, "altitude", false, "the value is a standard atmosphere altitude")
	return cmd
}

func newStateCmd(a *app) *cobra.Command {
	var deviation float64
	cmd := computeCmd(a, "state ALTITUDE", "All properties of the atmosphere at the altitude", 1,
		func(v []float64) ([]field, error) {
			return atmosphericState(a.units, v[0], deviation)
		})
	cmd.Flags().Float64Var(&deviation, "isa", 0, "deviation from the standard temperature, in the temperature units")
	return cmd
}

func atmosphericState(u aerocalc.Units, altitude, deviation float64) ([]field, error) {
	du, err := unit.ParseUnit(unit.KindDistance, u.Altitude)
	if err != nil {
		return nil, err
	}
	tu, err := unit.ParseUnit(unit.KindTemperature, u.Temperature)
	if err != nil {
		return nil, err
	}
	pu, err := unit.ParseUnit(unit.KindPressure, u.Pressure)
	if err != nil {
		return nil, err
	}
	rhou, err := unit.ParseUnit(unit.KindDensity, u.Density)
	if err != nil {
		return nil, err
	}
	vu, err := unit.ParseUnit(unit.KindVelocity, u.Speed)
	if err != nil {
		return nil, err
	}
	muu, err := unit.ParseUnit(unit.KindViscosity, u.Viscosity)
	if err != nil {
		return nil, err
	}
	dc, err := unit.TemperatureDifference(deviation, u.Temperature, "C")
	if err != nil {
		return nil, err
	}
	h, err := unit.CreateDistance(altitude, du)
	if err != nil {
		return nil, err
	}

	s, err := aerocalc.CreateAtmosphericState(h, dc)
	if err != nil {
		return nil, err
	}
	fields := []field{
		{"temperature", s.Temperature().In(tu), u.Temperature},
		{"pressure", s.Pressure().In(pu), u.Pressure},
		{"density", s.Density().In(rhou), u.Density},
		{"pressure_ratio", s.PressureRatio(), ""},
		{"density_ratio", s.DensityRatio(), ""},
		{"speed_of_sound", s.Mach().In(vu), u.Speed},
		{"viscosity", s.Viscosity().In(muu), u.Viscosity},
	}
	if da, err := s.DensityAltitude(); err == nil {
		fields = append(fields, field{"density_altitude", da.In(du), u.Altitude})
	}
	return fields, nil
}
