package main

import (
	"github.com/spf13/cobra"
)

// computeCmd builds a command taking exactly nargs numeric arguments
func computeCmd(a *app, use, short string, nargs int, compute func(values []float64) ([]field, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			fields, err := compute(values)
			if err != nil {
				a.logger.Warn("Computation failed", "command", cmd.Name(), "args", args, "error", err)
				return err
			}
			return a.out.print(fields...)
		},
	}
}

func newTempCmd(a *app) *cobra.Command {
	return computeCmd(a, "temp ALTITUDE", "Standard temperature at the altitude", 1,
		func(v []float64) ([]field, error) {
			t, err := a.units.AltitudeToTemperature(v[0])
			return []field{{"temperature", t, a.units.Temperature}}, err
		})
}

func newPressCmd(a *app) *cobra.Command {
	return computeCmd(a, "press ALTITUDE", "Standard pressure at the altitude", 1,
		func(v []float64) ([]field, error) {
			p, err := a.units.AltitudeToPressure(v[0])
			return []field{{"pressure", p, a.units.Pressure}}, err
		})
}

func newDensityCmd(a *app) *cobra.Command {
	return computeCmd(a, "density ALTITUDE", "Standard density at the altitude", 1,
		func(v []float64) ([]field, error) {
			d, err := a.units.AltitudeToDensity(v[0])
			return []field{{"density", d, a.units.Density}}, err
		})
}

func newRatioCmd(a *app) *cobra.Command {
	return computeCmd(a, "ratio ALTITUDE", "Standard temperature, pressure and density ratios at the altitude", 1,
		func(v []float64) ([]field, error) {
			tr, err := a.units.AltitudeToTemperatureRatio(v[0])
			if err != nil {
				return nil, err
			}
			pr, err := a.units.AltitudeToPressureRatio(v[0])
			if err != nil {
				return nil, err
			}
			dr, err := a.units.AltitudeToDensityRatio(v[0])
			if err != nil {
				return nil, err
			}
			return []field{
				{"temperature_ratio", tr, ""},
				{"pressure_ratio", pr, ""},
				{"density_ratio", dr, ""},
			}, nil
		})
}

func newPress2AltCmd(a *app) *cobra.Command {
	return computeCmd(a, "press2alt PRESSURE", "Pressure altitude of the pressure", 1,
		func(v []float64) ([]field, error) {
			h, err := a.units.PressureToAltitude(v[0])
			return []field{{"altitude", h, a.units.Altitude}}, err
		})
}

func newDensity2AltCmd(a *app) *cobra.Command {
	return computeCmd(a, "density2alt DENSITY", "Density altitude of the density", 1,
		func(v []float64) ([]field, error) {
			h, err := a.units.DensityToAltitude(v[0])
			return []field{{"altitude", h, a.units.Altitude}}, err
		})
}

func newPressRatio2AltCmd(a *app) *cobra.Command {
	return computeCmd(a, "pratio2alt RATIO", "Altitude of the pressure ratio", 1,
		func(v []float64) ([]field, error) {
			h, err := a.units.PressureRatioToAltitude(v[0])
			return []field{{"altitude", h, a.units.Altitude}}, err
		})
}

func newDensityRatio2AltCmd(a *app) *cobra.Command {
	return computeCmd(a, "dratio2alt RATIO", "Altitude of the density ratio", 1,
		func(v []float64) ([]field, error) {
			h, err := a.units.DensityRatioToAltitude(v[0])
			return []field{{"altitude", h, a.units.Altitude}}, err
		})
}

func newISACmd(a *app) *cobra.Command {
	return computeCmd(a, "isa TEMPERATURE ALTITUDE", "Deviation of the temperature from the standard one at the altitude", 2,
		func(v []float64) ([]field, error) {
			d, err := a.units.TemperatureToISADeviation(v[0], v[1])
			return []field{{"isa_deviation", d, a.units.Temperature}}, err
		})
}

func newISA2TempCmd(a *app) *cobra.Command {
	return computeCmd(a, "isa2temp DEVIATION ALTITUDE", "Temperature at the altitude for the deviation from the standard one", 2,
		func(v []float64) ([]field, error) {
			t, err := a.units.ISADeviationToTemperature(v[0], v[1])
			return []field{{"temperature", t, a.units.Temperature}}, err
		})
}

func newDA2TempCmd(a *app) *cobra.Command {
	return computeCmd(a, "da2temp DENSITY_ALTITUDE PRESSURE_ALTITUDE", "Temperature giving the density altitude at the pressure altitude", 2,
		func(v []float64) ([]field, error) {
			t, err := a.units.DensityAltitudeToTemperature(v[0], v[1])
			return []field{{"temperature", t, a.units.Temperature}}, err
		})
}
