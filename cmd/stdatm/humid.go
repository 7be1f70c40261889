package main

import (
	"github.com/spf13/cobra"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
)

func addMoistureFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("dew-point", 0, "dew point, in the temperature units")
	cmd.Flags().Float64("rh", 0, "relative humidity, 0..1")
	cmd.MarkFlagsMutuallyExclusive("dew-point", "rh")
}

func newDACmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "da ELEVATION TEMPERATURE",
		Short: "Density altitude at the elevation for the temperature, pressure and humidity",
		Long: `Density altitude at the elevation for the temperature, pressure and humidity.

The pressure is either the altimeter setting (--setting, standard if omitted)
or the pressure measured at the elevation (--station). A bare altimeter setting
above 35 in inHg units is read as hPa (mb). The humidity is either a dew point
(--dew-point) or a relative humidity (--rh); dry air if omitted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			r := aerocalc.Reading{Elevation: values[0], Temperature: values[1]}
			for name, dst := range map[string]**float64{
				"setting":   &r.AltimeterSetting,
				"station":   &r.StationPressure,
				"dew-point": &r.DewPoint,
				"rh":        &r.RelativeHumidity,
			} {
				if *dst, err = optionalFloat(cmd, name); err != nil {
					return err
				}
			}
			da, err := a.units.DensityAltitude(r)
			if err != nil {
				a.logger.Warn("Density altitude failed", "args", args, "error", err)
				return err
			}
			return a.out.print(field{"density_altitude", da, a.units.Altitude})
		},
	}
	cmd.Flags().Float64("setting", 0, "altimeter setting, in the pressure units")
	cmd.Flags().Float64("station", 0, "station pressure, in the pressure units")
	cmd.MarkFlagsMutuallyExclusive("setting", "station")
	addMoistureFlags(cmd)
	return cmd
}

func newPACmd(a *app) *cobra.Command {
	return computeCmd(a, "pa ELEVATION SETTING", "Pressure altitude at the elevation for the altimeter setting", 2,
		func(v []float64) ([]field, error) {
			h, err := a.units.PressureAltitude(v[0], v[1])
			return []field{{"pressure_altitude", h, a.units.Altitude}}, err
		})
}

func newVaporCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vapor",
		Short: "Water vapor pressure for the dew point, or the relative humidity and temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dp, err := optionalFloat(cmd, "dew-point")
			if err != nil {
				return err
			}
			rh, err := optionalFloat(cmd, "rh")
			if err != nil {
				return err
			}
			t, err := optionalFloat(cmd, "temperature")
			if err != nil {
				return err
			}
			p, err := a.units.SaturationVaporPressure(dp, rh, t)
			if err != nil {
				a.logger.Warn("Vapor pressure failed", "error", err)
				return err
			}
			return a.out.print(field{"vapor_pressure", p, a.units.Pressure})
		},
	}
	cmd.Flags().Float64("temperature", 0, "ambient temperature, in the temperature units")
	addMoistureFlags(cmd)
	return cmd
}

func newDewPointCmd(a *app) *cobra.Command {
	return computeCmd(a, "dewpoint TEMPERATURE RH", "Dew point of the air at the temperature with the relative humidity (0..1)", 2,
		func(v []float64) ([]field, error) {
			dp, err := a.units.DewPointFromRelativeHumidity(v[0], v[1])
			return []field{{"dew_point", dp, a.units.Temperature}}, err
		})
}
