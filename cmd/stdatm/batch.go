package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
)

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Density altitude for each JSON line reading on stdin",
		Long: `Density altitude for each JSON line reading on stdin.

Every line is an object with the fields elevation and temperature and,
optionally, setting or station, and dew_point or rh, in the configured units:

  {"elevation": 6000, "temperature": 24, "setting": 29.8, "rh": 0.4}

One result is written per line. Lines which cannot be computed are logged
and skipped; the command fails at the end if any line failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			var total, failed int64
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				total++
				r, err := decodeReading(line)
				if err == nil {
					var da float64
					if da, err = a.units.DensityAltitude(r); err == nil {
						err = a.out.print(field{"density_altitude", da, a.units.Altitude})
					}
				}
				if err != nil {
					failed++
					a.logger.Warn("Skipped reading", "line", total, "error", err)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			a.logger.Info("Batch done", "readings", humanize.Comma(total), "failed", humanize.Comma(failed))
			if failed > 0 {
				return fmt.Errorf("%s of %s readings failed", humanize.Comma(failed), humanize.Comma(total))
			}
			return nil
		},
	}
}

func decodeReading(line string) (aerocalc.Reading, error) {
	if !gjson.Valid(line) {
		return aerocalc.Reading{}, fmt.Errorf("invalid JSON: %q", line)
	}
	parsed := gjson.Parse(line)
	elevation := parsed.Get("elevation")
	temperature := parsed.Get("temperature")
	if !elevation.Exists() || !temperature.Exists() {
		return aerocalc.Reading{}, fmt.Errorf("elevation and temperature are required: %q", line)
	}
	return aerocalc.Reading{
		Elevation:        elevation.Float(),
		Temperature:      temperature.Float(),
		AltimeterSetting: optionalNumber(parsed, "setting"),
		StationPressure:  optionalNumber(parsed, "station"),
		DewPoint:         optionalNumber(parsed, "dew_point"),
		RelativeHumidity: optionalNumber(parsed, "rh"),
	}, nil
}

func optionalNumber(parsed gjson.Result, path string) *float64 {
	res := parsed.Get(path)
	if !res.Exists() || res.Type == gjson.Null {
		return nil
	}
	v := res.Float()
	return &v
}
