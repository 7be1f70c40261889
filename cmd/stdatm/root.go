package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
	"github.com/Lightslayer/AeroCalc-Package/internal/config"
	"github.com/Lightslayer/AeroCalc-Package/internal/logging"
)

const appName = "stdatm"

var version = "dev"

// app is shared by the subcommands once the persistent flags are resolved
type app struct {
	cfg    config.Config
	logger *slog.Logger
	units  aerocalc.Units
	out    printer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   appName,
		Short: "1976 US Standard Atmosphere, pressure and density altitude calculator",
		Long: `stdatm computes properties of the 1976 US Standard Atmosphere from -5 km
to 84.852 km geopotential altitude, inverts pressure and density to altitude,
and calculates pressure altitude and density altitude from field readings.

Units are taken from, in increasing priority, the defaults, $HOME/.stdatm.yaml
(or --config), STDATM_* environment variables and the command line flags.

Examples:

  stdatm temp 10000
  stdatm press 25000 --altitude-units m --pressure-units Pa
  stdatm da 6000 75 --setting 29.8 --temperature-units F
  echo '{"elevation":9080,"temperature":13,"setting":1024}' | stdatm batch`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.units = cfg.Units
			a.logger = logging.New(cfg, version, appName, cmd.ErrOrStderr())
			a.out = printer{w: cmd.OutOrStdout(), format: cfg.Output}
			a.logger.Debug("Starting command", "command", cmd.CommandPath(), "args", args,
				"config", cfg.File, "units", fmt.Sprintf("%+v", cfg.Units))
			return nil
		},
	}
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newTempCmd(a),
		newPressCmd(a),
		newDensityCmd(a),
		newRatioCmd(a),
		newPress2AltCmd(a),
		newDensity2AltCmd(a),
		newPressRatio2AltCmd(a),
		newDensityRatio2AltCmd(a),
		newISACmd(a),
		newISA2TempCmd(a),
		newDA2TempCmd(a),
		newDACmd(a),
		newPACmd(a),
		newVaporCmd(a),
		newDewPointCmd(a),
		newSoundCmd(a),
		newViscosityCmd(a),
		newStateCmd(a),
		newBatchCmd(a),
	)
	return root
}

// parseArgs parses every positional argument as a number
func parseArgs(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not a number", i+1, s)
		}
		values[i] = v
	}
	return values, nil
}

// optionalFloat returns the flag value if it was set on the command line
func optionalFloat(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
