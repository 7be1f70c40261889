package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
)

// EnvPrefix prefixes every environment variable read, e.g. STDATM_ALTITUDE_UNITS.
const EnvPrefix = "STDATM"

// FileName is the config file looked up in the home directory when no
// explicit --config is given.
const FileName = ".stdatm.yaml"

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	Output   string
	Units    aerocalc.Units

	// File is the config file actually read, empty if none was found.
	File string
}

// keys and the flags overriding them
var flagKeys = map[string]string{
	"env":               "env",
	"log_level":         "log-level",
	"output":            "output",
	"units.altitude":    "altitude-units",
	"units.temperature": "temperature-units",
	"units.pressure":    "pressure-units",
	"units.density":     "density-units",
	"units.speed":       "speed-units",
	"units.viscosity":   "viscosity-units",
}

// AddFlags registers the flags Load reads on the flag set.
func AddFlags(flags *pflag.FlagSet) {
	d := aerocalc.DefaultUnits()
	flags.String("config", "", "config file (default is $HOME/"+FileName+")")
	flags.String("env", "prod", "environment: dev logs colored text, prod logs JSON")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.StringP("output", "o", OutputText, "output format: text or json")
	flags.String("altitude-units", d.Altitude, "altitude units (in, ft, yd, sm, nm, mm, cm, m, km)")
	flags.String("temperature-units", d.Temperature, "temperature units (C, F, K, R)")
	flags.String("pressure-units", d.Pressure, "pressure units (in HG, mm HG, psi, psf, mb, hPa, Pa, kPa, bar, in H2O, cm H2O)")
	flags.String("density-units", d.Density, "density units (lb/ft**3, slug/ft**3, kg/m**3, g/cm**3)")
	flags.String("speed-units", d.Speed, "speed units (m/s, km/h, ft/s, mph, kt)")
	flags.String("viscosity-units", d.Viscosity, "viscosity units (Pa s, cP, P, lb s/ft**2)")
}

// Load resolves the configuration from, in increasing priority, the
// defaults, the config file, STDATM_* environment variables and the flags
// set on the command line.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := aerocalc.DefaultUnits()
	v.SetDefault("env", "prod")
	v.SetDefault("log_level", "warn")
	v.SetDefault("output", OutputText)
	v.SetDefault("units.altitude", d.Altitude)
	v.SetDefault("units.temperature", d.Temperature)
	v.SetDefault("units.pressure", d.Pressure)
	v.SetDefault("units.density", d.Density)
	v.SetDefault("units.speed", d.Speed)
	v.SetDefault("units.viscosity", d.Viscosity)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	file, err := configFile(flags)
	if err != nil {
		return Config{}, err
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		AppEnv: strings.ToLower(strings.TrimSpace(v.GetString("env"))),
		Output: strings.ToLower(strings.TrimSpace(v.GetString("output"))),
		Units: aerocalc.Units{
			Altitude:    v.GetString("units.altitude"),
			Temperature: v.GetString("units.temperature"),
			Pressure:    v.GetString("units.pressure"),
			Density:     v.GetString("units.density"),
			Speed:       v.GetString("units.speed"),
			Viscosity:   v.GetString("units.viscosity"),
		},
		File: v.ConfigFileUsed(),
	}
	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid env %q (allowed: dev, prod)", cfg.AppEnv)
	}
	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return Config{}, fmt.Errorf("invalid output %q (allowed: text, json)", cfg.Output)
	}
	if cfg.LogLevel, err = parseLogLevel(v.GetString("log_level")); err != nil {
		return Config{}, err
	}
	if err := cfg.Units.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configFile(flags *pflag.FlagSet) (string, error) {
	if flags == nil {
		return "", nil
	}
	f := flags.Lookup("config")
	if f == nil || f.Value.String() == "" {
		return "", nil
	}
	return homedir.Expand(f.Value.String())
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
}
