package aerocalc

import (
	"fmt"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

//Units names the units in which the plain float64 values passed to and
//returned by the Units methods are expressed, e.g. "ft", "C", "in HG",
//"kg/m**3", "kt", "Pa s". An empty name means the default unit.
type Units struct {
	Altitude    string
	Temperature string
	Pressure    string
	Density     string
	Speed       string
	Viscosity   string
}

//DefaultUnits returns ft, °C, inHg, lb/ft³, kt and Pa·s
func DefaultUnits() Units {
	return Units{
		Altitude:    "ft",
		Temperature: "C",
		Pressure:    "in HG",
		Density:     "lb/ft**3",
		Speed:       "kt",
		Viscosity:   "Pa s",
	}
}

func (u Units) withDefaults() Units {
	d := DefaultUnits()
	if u.Altitude == "" {
		u.Altitude = d.Altitude
	}
	if u.Temperature == "" {
		u.Temperature = d.Temperature
	}
	if u.Pressure == "" {
		u.Pressure = d.Pressure
	}
	if u.Density == "" {
		u.Density = d.Density
	}
	if u.Speed == "" {
		u.Speed = d.Speed
	}
	if u.Viscosity == "" {
		u.Viscosity = d.Viscosity
	}
	return u
}

//Validate checks that every unit name is known
func (u Units) Validate() error {
	u = u.withDefaults()
	for _, c := range []struct {
		kind unit.Kind
		name string
	}{
		{unit.KindDistance, u.Altitude},
		{unit.KindTemperature, u.Temperature},
		{unit.KindPressure, u.Pressure},
		{unit.KindDensity, u.Density},
		{unit.KindVelocity, u.Speed},
		{unit.KindViscosity, u.Viscosity},
	} {
		if _, err := unit.ParseUnit(c.kind, c.name); err != nil {
			return err
		}
	}
	return nil
}

func (u Units) distance(value float64) (unit.Distance, error) {
	units, err := unit.ParseUnit(unit.KindDistance, u.withDefaults().Altitude)
	if err != nil {
		return unit.Distance{}, err
	}
	return unit.CreateDistance(value, units)
}

func (u Units) temperature(value float64) (unit.Temperature, error) {
	units, err := unit.ParseUnit(unit.KindTemperature, u.withDefaults().Temperature)
	if err != nil {
		return unit.Temperature{}, err
	}
	return unit.CreateTemperature(value, units)
}

func (u Units) pressure(value float64) (unit.Pressure, error) {
	units, err := unit.ParseUnit(unit.KindPressure, u.withDefaults().Pressure)
	if err != nil {
		return unit.Pressure{}, err
	}
	return unit.CreatePressure(value, units)
}

func (u Units) density(value float64) (unit.Density, error) {
	units, err := unit.ParseUnit(unit.KindDensity, u.withDefaults().Density)
	if err != nil {
		return unit.Density{}, err
	}
	return unit.CreateDensity(value, units)
}

func (u Units) fromDistance(v unit.Distance) (float64, error) {
	units, err := unit.ParseUnit(unit.KindDistance, u.withDefaults().Altitude)
	if err != nil {
		return 0, err
	}
	return v.Value(units)
}

func (u Units) fromTemperature(v unit.Temperature) (float64, error) {
	units, err := unit.ParseUnit(unit.KindTemperature, u.withDefaults().Temperature)
	if err != nil {
		return 0, err
	}
	return v.Value(units)
}

func (u Units) fromPressure(v unit.Pressure) (float64, error) {
	units, err := unit.ParseUnit(unit.KindPressure, u.withDefaults().Pressure)
	if err != nil {
		return 0, err
	}
	return v.Value(units)
}

func (u Units) fromDensity(v unit.Density) (float64, error) {
	units, err := unit.ParseUnit(unit.KindDensity, u.withDefaults().Density)
	if err != nil {
		return 0, err
	}
	return v.Value(units)
}

func (u Units) fromVelocity(v unit.Velocity) (float64, error) {
	units, err := unit.ParseUnit(unit.KindVelocity, u.withDefaults().Speed)
	if err != nil {
		return 0, err
	}
	return v.Value(units)
}

func (u Units) fromViscosity(v unit.Viscosity) (float64, error) {
	units, err := unit.ParseUnit(unit.KindViscosity, u.withDefaults().Viscosity)
	if err != nil {
		return 0, err
	}
	return v.Value(units)
}

//AltitudeToTemperature returns the standard temperature at the altitude
func (u Units) AltitudeToTemperature(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	t, err := AltitudeToTemperature(h)
	if err != nil {
		return 0, err
	}
	return u.fromTemperature(t)
}

//AltitudeToPressure returns the standard pressure at the altitude
func (u Units) AltitudeToPressure(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	p, err := AltitudeToPressure(h)
	if err != nil {
		return 0, err
	}
	return u.fromPressure(p)
}

//AltitudeToDensity returns the standard density at the altitude
func (u Units) AltitudeToDensity(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	d, err := AltitudeToDensity(h)
	if err != nil {
		return 0, err
	}
	return u.fromDensity(d)
}

//AltitudeToTemperatureRatio returns the standard temperature ratio at the altitude
func (u Units) AltitudeToTemperatureRatio(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	return AltitudeToTemperatureRatio(h)
}

//AltitudeToPressureRatio returns the standard pressure ratio at the altitude
func (u Units) AltitudeToPressureRatio(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	return AltitudeToPressureRatio(h)
}

//AltitudeToDensityRatio returns the standard density ratio at the altitude
func (u Units) AltitudeToDensityRatio(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	return AltitudeToDensityRatio(h)
}

//PressureToAltitude returns the pressure altitude
func (u Units) PressureToAltitude(pressure float64) (float64, error) {
	p, err := u.pressure(pressure)
	if err != nil {
		return 0, err
	}
	h, err := PressureToAltitude(p)
	if err != nil {
		return 0, err
	}
	return u.fromDistance(h)
}

//DensityToAltitude returns the density altitude
func (u Units) DensityToAltitude(density float64) (float64, error) {
	d, err := u.density(density)
	if err != nil {
		return 0, err
	}
	h, err := DensityToAltitude(d)
	if err != nil {
		return 0, err
	}
	return u.fromDistance(h)
}

//PressureRatioToAltitude returns the altitude of the pressure ratio
func (u Units) PressureRatioToAltitude(pressureRatio float64) (float64, error) {
	h, err := PressureRatioToAltitude(pressureRatio)
	if err != nil {
		return 0, err
	}
	return u.fromDistance(h)
}

//DensityRatioToAltitude returns the altitude of the density ratio
func (u Units) DensityRatioToAltitude(densityRatio float64) (float64, error) {
	h, err := DensityRatioToAltitude(densityRatio)
	if err != nil {
		return 0, err
	}
	return u.fromDistance(h)
}

//TemperatureToISADeviation returns the temperature deviation from the
//standard one at the altitude, as a difference in the temperature units
func (u Units) TemperatureToISADeviation(temperature, altitude float64) (float64, error) {
	t, err := u.temperature(temperature)
	if err != nil {
		return 0, err
	}
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	d, err := TemperatureToISADeviation(t, h)
	if err != nil {
		return 0, err
	}
	return unit.TemperatureDifference(d, "C", u.withDefaults().Temperature)
}

//ISADeviationToTemperature returns the temperature at the altitude for the
//deviation expressed as a difference in the temperature units
func (u Units) ISADeviationToTemperature(deviation, altitude float64) (float64, error) {
	d, err := unit.TemperatureDifference(deviation, u.withDefaults().Temperature, "C")
	if err != nil {
		return 0, err
	}
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	t, err := ISADeviationToTemperature(d, h)
	if err != nil {
		return 0, err
	}
	return u.fromTemperature(t)
}

//DensityAltitudeToTemperature returns the temperature producing the density
//altitude at the pressure altitude
func (u Units) DensityAltitudeToTemperature(densityAltitude, pressureAltitude float64) (float64, error) {
	da, err := u.distance(densityAltitude)
	if err != nil {
		return 0, err
	}
	pa, err := u.distance(pressureAltitude)
	if err != nil {
		return 0, err
	}
	t, err := DensityAltitudeToTemperature(da, pa)
	if err != nil {
		return 0, err
	}
	return u.fromTemperature(t)
}

// a bare altimeter setting above the inHg calibrated range is a hPa (mb) value
func (u Units) altimeterSetting(setting float64) (unit.Pressure, error) {
	p, err := u.pressure(setting)
	if err != nil {
		return unit.Pressure{}, err
	}
	if p.Units() == unit.PressureInHg && setting > cAltimeterSettingMaximum {
		return unit.CreatePressure(setting, unit.PressureHP)
	}
	return p, nil
}

//PressureAltitude returns the pressure altitude at the elevation for the
//altimeter setting. A setting above 35 given in inHg is read as hPa (mb).
func (u Units) PressureAltitude(elevation, setting float64) (float64, error) {
	h, err := u.distance(elevation)
	if err != nil {
		return 0, err
	}
	as, err := u.altimeterSetting(setting)
	if err != nil {
		return 0, err
	}
	pa, err := PressureAltitude(h, as)
	if err != nil {
		return 0, err
	}
	return u.fromDistance(pa)
}

//Reading is a density altitude input in plain values. At most one of
//AltimeterSetting and StationPressure, and at most one of DewPoint and
//RelativeHumidity may be set. No pressure means the standard altimeter setting,
//no moisture means dry air.
type Reading struct {
	Elevation        float64
	Temperature      float64
	AltimeterSetting *float64
	StationPressure  *float64
	DewPoint         *float64
	RelativeHumidity *float64
}

//HumidReading converts the reading into typed measurements
func (u Units) HumidReading(r Reading) (HumidReading, error) {
	elevation, err := u.distance(r.Elevation)
	if err != nil {
		return HumidReading{}, err
	}
	temperature, err := u.temperature(r.Temperature)
	if err != nil {
		return HumidReading{}, err
	}

	reference := StandardAltimeterSetting()
	switch {
	case r.AltimeterSetting != nil && r.StationPressure != nil:
		return HumidReading{}, fmt.Errorf("%w: both altimeter setting and station pressure are specified", ErrInvalidPressure)
	case r.AltimeterSetting != nil:
		as, err := u.altimeterSetting(*r.AltimeterSetting)
		if err != nil {
			return HumidReading{}, err
		}
		reference = AltimeterSetting(as)
	case r.StationPressure != nil:
		p, err := u.pressure(*r.StationPressure)
		if err != nil {
			return HumidReading{}, err
		}
		reference = StationPressure(p)
	}

	var dewPoint *unit.Temperature
	if r.DewPoint != nil {
		dp, err := u.temperature(*r.DewPoint)
		if err != nil {
			return HumidReading{}, err
		}
		dewPoint = &dp
	}
	moisture, err := NewMoisture(dewPoint, r.RelativeHumidity)
	if err != nil {
		return HumidReading{}, err
	}

	return HumidReading{
		Elevation:   elevation,
		Temperature: temperature,
		Pressure:    reference,
		Moisture:    moisture,
	}, nil
}

//DensityAltitude returns the density altitude for the reading
func (u Units) DensityAltitude(r Reading) (float64, error) {
	reading, err := u.HumidReading(r)
	if err != nil {
		return 0, err
	}
	da, err := DensityAltitude(reading)
	if err != nil {
		return 0, err
	}
	return u.fromDistance(da)
}

//SaturationVaporPressure returns the water vapor pressure.
//
//With a dew point it is the saturation pressure at the dew point, which may not
//exceed the temperature if both are given. With a relative humidity the
//temperature is required. With the temperature only it is the saturation
//pressure at the temperature.
func (u Units) SaturationVaporPressure(dewPoint, rh, temperature *float64) (float64, error) {
	var ambient *unit.Temperature
	if temperature != nil {
		t, err := u.temperature(*temperature)
		if err != nil {
			return 0, err
		}
		ambient = &t
	}

	var p unit.Pressure
	switch {
	case dewPoint != nil && rh != nil:
		return 0, fmt.Errorf("%w: both dew point and relative humidity are specified", ErrInvalidHumidity)
	case dewPoint != nil:
		dp, err := u.temperature(*dewPoint)
		if err != nil {
			return 0, err
		}
		if ambient == nil {
			p = SaturationVaporPressure(dp)
		} else if p, err = VaporPressure(*ambient, DewPoint(dp)); err != nil {
			return 0, err
		}
	case rh != nil:
		if ambient == nil {
			return 0, fmt.Errorf("%w: relative humidity requires the temperature", ErrInvalidHumidity)
		}
		var err error
		if p, err = VaporPressure(*ambient, RelativeHumidity(*rh)); err != nil {
			return 0, err
		}
	case ambient != nil:
		p = SaturationVaporPressure(*ambient)
	default:
		return 0, fmt.Errorf("%w: neither dew point nor temperature is specified", ErrInvalidHumidity)
	}
	return u.fromPressure(p)
}

//TemperatureToSpeedOfSound returns the speed of sound at the temperature
func (u Units) TemperatureToSpeedOfSound(temperature float64) (float64, error) {
	t, err := u.temperature(temperature)
	if err != nil {
		return 0, err
	}
	return u.fromVelocity(TemperatureToSpeedOfSound(t))
}

//TemperatureToDynamicViscosity returns the dynamic viscosity at the temperature
func (u Units) TemperatureToDynamicViscosity(temperature float64) (float64, error) {
	t, err := u.temperature(temperature)
	if err != nil {
		return 0, err
	}
	return u.fromViscosity(TemperatureToDynamicViscosity(t))
}

//AltitudeToSpeedOfSound returns the speed of sound at the altitude
func (u Units) AltitudeToSpeedOfSound(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	v, err := AltitudeToSpeedOfSound(h)
	if err != nil {
		return 0, err
	}
	return u.fromVelocity(v)
}

//AltitudeToDynamicViscosity returns the dynamic viscosity at the altitude
func (u Units) AltitudeToDynamicViscosity(altitude float64) (float64, error) {
	h, err := u.distance(altitude)
	if err != nil {
		return 0, err
	}
	v, err := AltitudeToDynamicViscosity(h)
	if err != nil {
		return 0, err
	}
	return u.fromViscosity(v)
}

//DewPointFromRelativeHumidity returns the dew point of the air at the
//temperature with the relative humidity
func (u Units) DewPointFromRelativeHumidity(temperature, rh float64) (float64, error) {
	t, err := u.temperature(temperature)
	if err != nil {
		return 0, err
	}
	dp, err := DewPointFromRelativeHumidity(t, rh)
	if err != nil {
		return 0, err
	}
	return u.fromTemperature(dp)
}
