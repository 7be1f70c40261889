package aerocalc

import (
	"fmt"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

// Herman Wobus polynomial for the saturation vapor pressure over water,
// es = 6.1078 / p(T)^8 hPa with T in °C
var wobusCoefficients = [...]float64{
	0.99999683,
	-0.90826951e-2,
	0.78736169e-4,
	-0.61117958e-6,
	0.43884187e-8,
	-0.29883885e-10,
	0.21874425e-12,
	-0.17892321e-14,
	0.11112018e-16,
	-0.30994571e-19,
}

const cWobusSaturationPressure float64 = 6.1078

// the curve is strictly increasing from here up to well above boiling
const cDewPointMinimum float64 = -100

const cDewPointTolerance float64 = 1e-9

type moistureKind byte

const (
	dryAir moistureKind = iota
	dewPointMoisture
	relativeHumidityMoisture
)

//Moisture describes the water vapor content of the air either
//as a dew point or as a relative humidity. The zero value is dry air.
type Moisture struct {
	kind             moistureKind
	dewPoint         unit.Temperature
	relativeHumidity float64
}

//DryAir returns the moisture of the air without water vapor
func DryAir() Moisture {
	return Moisture{kind: dryAir}
}

//DewPoint returns the moisture of the air with the specified dew point
func DewPoint(dewPoint unit.Temperature) Moisture {
	return Moisture{kind: dewPointMoisture, dewPoint: dewPoint}
}

//RelativeHumidity returns the moisture of the air with the specified relative
//humidity as a 0 to 1 coefficient
func RelativeHumidity(rh float64) Moisture {
	return Moisture{kind: relativeHumidityMoisture, relativeHumidity: rh}
}

//NewMoisture creates the moisture from two optional inputs, at most one
//of which may be specified. Nothing specified means dry air.
func NewMoisture(dewPoint *unit.Temperature, rh *float64) (Moisture, error) {
	switch {
	case dewPoint != nil && rh != nil:
		return Moisture{}, fmt.Errorf("%w: both dew point and relative humidity are specified", ErrInvalidHumidity)
	case dewPoint != nil:
		return DewPoint(*dewPoint), nil
	case rh != nil:
		return RelativeHumidity(*rh), nil
	default:
		return DryAir(), nil
	}
}

//IsDry returns true if the moisture describes dry air
func (m Moisture) IsDry() bool {
	return m.kind == dryAir
}

//DewPoint returns the dew point and true when the moisture is set by a dew point
func (m Moisture) DewPoint() (unit.Temperature, bool) {
	return m.dewPoint, m.kind == dewPointMoisture
}

//RelativeHumidity returns the relative humidity and true when the moisture is set by it
func (m Moisture) RelativeHumidity() (float64, bool) {
	return m.relativeHumidity, m.kind == relativeHumidityMoisture
}

func (m Moisture) String() string {
	switch m.kind {
	case dewPointMoisture:
		return fmt.Sprintf("DewPoint:%s", m.dewPoint)
	case relativeHumidityMoisture:
		return fmt.Sprintf("RelativeHumidity:%.2f%%", m.relativeHumidity*100)
	default:
		return "Dry"
	}
}

func saturationVaporPressureHPa(t float64) float64 {
	var p float64
	for i := len(wobusCoefficients) - 1; i >= 0; i-- {
		p = p*t + wobusCoefficients[i]
	}
	p2 := p * p
	p4 := p2 * p2
	return cWobusSaturationPressure / (p4 * p4)
}

//SaturationVaporPressure returns the saturation pressure of water vapor at the temperature
func SaturationVaporPressure(temperature unit.Temperature) unit.Pressure {
	return unit.MustCreatePressure(saturationVaporPressureHPa(temperature.In(unit.TemperatureCelsius)), unit.PressureHP).
		Convert(unit.PressureInHg)
}

//VaporPressure returns the partial pressure of water vapor in the air at the
//ambient temperature with the specified moisture.
//
//The dew point may not exceed the ambient temperature and the relative humidity
//must be in 0..1 range, otherwise ErrInvalidHumidity is returned.
func VaporPressure(ambient unit.Temperature, moisture Moisture) (unit.Pressure, error) {
	switch moisture.kind {
	case dewPointMoisture:
		if moisture.dewPoint.In(unit.TemperatureCelsius) > ambient.In(unit.TemperatureCelsius) {
			return unit.Pressure{}, fmt.Errorf("%w: dew point %s is above the temperature %s",
				ErrInvalidHumidity, moisture.dewPoint, ambient)
		}
		return SaturationVaporPressure(moisture.dewPoint), nil
	case relativeHumidityMoisture:
		if err := checkRelativeHumidity(moisture.relativeHumidity); err != nil {
			return unit.Pressure{}, err
		}
		es := SaturationVaporPressure(ambient).In(unit.PressureInHg)
		return unit.MustCreatePressure(es*moisture.relativeHumidity, unit.PressureInHg), nil
	default:
		return unit.MustCreatePressure(0, unit.PressureInHg), nil
	}
}

func checkRelativeHumidity(rh float64) error {
	if !(rh >= 0 && rh <= 1) {
		return fmt.Errorf("%w: relative humidity %g is outside of 0..1 range", ErrInvalidHumidity, rh)
	}
	return nil
}

//DewPointFromRelativeHumidity returns the temperature at which the air with the
//relative humidity at the ambient temperature becomes saturated.
func DewPointFromRelativeHumidity(ambient unit.Temperature, rh float64) (unit.Temperature, error) {
	if err := checkRelativeHumidity(rh); err != nil {
		return unit.Temperature{}, err
	}
	if rh == 0 {
		return unit.Temperature{}, fmt.Errorf("%w: dry air has no dew point", ErrInvalidHumidity)
	}
	t := ambient.In(unit.TemperatureCelsius)
	if rh == 1 {
		return unit.MustCreateTemperature(t, unit.TemperatureCelsius), nil
	}
	target := saturationVaporPressureHPa(t) * rh

	lo, hi := cDewPointMinimum, t
	if lo > hi {
		lo = hi - 50
	}
	if saturationVaporPressureHPa(lo) > target {
		return unit.Temperature{}, fmt.Errorf("%w: dew point for relative humidity %g is below %.1f°C",
			ErrInvalidHumidity, rh, lo)
	}
	for hi-lo > cDewPointTolerance {
		mid := (lo + hi) / 2
		if mid == lo || mid == hi {
			break
		}
		if saturationVaporPressureHPa(mid) > target {
			hi = mid
		} else {
			lo = mid
		}
	}
	return unit.MustCreateTemperature((lo+hi)/2, unit.TemperatureCelsius), nil
}
