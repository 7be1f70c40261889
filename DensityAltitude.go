package aerocalc

import (
	"fmt"
	"math"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

const cAltimeterSettingMinimum float64 = 25 // inHg
const cAltimeterSettingMaximum float64 = 35 // inHg

// pressure altitude from the altimeter setting, ft and inHg
const cPressureAltitudeScale float64 = 145442.2
const cPressureAltitudeExponent float64 = 0.190261

// ratio of the molecular weight of water vapor to dry air
const cVaporMolecularWeightRatio float64 = 0.62198

type pressureReferenceKind byte

const (
	standardAltimeterSetting pressureReferenceKind = iota
	altimeterSetting
	stationPressure
)

//PressureReference is the pressure a density altitude is calculated from:
//either an altimeter setting (QNH) or the pressure measured at the station.
//The zero value is the standard altimeter setting.
type PressureReference struct {
	kind     pressureReferenceKind
	pressure unit.Pressure
}

//StandardAltimeterSetting returns the altimeter setting equal to the sea level standard pressure
func StandardAltimeterSetting() PressureReference {
	return PressureReference{kind: standardAltimeterSetting}
}

//AltimeterSetting returns the pressure reference set by the altimeter setting
func AltimeterSetting(setting unit.Pressure) PressureReference {
	return PressureReference{kind: altimeterSetting, pressure: setting}
}

//StationPressure returns the pressure reference set by the actual pressure at the station
func StationPressure(pressure unit.Pressure) PressureReference {
	return PressureReference{kind: stationPressure, pressure: pressure}
}

//Pressure returns the pressure of the reference
func (r PressureReference) Pressure() unit.Pressure {
	if r.kind == standardAltimeterSetting {
		return unit.MustCreatePressure(cStandardPressure, unit.PressureInHg)
	}
	return r.pressure
}

//IsStationPressure returns true if the reference is the actual pressure at the station
func (r PressureReference) IsStationPressure() bool {
	return r.kind == stationPressure
}

func (r PressureReference) String() string {
	switch r.kind {
	case altimeterSetting:
		return fmt.Sprintf("AltimeterSetting:%s", r.pressure)
	case stationPressure:
		return fmt.Sprintf("StationPressure:%s", r.pressure)
	default:
		return "AltimeterSetting:standard"
	}
}

//PressureAltitude returns the pressure altitude at the elevation for the
//altimeter setting.
//
//The altimeter setting must be in 25..35 inHg range, otherwise ErrOutOfRange is returned.
func PressureAltitude(elevation unit.Distance, setting unit.Pressure) (unit.Distance, error) {
	as := setting.In(unit.PressureInHg)
	if !(as >= cAltimeterSettingMinimum && as <= cAltimeterSettingMaximum) {
		return unit.Distance{}, fmt.Errorf("%w: altimeter setting %s is outside of %.0f to %.0f inHg",
			ErrOutOfRange, setting, cAltimeterSettingMinimum, cAltimeterSettingMaximum)
	}
	h := elevation.In(unit.DistanceFoot) +
		cPressureAltitudeScale*(1-math.Pow(as/cStandardPressure, cPressureAltitudeExponent))
	return unit.MustCreateDistance(h, unit.DistanceFoot).Convert(elevation.Units()), nil
}

//HumidReading is the set of measurements a density altitude is calculated from
type HumidReading struct {
	Elevation   unit.Distance
	Temperature unit.Temperature
	Pressure    PressureReference
	Moisture    Moisture
}

func (r HumidReading) String() string {
	return fmt.Sprintf("Elevation:%s,Temperature:%s,%s,%s",
		r.Elevation, r.Temperature, r.Pressure, r.Moisture)
}

// returns the absolute temperature (K) of dry air having the same density as
// the moist air at the pressure (inHg) with the vapor pressure (inHg)
func virtualTemperature(t, p, e float64) float64 {
	return t / (1 - e/p*(1-cVaporMolecularWeightRatio))
}

//DensityAltitude returns the altitude at which the standard atmosphere has
//the same density as the air described by the reading
func DensityAltitude(r HumidReading) (unit.Distance, error) {
	var pr float64
	if r.Pressure.IsStationPressure() {
		pr = r.Pressure.Pressure().In(unit.PressureInHg) / cStandardPressure
	} else {
		pa, err := PressureAltitude(r.Elevation, r.Pressure.Pressure())
		if err != nil {
			return unit.Distance{}, err
		}
		pr, err = AltitudeToPressureRatio(pa)
		if err != nil {
			return unit.Distance{}, err
		}
	}

	t := r.Temperature.In(unit.TemperatureKelvin)
	if !r.Moisture.IsDry() {
		e, err := VaporPressure(r.Temperature, r.Moisture)
		if err != nil {
			return unit.Distance{}, err
		}
		t = virtualTemperature(t, pr*cStandardPressure, e.In(unit.PressureInHg))
	}

	da, err := DensityRatioToAltitude(pr / (t / cStandardTemperatureK))
	if err != nil {
		return unit.Distance{}, err
	}
	return da.Convert(r.Elevation.Units()), nil
}
