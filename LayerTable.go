package aerocalc

import (
	"fmt"
	"math"
	"sync"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

const cMetersPerFoot float64 = 0.3048
const cGravity float64 = 9.80665
const cGasConstant float64 = 8314.32 / 28.9644
const cCelsiusToKelvin float64 = 273.15
const cStandardTemperatureK float64 = 288.15
const cStandardPressure float64 = 101325 / 3386.38864034
const cStandardDensity float64 = 1.225 / 16.01846337396

// g0/R per foot of geopotential altitude, K/ft
const cGravityOverGasConstant float64 = cGravity / cGasConstant * cMetersPerFoot

const cAltitudeMinimum float64 = -5000 / cMetersPerFoot
const cAltitudeMaximum float64 = 84852 / cMetersPerFoot

type layerKind byte

const (
	lapseLayer layerKind = iota
	isothermalLayer
)

// base altitude (m geopotential) and lapse rate (K/km) of the 1976 US
// Standard Atmosphere; the last entry closes the profile at the top
var layerDefinitions = [...]struct {
	baseMeters float64
	lapsePerKm float64
}{
	{0, -6.5},
	{11000, 0},
	{20000, 1.0},
	{32000, 2.8},
	{47000, 0},
	{51000, -2.8},
	{71000, -2.0},
	{84852, 0},
}

type atmosphereLayer struct {
	kind              layerKind
	baseAltitude      float64 // ft
	baseTemperature   float64 // K
	lapseRate         float64 // K/ft
	basePressureRatio float64
	baseDensityRatio  float64
}

func (l *atmosphereLayer) temperature(altitude float64) float64 {
	return l.baseTemperature + l.lapseRate*(altitude-l.baseAltitude)
}

func (l *atmosphereLayer) pressureRatio(altitude float64) float64 {
	switch l.kind {
	case isothermalLayer:
		return l.basePressureRatio * math.Exp(-cGravityOverGasConstant*(altitude-l.baseAltitude)/l.baseTemperature)
	default:
		return l.basePressureRatio * math.Pow(l.temperature(altitude)/l.baseTemperature, -cGravityOverGasConstant/l.lapseRate)
	}
}

func (l *atmosphereLayer) densityRatio(altitude float64) float64 {
	return l.pressureRatio(altitude) / (l.temperature(altitude) / cStandardTemperatureK)
}

func (l *atmosphereLayer) altitudeForPressureRatio(pr float64) float64 {
	switch l.kind {
	case isothermalLayer:
		return l.baseAltitude - l.baseTemperature*math.Log(pr/l.basePressureRatio)/cGravityOverGasConstant
	default:
		t := l.baseTemperature * math.Pow(pr/l.basePressureRatio, -l.lapseRate/cGravityOverGasConstant)
		return l.baseAltitude + (t-l.baseTemperature)/l.lapseRate
	}
}

// in an isothermal layer density is proportional to pressure, in a lapse
// layer dr/dr0 = (T/T0)^-(1 + g0/(R·L))
func (l *atmosphereLayer) altitudeForDensityRatio(dr float64) float64 {
	switch l.kind {
	case isothermalLayer:
		return l.baseAltitude - l.baseTemperature*math.Log(dr/l.baseDensityRatio)/cGravityOverGasConstant
	default:
		t := l.baseTemperature * math.Pow(dr/l.baseDensityRatio, -l.lapseRate/(l.lapseRate+cGravityOverGasConstant))
		return l.baseAltitude + (t-l.baseTemperature)/l.lapseRate
	}
}

type layerTable struct {
	layers []atmosphereLayer
	// ratios at cAltitudeMinimum, the upper end of the covered ratio ranges
	pressureRatioMaximum float64
	densityRatioMaximum  float64
}

var (
	standardOnce  sync.Once
	standardTable *layerTable
)

// standardLayers returns the process-wide layer table, building it on first use
func standardLayers() *layerTable {
	standardOnce.Do(func() {
		standardTable = buildLayerTable()
	})
	return standardTable
}

func buildLayerTable() *layerTable {
	layers := make([]atmosphereLayer, len(layerDefinitions))
	for i, d := range layerDefinitions {
		l := atmosphereLayer{
			kind:         lapseLayer,
			baseAltitude: d.baseMeters / cMetersPerFoot,
			lapseRate:    d.lapsePerKm / 1000 * cMetersPerFoot,
		}
		if d.lapsePerKm == 0 {
			l.kind = isothermalLayer
		}
		if i == len(layerDefinitions)-1 {
			l.baseAltitude = cAltitudeMaximum
		}
		if i == 0 {
			l.baseTemperature = cStandardTemperatureK
			l.basePressureRatio = 1
		} else {
			below := &layers[i-1]
			l.baseTemperature = below.temperature(l.baseAltitude)
			l.basePressureRatio = below.pressureRatio(l.baseAltitude)
		}
		l.baseDensityRatio = l.basePressureRatio / (l.baseTemperature / cStandardTemperatureK)
		layers[i] = l
	}
	return &layerTable{
		layers:               layers,
		pressureRatioMaximum: layers[0].pressureRatio(cAltitudeMinimum),
		densityRatioMaximum:  layers[0].densityRatio(cAltitudeMinimum),
	}
}

func (t *layerTable) top() *atmosphereLayer {
	return &t.layers[len(t.layers)-1]
}

// layerForAltitude returns the layer whose [base, next base) interval holds
// the altitude; the top of the profile belongs to the layer below it.
func (t *layerTable) layerForAltitude(altitude float64) (*atmosphereLayer, error) {
	if !(altitude >= cAltitudeMinimum && altitude <= cAltitudeMaximum) {
		return nil, fmt.Errorf("%w: altitude %.1f ft is outside of %.1f to %.1f ft",
			ErrOutOfRange, altitude, cAltitudeMinimum, cAltitudeMaximum)
	}
	for i := len(t.layers) - 2; i > 0; i-- {
		if altitude >= t.layers[i].baseAltitude {
			return &t.layers[i], nil
		}
	}
	return &t.layers[0], nil
}

func (t *layerTable) layerForPressureRatio(pr float64) (*atmosphereLayer, error) {
	if !(pr >= t.top().basePressureRatio && pr <= t.pressureRatioMaximum) {
		return nil, fmt.Errorf("%w: pressure ratio %g is outside of %g to %g",
			ErrOutOfRange, pr, t.top().basePressureRatio, t.pressureRatioMaximum)
	}
	for i := len(t.layers) - 2; i > 0; i-- {
		if pr <= t.layers[i].basePressureRatio {
			return &t.layers[i], nil
		}
	}
	return &t.layers[0], nil
}

func (t *layerTable) layerForDensityRatio(dr float64) (*atmosphereLayer, error) {
	if !(dr >= t.top().baseDensityRatio && dr <= t.densityRatioMaximum) {
		return nil, fmt.Errorf("%w: density ratio %g is outside of %g to %g",
			ErrOutOfRange, dr, t.top().baseDensityRatio, t.densityRatioMaximum)
	}
	for i := len(t.layers) - 2; i > 0; i-- {
		if dr <= t.layers[i].baseDensityRatio {
			return &t.layers[i], nil
		}
	}
	return &t.layers[0], nil
}

//AltitudeMin returns the lowest altitude covered by the standard atmosphere
func AltitudeMin() unit.Distance {
	return unit.MustCreateDistance(cAltitudeMinimum, unit.DistanceFoot)
}

//AltitudeMax returns the highest altitude covered by the standard atmosphere
func AltitudeMax() unit.Distance {
	return unit.MustCreateDistance(cAltitudeMaximum, unit.DistanceFoot)
}

//LayerBoundaries returns the altitudes where one layer of the standard
//atmosphere ends and the next one begins
func LayerBoundaries() []unit.Distance {
	t := standardLayers()
	boundaries := make([]unit.Distance, 0, len(t.layers)-2)
	for _, l := range t.layers[1 : len(t.layers)-1] {
		boundaries = append(boundaries, unit.MustCreateDistance(l.baseAltitude, unit.DistanceFoot))
	}
	return boundaries
}
