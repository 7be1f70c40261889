package aerocalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

func TestSaturationVaporPressure(t *testing.T) {
	tests := []struct {
		name        string
		temperature unit.Temperature
		units       byte
		expected    float64
		tolerance   float64
	}{
		{"boiling point in Pa", fahrenheit(212), unit.PressurePascal, 101325, 1e-4},
		{"boiling point in psi", unit.MustCreateTemperature(373.15, unit.TemperatureKelvin), unit.PressurePSI, 14.696, 1e-4},
		{"freezing point in psi", fahrenheit(32), unit.PressurePSI, 0.0885, 1e-3},
		{"20 C in mmHg", celsius(20), unit.PressureMmHg, 17.54, 1e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := aerocalc.SaturationVaporPressure(tt.temperature)
			assertRelative(t, tt.expected, p.In(tt.units), tt.tolerance)
		})
	}
}

func TestSaturationVaporPressureIsIncreasing(t *testing.T) {
	prev := aerocalc.SaturationVaporPressure(celsius(-100)).In(unit.PressureInHg)
	for c := -99.5; c <= 100; c += 0.5 {
		p := aerocalc.SaturationVaporPressure(celsius(c)).In(unit.PressureInHg)
		assert.Greater(t, p, prev, "at %.1f C", c)
		prev = p
	}
}

func TestNewMoisture(t *testing.T) {
	dp := celsius(10)
	rh := 0.5

	m, err := aerocalc.NewMoisture(nil, nil)
	require.NoError(t, err)
	assert.True(t, m.IsDry())

	m, err = aerocalc.NewMoisture(&dp, nil)
	require.NoError(t, err)
	v, ok := m.DewPoint()
	assert.True(t, ok)
	assert.Equal(t, dp, v)

	m, err = aerocalc.NewMoisture(nil, &rh)
	require.NoError(t, err)
	r, ok := m.RelativeHumidity()
	assert.True(t, ok)
	assert.Equal(t, rh, r)
	_, ok = m.DewPoint()
	assert.False(t, ok)

	_, err = aerocalc.NewMoisture(&dp, &rh)
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)

	assert.True(t, aerocalc.Moisture{}.IsDry())
}

func TestVaporPressure(t *testing.T) {
	ambient := celsius(15)

	p, err := aerocalc.VaporPressure(ambient, aerocalc.DryAir())
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.In(unit.PressureInHg))

	p, err = aerocalc.VaporPressure(ambient, aerocalc.DewPoint(ambient))
	require.NoError(t, err)
	assert.InDelta(t, aerocalc.SaturationVaporPressure(ambient).In(unit.PressureInHg), p.In(unit.PressureInHg), 1e-12)

	p, err = aerocalc.VaporPressure(ambient, aerocalc.RelativeHumidity(0.5))
	require.NoError(t, err)
	assert.InDelta(t, aerocalc.SaturationVaporPressure(ambient).In(unit.PressureInHg)/2, p.In(unit.PressureInHg), 1e-12)

	_, err = aerocalc.VaporPressure(ambient, aerocalc.DewPoint(celsius(15.01)))
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)
	_, err = aerocalc.VaporPressure(ambient, aerocalc.RelativeHumidity(1.01))
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)
	_, err = aerocalc.VaporPressure(ambient, aerocalc.RelativeHumidity(-1e-2))
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)
}

func TestDewPointFromRelativeHumidity(t *testing.T) {
	for _, c := range []float64{-40, -5, 0, 15, 35} {
		ambient := celsius(c)
		for _, rh := range []float64{0.05, 0.3, 0.5, 0.99} {
			dp, err := aerocalc.DewPointFromRelativeHumidity(ambient, rh)
			require.NoError(t, err)
			assert.Less(t, dp.In(unit.TemperatureCelsius), c)

			fromDewPoint, err := aerocalc.VaporPressure(ambient, aerocalc.DewPoint(dp))
			require.NoError(t, err)
			fromHumidity, err := aerocalc.VaporPressure(ambient, aerocalc.RelativeHumidity(rh))
			require.NoError(t, err)
			assertRelative(t, fromHumidity.In(unit.PressureInHg), fromDewPoint.In(unit.PressureInHg), 1e-8,
				"at %.0f C and %.2f", c, rh)
		}
	}

	dp, err := aerocalc.DewPointFromRelativeHumidity(celsius(20), 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, dp.In(unit.TemperatureCelsius))

	_, err = aerocalc.DewPointFromRelativeHumidity(celsius(20), 0)
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)
	_, err = aerocalc.DewPointFromRelativeHumidity(celsius(20), 1e-9)
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)
	_, err = aerocalc.DewPointFromRelativeHumidity(celsius(20), 1.5)
	assert.ErrorIs(t, err, aerocalc.ErrInvalidHumidity)
}
