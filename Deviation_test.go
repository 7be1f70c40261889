package aerocalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

func TestTemperatureToISADeviation(t *testing.T) {
	d, err := aerocalc.TemperatureToISADeviation(celsius(25), feet(0))
	require.NoError(t, err)
	assertRelative(t, 10, d, 1e-5)

	d, err = aerocalc.TemperatureToISADeviation(fahrenheit(0), feet(10000))
	require.NoError(t, err)
	assertRelative(t, -23.3384*5/9, d, 1e-5)

	d, err = aerocalc.TemperatureToISADeviation(unit.MustCreateTemperature(233.15, unit.TemperatureKelvin), meters(10000))
	require.NoError(t, err)
	assertRelative(t, 10, d, 1e-5)

	_, err = aerocalc.TemperatureToISADeviation(celsius(15), meters(90000))
	assert.ErrorIs(t, err, aerocalc.ErrOutOfRange)
}

func TestISADeviationToTemperature(t *testing.T) {
	temperature, err := aerocalc.ISADeviationToTemperature(25, feet(0))
	require.NoError(t, err)
	assertRelative(t, 40, temperature.In(unit.TemperatureCelsius), 1e-5)

	temperature, err = aerocalc.ISADeviationToTemperature(-10*5.0/9, feet(10000))
	require.NoError(t, err)
	assertRelative(t, 13.3384, temperature.In(unit.TemperatureFahrenheit), 1e-5)

	temperature, err = aerocalc.ISADeviationToTemperature(10, meters(10000))
	require.NoError(t, err)
	assertRelative(t, 233.15, temperature.In(unit.TemperatureKelvin), 1e-5)

	for _, h := range []float64{-16000, 0, 36089, 100000, 250000} {
		back, err := aerocalc.ISADeviationToTemperature(-7.5, feet(h))
		require.NoError(t, err)
		d, err := aerocalc.TemperatureToISADeviation(back, feet(h))
		require.NoError(t, err)
		assert.InDelta(t, -7.5, d, 1e-9, "at %.0f ft", h)
	}
}

func TestDensityAltitudeToTemperature(t *testing.T) {
	temperature, err := aerocalc.DensityAltitudeToTemperature(feet(5000), feet(3700))
	require.NoError(t, err)
	assertRelative(t, 66.02, temperature.In(unit.TemperatureFahrenheit), 1e-4)

	temperature, err = aerocalc.DensityAltitudeToTemperature(meters(450), meters(1500))
	require.NoError(t, err)
	assertRelative(t, -22, temperature.In(unit.TemperatureCelsius), 1e-3)

	temperature, err = aerocalc.DensityAltitudeToTemperature(feet(0), feet(0))
	require.NoError(t, err)
	assert.InDelta(t, 15, temperature.In(unit.TemperatureCelsius), 1e-9)

	_, err = aerocalc.DensityAltitudeToTemperature(meters(90000), feet(0))
	assert.ErrorIs(t, err, aerocalc.ErrOutOfRange)
}
