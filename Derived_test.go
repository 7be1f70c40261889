package aerocalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aerocalc "github.com/Lightslayer/AeroCalc-Package"
	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

func TestSpeedOfSound(t *testing.T) {
	tests := []struct {
		name     string
		altitude unit.Distance
		units    byte
		expected float64
	}{
		{"5000 ft", feet(5000), unit.VelocityKT, 650.01},
		{"8000 ft in mph", feet(8000), unit.VelocityMPH, 739.98},
		{"2000 m in km/h", meters(2000), unit.VelocityKMH, 1197.1},
		{"10000 m", meters(10000), unit.VelocityKT, 582.11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temperature, err := aerocalc.AltitudeToTemperature(tt.altitude)
			require.NoError(t, err)
			assertRelative(t, tt.expected, aerocalc.TemperatureToSpeedOfSound(temperature).In(tt.units), 1e-5)

			v, err := aerocalc.AltitudeToSpeedOfSound(tt.altitude)
			require.NoError(t, err)
			assertRelative(t, tt.expected, v.In(tt.units), 1e-5)
		})
	}

	_, err := aerocalc.AltitudeToSpeedOfSound(meters(90000))
	assert.ErrorIs(t, err, aerocalc.ErrOutOfRange)
}

func TestDynamicViscosity(t *testing.T) {
	assertRelative(t, 1.7894e-5, aerocalc.TemperatureToDynamicViscosity(celsius(15)).In(unit.ViscosityPascalSecond), 1e-4)
	assertRelative(t, 1.7894e-5, aerocalc.TemperatureToDynamicViscosity(fahrenheit(59)).In(unit.ViscosityPascalSecond), 1e-4)

	v, err := aerocalc.AltitudeToDynamicViscosity(meters(-5000))
	require.NoError(t, err)
	assertRelative(t, 1.9421e-5, v.In(unit.ViscosityPascalSecond), 1e-4)

	v, err = aerocalc.AltitudeToDynamicViscosity(meters(84500))
	require.NoError(t, err)
	assertRelative(t, 1.2575e-5, v.In(unit.ViscosityPascalSecond), 1e-4)

	_, err = aerocalc.AltitudeToDynamicViscosity(meters(-5001))
	assert.ErrorIs(t, err, aerocalc.ErrOutOfRange)
}
