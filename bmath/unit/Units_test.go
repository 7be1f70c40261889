package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

func distanceBackAndForth(t *testing.T, value float64, units byte) {
	u, err := unit.CreateDistance(value, units)
	require.NoError(t, err, "creation failed for %d", units)
	v, err := u.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, v, 1e-7, "read back failed for %d", units)
	assert.InDelta(t, v, u.In(units), 1e-7)
}

func pressureBackAndForth(t *testing.T, value float64, units byte) {
	u, err := unit.CreatePressure(value, units)
	require.NoError(t, err, "creation failed for %d", units)
	v, err := u.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, v, 1e-7, "read back failed for %d", units)
	assert.InDelta(t, v, u.In(units), 1e-7)
}

func temperatureBackAndForth(t *testing.T, value float64, units byte) {
	u, err := unit.CreateTemperature(value, units)
	require.NoError(t, err, "creation failed for %d", units)
	v, err := u.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, v, 1e-7, "read back failed for %d", units)
	assert.InDelta(t, v, u.In(units), 1e-7)
}

func densityBackAndForth(t *testing.T, value float64, units byte) {
	u, err := unit.CreateDensity(value, units)
	require.NoError(t, err, "creation failed for %d", units)
	v, err := u.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, v, 1e-7, "read back failed for %d", units)
	assert.InDelta(t, v, u.In(units), 1e-7)
}

func velocityBackAndForth(t *testing.T, value float64, units byte) {
	u, err := unit.CreateVelocity(value, units)
	require.NoError(t, err, "creation failed for %d", units)
	v, err := u.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, v, 1e-7, "read back failed for %d", units)
	assert.InDelta(t, v, u.In(units), 1e-7)
}

func viscosityBackAndForth(t *testing.T, value float64, units byte) {
	u, err := unit.CreateViscosity(value, units)
	require.NoError(t, err, "creation failed for %d", units)
	v, err := u.Value(units)
	require.NoError(t, err)
	assert.InDelta(t, value, v, 1e-12, "read back failed for %d", units)
	assert.InDelta(t, v, u.In(units), 1e-12)
}

func TestDistance(t *testing.T) {
	distanceBackAndForth(t, 3, unit.DistanceInch)
	distanceBackAndForth(t, 3, unit.DistanceFoot)
	distanceBackAndForth(t, 3, unit.DistanceYard)
	distanceBackAndForth(t, 3, unit.DistanceMile)
	distanceBackAndForth(t, 3, unit.DistanceNauticalMile)
	distanceBackAndForth(t, 3, unit.DistanceMillimeter)
	distanceBackAndForth(t, 3, unit.DistanceCentimeter)
	distanceBackAndForth(t, 3, unit.DistanceMeter)
	distanceBackAndForth(t, 3, unit.DistanceKilometer)

	u := unit.MustCreateDistance(10, unit.DistanceKilometer)
	assert.InDelta(t, 32808.3989501, u.In(unit.DistanceFoot), 1e-6)
	assert.Equal(t, "10.000km", u.String())
	assert.Equal(t, "32808.4'", u.Convert(unit.DistanceFoot).String())

	_, err := unit.CreateDistance(1, 99)
	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
}

func TestPressure(t *testing.T) {
	pressureBackAndForth(t, 3, unit.PressureMmHg)
	pressureBackAndForth(t, 3, unit.PressureInHg)
	pressureBackAndForth(t, 3, unit.PressureBar)
	pressureBackAndForth(t, 3, unit.PressureHP)
	pressureBackAndForth(t, 3, unit.PressurePSI)
	pressureBackAndForth(t, 3, unit.PressurePSF)
	pressureBackAndForth(t, 3, unit.PressurePascal)
	pressureBackAndForth(t, 3, unit.PressureKiloPascal)
	pressureBackAndForth(t, 3, unit.PressureInH2O)
	pressureBackAndForth(t, 3, unit.PressureCmH2O)

	u := unit.MustCreatePressure(101325, unit.PressurePascal)
	assert.InDelta(t, 29.92126, u.In(unit.PressureInHg), 1e-5)
	assert.InDelta(t, 1013.25, u.In(unit.PressureHP), 1e-9)
	assert.Equal(t, "29.92inHg", u.Convert(unit.PressureInHg).String())
}

func TestTemperature(t *testing.T) {
	temperatureBackAndForth(t, 3, unit.TemperatureFahrenheit)
	temperatureBackAndForth(t, 3, unit.TemperatureCelsius)
	temperatureBackAndForth(t, 3, unit.TemperatureKelvin)
	temperatureBackAndForth(t, 3, unit.TemperatureRankin)

	u := unit.MustCreateTemperature(100, unit.TemperatureCelsius)
	assert.InDelta(t, 212, u.In(unit.TemperatureFahrenheit), 1e-9)
	assert.InDelta(t, 671.67, u.In(unit.TemperatureRankin), 1e-9)

	u = unit.MustCreateTemperature(26.85, unit.TemperatureCelsius)
	assert.Equal(t, "300.0°K", u.Convert(unit.TemperatureKelvin).String())
}

func TestDensity(t *testing.T) {
	densityBackAndForth(t, 3, unit.DensityPoundPerCubicFoot)
	densityBackAndForth(t, 3, unit.DensitySlugPerCubicFoot)
	densityBackAndForth(t, 3, unit.DensityKilogramPerCubicMeter)
	densityBackAndForth(t, 3, unit.DensityGramPerCubicCentimeter)

	u := unit.MustCreateDensity(1, unit.DensitySlugPerCubicFoot)
	assert.InEpsilon(t, 32.174, u.In(unit.DensityPoundPerCubicFoot), 1e-5)
}

func TestVelocity(t *testing.T) {
	velocityBackAndForth(t, 3, unit.VelocityMPS)
	velocityBackAndForth(t, 3, unit.VelocityKMH)
	velocityBackAndForth(t, 3, unit.VelocityFPS)
	velocityBackAndForth(t, 3, unit.VelocityMPH)
	velocityBackAndForth(t, 3, unit.VelocityKT)

	u := unit.MustCreateVelocity(1, unit.VelocityKT)
	assert.InEpsilon(t, (1852/0.3048)/5280, u.In(unit.VelocityMPH), 1e-12)
	assert.Equal(t, "1.0kt", u.String())
}

func TestViscosity(t *testing.T) {
	viscosityBackAndForth(t, 1.7894e-5, unit.ViscosityPascalSecond)
	viscosityBackAndForth(t, 1.7894e-2, unit.ViscosityCentipoise)
	viscosityBackAndForth(t, 1.7894e-4, unit.ViscosityPoise)
	viscosityBackAndForth(t, 3.737e-7, unit.ViscosityPoundSecondPerSquareFoot)

	u := unit.MustCreateViscosity(1.7894e-5, unit.ViscosityPascalSecond)
	assert.Equal(t, "1.7894e-05Pa·s", u.String())
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		kind  unit.Kind
		name  string
		units byte
	}{
		{unit.KindDistance, "ft", unit.DistanceFoot},
		{unit.KindDistance, " KM ", unit.DistanceKilometer},
		{unit.KindTemperature, "R", unit.TemperatureRankin},
		{unit.KindPressure, "in HG", unit.PressureInHg},
		{unit.KindPressure, "mb", unit.PressureHP},
		{unit.KindPressure, "lb/ft**2", unit.PressurePSF},
		{unit.KindDensity, "kg/m**3", unit.DensityKilogramPerCubicMeter},
		{unit.KindVelocity, "km/h", unit.VelocityKMH},
		{unit.KindViscosity, "Pa s", unit.ViscosityPascalSecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := unit.ParseUnit(tc.kind, tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.units, got)
		})
	}

	_, err := unit.ParseUnit(unit.KindPressure, "ft")
	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
	_, err = unit.ParseUnit(unit.Kind(42), "ft")
	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
}

func TestConvert(t *testing.T) {
	cases := []struct {
		name     string
		kind     unit.Kind
		value    float64
		from, to string
		truth    float64
		rel      float64
	}{
		{"in-ft", unit.KindDistance, 120, "in", "ft", 10, 1e-9},
		{"m-km", unit.KindDistance, 10000, "m", "km", 10, 1e-9},
		{"sm-nm", unit.KindDistance, 1, "sm", "nm", 0.86897624, 1e-8},
		{"inHg-mmHg", unit.KindPressure, 1, "in HG", "mm HG", 25.4, 1e-9},
		{"psi-psf", unit.KindPressure, 1, "psi", "lb/ft**2", 144, 1e-9},
		{"psf-mb", unit.KindPressure, 1, "lb/ft**2", "mb", 0.4788, 1e-4},
		{"mmHg-psi", unit.KindPressure, 1, "mm HG", "psi", 0.01934543333, 5e-4},
		{"cmH2O-inH2O", unit.KindPressure, 1, "cm H2O", "in H2O", 1 / 2.54, 1e-9},
		{"kg/m3-slug/ft3", unit.KindDensity, 1, "kg/m**3", "slug/ft**3", 3.6127292e-5 * 12 * 12 * 12 / 32.174, 1e-5},
		{"slug/ft3-lb/ft3", unit.KindDensity, 1, "slug/ft**3", "lb/ft**3", 32.174, 1e-5},
		{"kt-mph", unit.KindVelocity, 1, "kt", "mph", (1852. / 0.3048) / 5280, 1e-12},
		{"mph-km/h", unit.KindVelocity, 1, "mph", "km/h", 5280 * 0.3048 / 1000, 1e-12},
		{"m/s-ft/s", unit.KindVelocity, 1, "m/s", "ft/s", 1 / 0.3048, 1e-12},
		{"ft/s-kt", unit.KindVelocity, 1, "ft/s", "kt", 3600. / (1852. / 0.3048), 1e-12},
		{"C-F", unit.KindTemperature, 100, "C", "F", 212, 1e-12},
		{"K-C", unit.KindTemperature, 473.15, "K", "C", 200, 1e-12},
		{"K-R", unit.KindTemperature, 100, "K", "R", 180, 1e-12},
		{"R-F", unit.KindTemperature, 671.67, "R", "F", 212, 1e-12},
		{"F-K", unit.KindTemperature, -148, "F", "K", 173.15, 1e-12},
		{"Pa s-cP", unit.KindViscosity, 1.7894e-5, "Pa s", "cP", 1.7894e-2, 1e-12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := unit.Convert(tc.value, tc.kind, tc.from, tc.to)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.truth, got, tc.rel)
		})
	}

	_, err := unit.Convert(1, unit.KindDistance, "ft", "furlong")
	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
	_, err = unit.Convert(1, unit.KindDistance, "parsec", "ft")
	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
}

func TestTemperatureDifference(t *testing.T) {
	v, err := unit.TemperatureDifference(10, "C", "F")
	require.NoError(t, err)
	assert.InDelta(t, 18, v, 1e-9)

	v, err = unit.TemperatureDifference(10, "K", "C")
	require.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-9)

	v, err = unit.TemperatureDifference(-23.3384, "F", "R")
	require.NoError(t, err)
	assert.InDelta(t, -23.3384, v, 1e-9)

	_, err = unit.TemperatureDifference(1, "C", "X")
	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
}
