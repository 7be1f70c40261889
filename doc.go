//Package aerocalc implements the 1976 US Standard Atmosphere from -5 km up to
//84.852 km geopotential altitude: standard temperature, pressure and density
//at an altitude, the altitude of a pressure or density, temperature deviations
//from the standard day, water vapor pressure, pressure and density altitude,
//speed of sound and dynamic viscosity.
//
//Values are passed as typed measurements of the bmath/unit package, so any
//supported unit may be used. The Units type offers the same operations
//on plain float64 values in units named by strings.
//
//The layer table is built once on first use and is safe for concurrent use.
package aerocalc
