package aerocalc

import (
	"errors"

	"github.com/Lightslayer/AeroCalc-Package/bmath/unit"
)

var (
	// ErrOutOfRange indicates an altitude outside the standard atmosphere,
	// a pressure or density ratio no altitude of the standard atmosphere
	// produces, or an altimeter setting outside the instrument range.
	ErrOutOfRange = errors.New("aerocalc: value out of range")
	// ErrInvalidHumidity indicates an inconsistent dew point / relative humidity input.
	ErrInvalidHumidity = errors.New("aerocalc: invalid humidity input")
	// ErrInvalidPressure indicates both an altimeter setting and a station pressure are given.
	ErrInvalidPressure = errors.New("aerocalc: invalid pressure input")
	// ErrInvalidUnit is surfaced unchanged from the unit conversion.
	ErrInvalidUnit = unit.ErrInvalidUnit
)
