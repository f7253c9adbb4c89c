package state

import (
	"errors"

	"github.com/Klassiq901/ThermoApp/internal/satwater"
)

var (
	// ErrTableUnavailable mirrors the saturation-table precondition:
	// fatal for any water request, never retried.
	ErrTableUnavailable = satwater.ErrTableUnavailable

	// ErrPropertyDataMissing means interpolation produced an undefined
	// value (corrupt table row or out-of-domain data).
	ErrPropertyDataMissing = errors.New("required water property data could not be interpolated")

	// ErrInvalidGasParameters rejects custom gases violating cp > cv.
	ErrInvalidGasParameters = errors.New("invalid cp/cv for custom gas: cp must exceed cv")

	// ErrUnknownSubstance rejects a gas name with no registry entry.
	ErrUnknownSubstance = errors.New("unknown substance")
)
