package peaks

import "errors"

var (
	// ErrInvalidSampleRate is returned for sample rates that are not finite and > 0.
	ErrInvalidSampleRate = errors.New("peaks: sample rate must be finite and > 0")
	// ErrInvalidLength is returned when an axis is requested for fewer than one point.
	ErrInvalidLength = errors.New("peaks: point count must be >= 1")
	// ErrLengthMismatch is returned when frequencies and power differ in length.
	ErrLengthMismatch = errors.New("peaks: frequency and power lengths differ")
	// ErrInvalidThreshold is returned for a NaN threshold.
	ErrInvalidThreshold = errors.New("peaks: threshold must not be NaN")
	// ErrEmpty is returned when an operation needs at least one bin.
	ErrEmpty = errors.New("peaks: empty spectrum")
)
