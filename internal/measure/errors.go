package measure

import "errors"

var (
	// ErrInvalidData covers malformed submissions: missing fields, oversized
	// or unsupported images, and recognition results without a reading.
	ErrInvalidData = errors.New("invalid measure data")

	// ErrInvalidType is returned when a meter type is not WATER or GAS.
	ErrInvalidType = errors.New("measure type must be WATER or GAS")

	// ErrDoubleReport is returned when the customer already has a reading of
	// the same type in the same calendar month.
	ErrDoubleReport = errors.New("monthly reading already reported")

	// ErrNotFound is returned when no measure matches an id and value pair.
	ErrNotFound = errors.New("measure not found")

	// ErrNoMeasures is returned when a listing matches no readings at all.
	ErrNoMeasures = errors.New("no measures found")

	// ErrAlreadyConfirmed is returned on a second confirmation attempt.
	ErrAlreadyConfirmed = errors.New("measure already confirmed")
)
