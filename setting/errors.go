package setting

import "errors"

// Normalized setting errors. Callers classify failures with errors.Is.
var (
	// ErrInvalidIndex reports a group index outside [0, group count).
	ErrInvalidIndex = errors.New("INVALID_INDEX")

	// ErrInvalidValue reports a value rejected by the active group's
	// membership, range, or tolerance check.
	ErrInvalidValue = errors.New("INVALID_VALUE")

	// ErrInvalidValueType reports an assignment whose dynamic type is
	// not one of the types the setting accepts.
	ErrInvalidValueType = errors.New("INVALID_VALUE_TYPE")
)
