package signup

import "errors"

var (
	// ErrUnknownField is returned when a field name is not part of the form.
	ErrUnknownField = errors.New("unknown form field")

	// ErrUnknownCriterion is returned when a guidance entry names a criterion the field does not have.
	ErrUnknownCriterion = errors.New("unknown criterion for field")

	// ErrInvalidGuidance is returned when a guidance catalogue cannot be decoded.
	ErrInvalidGuidance = errors.New("invalid guidance catalogue")
)
