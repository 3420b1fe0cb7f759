package web

import "errors"

var (
	// ErrBadSignals is returned when request signals or form values cannot be decoded.
	ErrBadSignals = errors.New("invalid request signals")

	// ErrNotEditable is returned for profile actions on a field that has no profile view.
	ErrNotEditable = errors.New("field is not editable on the profile")
)
