package get_available_slots

import "errors"

var (
	// ErrInvalidDate is returned when the requested date is missing or malformed.
	ErrInvalidDate = errors.New("invalid reservation date")

	// ErrInternal is returned when a collaborator fails.
	ErrInternal = errors.New("usecase: internal error")
)
