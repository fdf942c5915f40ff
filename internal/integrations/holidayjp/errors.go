package holidayjp

import "errors"

var (
	// ErrInternal is returned on request construction or transport failures.
	ErrInternal = errors.New("holidayjp client: internal error")

	// ErrInvalidResponse is returned when the calendar answers with an
	// unexpected status or undecodable body.
	ErrInvalidResponse = errors.New("holidayjp client: invalid response")
)
