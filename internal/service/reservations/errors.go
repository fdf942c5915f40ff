package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not
	// exist or has been cancelled.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when a user touches someone else's
	// reservation.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned when the repository fails.
	ErrInternal = errors.New("service: internal error")
)
