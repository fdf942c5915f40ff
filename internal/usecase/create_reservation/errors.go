package create_reservation

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the reservation date is missing or malformed.
	ErrInvalidDate = errors.New("invalid reservation date")

	// ErrInvalidTimeRange is returned when the start/end times are not a
	// valid forward range.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrSalonClosed is returned when the salon is closed on the requested date.
	ErrSalonClosed = errors.New("salon is closed on this date")

	// ErrSlotNotAvailable is returned when the requested time does not fit
	// inside any free slot.
	ErrSlotNotAvailable = errors.New("requested time slot is not available")

	// ErrInternal is returned when a collaborator fails.
	ErrInternal = errors.New("usecase: internal error")
)
