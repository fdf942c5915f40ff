package get_available_slots

import (
	"context"
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
)

// ReservationRepository is the day query behind availability computation.
type ReservationRepository interface {
	// ListByStartTimeRange returns non-deleted reservations whose start
	// time falls within [from, to]. Ordering is not part of the contract;
	// the usecase sorts defensively.
	ListByStartTimeRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
}

// HolidayCalendar answers whether a date is a public holiday.
type HolidayCalendar interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// Logger is the logging interface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
