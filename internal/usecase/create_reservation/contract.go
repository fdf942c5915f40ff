package create_reservation

import (
	"context"

	"github.com/kik4/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/kik4/salon-booking-service/internal/usecase/get_available_slots"
)

// ReservationRepository persists reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// SlotsProvider computes the free slots for a date. Backed by the
// get_available_slots usecase; called inside the create transaction so the
// availability snapshot and the insert see the same data.
type SlotsProvider interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
