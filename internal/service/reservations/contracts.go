package reservations

import (
	"context"

	"github.com/kik4/salon-booking-service/internal/domain"
)

// ReservationRepository is the storage interface the service needs.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Logger is the logging interface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
