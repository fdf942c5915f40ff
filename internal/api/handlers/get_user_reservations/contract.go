package get_user_reservations

import (
	"context"

	"github.com/kik4/salon-booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	ListByUser(ctx context.Context, userID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
