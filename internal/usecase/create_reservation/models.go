package create_reservation

import (
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
	"github.com/kik4/salon-booking-service/pkg/types"
)

// Request describes a reservation to create.
type Request struct {
	UserID    int64
	Date      time.Time // date only, salon timezone
	StartTime types.TimeString
	EndTime   types.TimeString
	MenuName  string
	Notes     *string
}

// Response returns the created reservation.
type Response struct {
	Reservation *domain.Reservation
}
