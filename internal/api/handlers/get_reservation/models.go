package get_reservation

import (
	"time"

	"github.com/kik4/salon-booking-service/internal/service/reservations/models"
)

// ReservationResponse is the HTTP view of a reservation.
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	MenuName  string  `json:"menu_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// FromServiceResponse converts the service model into the HTTP model.
func FromServiceResponse(res *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		UserID:    res.UserID,
		MenuName:  res.MenuName,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Notes:     res.Notes,
		CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: res.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
