package create_reservation

import (
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
	createReservation "github.com/kik4/salon-booking-service/internal/usecase/create_reservation"
	"github.com/kik4/salon-booking-service/pkg/types"
)

// CreateReservationRequest is the HTTP request body.
type CreateReservationRequest struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	MenuName  string  `json:"menu_name"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse is the HTTP view of the created reservation.
type ReservationResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	MenuName  string  `json:"menu_name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToUseCaseRequest converts and validates the wire shapes of the request.
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		MenuName:  r.MenuName,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	res := resp.Reservation
	return &ReservationResponse{
		ID:        res.ID,
		UserID:    res.UserID,
		MenuName:  res.MenuName,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Notes:     res.Notes,
		CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
	}
}
