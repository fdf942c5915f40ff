package models

import (
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
)

// ReservationResponse is the service-level view of a reservation.
type ReservationResponse struct {
	ID        int64
	UserID    int64
	MenuName  string
	StartTime string
	EndTime   string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationListResponse is a list of reservations.
type ReservationListResponse struct {
	Reservations []*ReservationResponse
}

// FromDomainReservation converts a domain reservation.
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		UserID:    res.UserID,
		MenuName:  res.MenuName,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Notes:     res.Notes,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}
}

// FromDomainReservationList converts a list of domain reservations.
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	reservations := make([]*ReservationResponse, len(list))
	for i, res := range list {
		reservations[i] = FromDomainReservation(res)
	}
	return &ReservationListResponse{Reservations: reservations}
}
