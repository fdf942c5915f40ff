package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/kik4/salon-booking-service/internal/infra/storage/reservation"
	"github.com/kik4/salon-booking-service/internal/service/reservations/models"
)

// Service handles the plain read/cancel operations on reservations.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates a reservation service.
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: repo,
		logger:          logger,
	}
}

// GetByID fetches a reservation. A user can only see their own; cancelled
// reservations read as not found.
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if res.IsDeleted() {
		s.logger.Warn("GetByID: reservation id=%d is cancelled", id)
		return nil, ErrReservationNotFound
	}

	if res.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// ListByUser returns a user's reservations, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByUser: fetching reservations for user=%d", userID)

	list, err := s.reservationRepo.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: fetched %d reservations for user=%d", len(list), userID)
	return models.FromDomainReservationList(list), nil
}

// Cancel soft-deletes a reservation after checking ownership.
func (s *Service) Cancel(ctx context.Context, id, userID int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d for user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if res.IsDeleted() {
		return ErrReservationNotFound
	}

	if res.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", userID, id)
		return ErrAccessDenied
	}

	if err := s.reservationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to soft delete reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return nil
}
