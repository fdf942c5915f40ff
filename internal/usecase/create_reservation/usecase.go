package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/kik4/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/kik4/salon-booking-service/pkg/types"
)

// UseCase creates reservations. The availability check and the insert run
// in one serializable transaction, so two concurrent requests for the same
// slot cannot both succeed.
type UseCase struct {
	reservationRepo ReservationRepository
	slotsProvider   SlotsProvider
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase creates the reservation-creation usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	slotsProvider SlotsProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotsProvider:   slotsProvider,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute validates the request, checks the requested time against the
// day's free slots and inserts the reservation.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, date=%s, time=%s-%s, menu=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.MenuName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Availability is recomputed inside the transaction. The slots
		// provider reads reservations through the same context, so its
		// snapshot and the insert below cannot be split by a concurrent
		// booking.
		slots, err := uc.slotsProvider.Execute(txCtx, &getAvailableSlots.Request{Date: req.Date})
		if err != nil {
			if errors.Is(err, getAvailableSlots.ErrInvalidDate) {
				return ErrInvalidDate
			}
			uc.logger.Error("CreateReservation: failed to compute free slots: %v", err)
			return fmt.Errorf("%w: failed to compute free slots: %v", ErrInternal, err)
		}

		if slots.Message != "" {
			uc.logger.Warn("CreateReservation: salon closed on %s: %s",
				req.Date.Format(domain.DateFormat), slots.Message)
			return fmt.Errorf("%w: %s", ErrSalonClosed, slots.Message)
		}

		candidate := domain.AvailableTimeSlot{
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}
		if !domain.IsAvailableTimeSlot(candidate, slots.Slots) {
			uc.logger.Warn("CreateReservation: slot %s-%s not available on %s",
				req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		start, err := instantInJST(req.Date, req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: start time: %v", ErrInvalidTimeRange, err)
		}
		end, err := instantInJST(req.Date, req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: end time: %v", ErrInvalidTimeRange, err)
		}

		reservation := &domain.Reservation{
			UserID:    req.UserID,
			MenuName:  req.MenuName,
			StartTime: start.Format(domain.TimestampLayout),
			EndTime:   end.Format(domain.TimestampLayout),
			Notes:     req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d for user=%d", result.ID, req.UserID)
	return &Response{Reservation: result}, nil
}

// instantInJST combines a calendar date and a wall-clock time into an
// absolute instant in the salon's timezone.
func instantInJST(date time.Time, t types.TimeString) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, minutes/60, minutes%60, 0, 0, domain.JST), nil
}
