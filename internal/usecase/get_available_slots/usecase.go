package get_available_slots

import (
	"context"
	"fmt"

	"github.com/kik4/salon-booking-service/internal/domain"
)

// UseCase computes the free time slots of a calendar date from the salon's
// fixed schedule and the day's existing reservations.
type UseCase struct {
	reservationRepo ReservationRepository
	holidayCalendar HolidayCalendar
	logger          Logger
}

// NewUseCase creates the availability usecase.
func NewUseCase(
	reservationRepo ReservationRepository,
	holidayCalendar HolidayCalendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		holidayCalendar: holidayCalendar,
		logger:          logger,
	}
}

// Execute returns the date's free slots, or an empty slot list with a
// closure message when the salon is closed. The computation is a pure
// snapshot: it reads the day's reservations once and does not guard
// against concurrent inserts; the create path does that inside its own
// transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Closure rules run in fixed precedence so the reported reason is
	// stable: year-end blackout, then weekly closure, then holiday. The
	// holiday calendar is only consulted when the cheaper rules pass.
	if domain.IsYearEndClosure(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is in the year-end closure", req.Date.Format(domain.DateFormat))
		return closedResponse(req, domain.MsgClosedYearEnd), nil
	}

	if msg, closed := domain.WeeklyClosure(req.Date.Weekday()); closed {
		uc.logger.Info("GetAvailableSlots: %s is a weekly closure day", req.Date.Format(domain.DateFormat))
		return closedResponse(req, msg), nil
	}

	holiday, err := uc.holidayCalendar.IsHoliday(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: holiday calendar failed: %v", err)
		return nil, fmt.Errorf("%w: holiday calendar: %v", ErrInternal, err)
	}
	if holiday {
		uc.logger.Info("GetAvailableSlots: %s is a public holiday", req.Date.Format(domain.DateFormat))
		return closedResponse(req, domain.MsgClosedHoliday), nil
	}

	// Open day: fetch the day's reservations. Failures propagate without
	// retry; transient-error handling belongs to the storage layer.
	from, to := dayWindowJST(req.Date)
	reservations, err := uc.reservationRepo.ListByStartTimeRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	cuts, err := reservationRanges(reservations)
	if err != nil {
		// A stored timestamp that cannot be normalized is data corruption,
		// surfaced immediately rather than silently skipped.
		uc.logger.Error("GetAvailableSlots: bad reservation timestamp: %v", err)
		return nil, err
	}

	periods := domain.BusinessPeriods(req.Date.Weekday())
	free := subtractReservations(periods, cuts)

	uc.logger.Info("GetAvailableSlots: %d free slots on %s (%d reservations)",
		len(free), req.Date.Format(domain.DateFormat), len(reservations))

	return &Response{
		Date:  req.Date,
		Slots: toSlots(free),
	}, nil
}

func closedResponse(req *Request, message string) *Response {
	return &Response{
		Date:    req.Date,
		Slots:   []domain.AvailableTimeSlot{},
		Message: message,
	}
}
