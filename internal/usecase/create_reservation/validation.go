package create_reservation

import (
	"fmt"

	"github.com/kik4/salon-booking-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if _, err := req.StartTime.Minutes(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTimeRange, err)
	}
	if _, err := req.EndTime.Minutes(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTimeRange, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidTimeRange)
	}

	if req.MenuName == "" {
		return fmt.Errorf("%w: menu name is required", ErrInvalidInput)
	}
	if len(req.MenuName) > domain.MaxMenuNameLength {
		return fmt.Errorf("%w: menu name exceeds %d characters", ErrInvalidInput, domain.MaxMenuNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
