package get_available_slots

import (
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
)

// Request asks for the free time slots of one calendar date.
type Request struct {
	Date time.Time // date only, interpreted in the salon's timezone
}

// Response lists the free slots of the day in chronological order.
// Message is set, and Slots empty, when the salon is closed that day.
type Response struct {
	Date    time.Time
	Slots   []domain.AvailableTimeSlot
	Message string
}
