package get_available_slots

import (
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/kik4/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response. Message is present only on
// closed days.
type AvailableSlotsResponse struct {
	Date           string              `json:"date"`
	AvailableSlots []AvailableTimeSlot `json:"available_slots"`
	Message        string              `json:"message,omitempty"`
}

// AvailableTimeSlot is one free span of the day.
type AvailableTimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableTimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableTimeSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
		Message:        resp.Message,
	}
}

// ToUseCaseRequest parses the date query parameter into a usecase request.
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}
