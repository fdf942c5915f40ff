package domain

import "github.com/kik4/salon-booking-service/pkg/types"

// AvailableTimeSlot is one bookable span of a day in wall-clock "HH:MM"
// form. Slots are emitted in chronological order: morning before
// afternoon, and subtraction preserves order within each period.
type AvailableTimeSlot struct {
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
}

// IsAvailableTimeSlot reports whether candidate fits entirely inside some
// free slot. Comparison is numeric, via minutes since midnight, so it does
// not depend on the string form of the times.
func IsAvailableTimeSlot(candidate AvailableTimeSlot, slots []AvailableTimeSlot) bool {
	candidateStart, err := candidate.StartTime.Minutes()
	if err != nil {
		return false
	}
	candidateEnd, err := candidate.EndTime.Minutes()
	if err != nil {
		return false
	}

	for _, slot := range slots {
		slotStart, err := slot.StartTime.Minutes()
		if err != nil {
			continue
		}
		slotEnd, err := slot.EndTime.Minutes()
		if err != nil {
			continue
		}
		if slotStart <= candidateStart && slotEnd >= candidateEnd {
			return true
		}
	}

	return false
}
