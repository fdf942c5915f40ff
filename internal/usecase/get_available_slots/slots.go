package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/kik4/salon-booking-service/internal/domain"
)

// dayWindowJST returns the instant range covering the whole of date in the
// salon's timezone: [00:00:00, 23:59:59.999].
func dayWindowJST(date time.Time) (time.Time, time.Time) {
	year, month, day := date.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, domain.JST)
	to := time.Date(year, month, day, 23, 59, 59, 999_000_000, domain.JST)
	return from, to
}

// reservationRanges normalizes each reservation's timestamps and converts
// them into decimal-hour ranges, sorted by start ascending. The sort is
// defensive: subtraction does not depend on it for disjoint reservations,
// but it keeps the result deterministic if overlapping reservations ever
// appear.
func reservationRanges(reservations []*domain.Reservation) ([]domain.TimeRange, error) {
	ranges := make([]domain.TimeRange, 0, len(reservations))
	for _, res := range reservations {
		start, err := domain.ParseDateTime(res.StartTime)
		if err != nil {
			return nil, fmt.Errorf("reservation id=%d start_time: %w", res.ID, err)
		}
		end, err := domain.ParseDateTime(res.EndTime)
		if err != nil {
			return nil, fmt.Errorf("reservation id=%d end_time: %w", res.ID, err)
		}
		ranges = append(ranges, domain.TimeRange{
			Start: domain.DecimalHoursJST(start),
			End:   domain.DecimalHoursJST(end),
		})
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start < ranges[j].Start
	})

	return ranges, nil
}

// subtractReservations whittles the business periods down to the ranges
// not covered by any reservation. Reservations entirely outside business
// hours fall into the disjoint case and leave the periods unchanged.
func subtractReservations(periods, reservations []domain.TimeRange) []domain.TimeRange {
	free := periods
	for _, cut := range reservations {
		free = domain.SubtractFromRanges(free, cut)
	}
	return free
}

// toSlots converts numeric free ranges back into wall-clock slots,
// preserving order.
func toSlots(free []domain.TimeRange) []domain.AvailableTimeSlot {
	slots := make([]domain.AvailableTimeSlot, 0, len(free))
	for _, r := range free {
		slots = append(slots, domain.AvailableTimeSlot{
			StartTime: domain.DecimalHoursToTimeString(r.Start),
			EndTime:   domain.DecimalHoursToTimeString(r.End),
		})
	}
	return slots
}
