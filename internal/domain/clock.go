package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/kik4/salon-booking-service/pkg/types"
)

// JSTOffsetHours is the fixed offset of the salon's business timezone from
// UTC. Japan has no daylight saving, so a constant is sufficient.
const JSTOffsetHours = 9

const hoursPerDay = 24

// JST is the business timezone of the salon.
var JST = time.FixedZone("JST", JSTOffsetHours*60*60)

// DecimalHoursJST converts an absolute instant into the JST wall-clock
// reading in decimal hours, wrapped into [0, 24).
func DecimalHoursJST(t time.Time) float64 {
	utc := t.UTC()
	d := float64(utc.Hour()) + JSTOffsetHours + float64(utc.Minute())/60.0
	if d >= hoursPerDay {
		d -= hoursPerDay
	}
	return d
}

// DecimalHoursToTimeString renders decimal hours as a zero-padded "HH:MM"
// value. The hour is floored and the minute rounded to nearest; a minute
// that rounds to 60 carries into the hour, so 13.9999 renders as "14:00".
func DecimalHoursToTimeString(d float64) types.TimeString {
	hours := int(math.Floor(d))
	minutes := int(math.Round((d - math.Floor(d)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return types.TimeString(fmt.Sprintf("%02d:%02d", hours, minutes))
}
