package domain

import "time"

// Closure messages reported to callers when a date is not bookable.
// Precedence is fixed: the year-end blackout wins over weekly closures,
// which win over public holidays.
const (
	MsgClosedYearEnd   = "closed for the year-end and new-year period"
	MsgClosedSunday    = "closed on Sundays"
	MsgClosedWednesday = "closed on Wednesdays"
	MsgClosedHoliday   = "closed for a public holiday"
)

// IsYearEndClosure reports whether date falls in the fixed December 29 -
// January 3 blackout. The rule is date-based only and applies every year.
func IsYearEndClosure(date time.Time) bool {
	month, day := date.Month(), date.Day()
	if month == time.December && day >= 29 {
		return true
	}
	if month == time.January && day <= 3 {
		return true
	}
	return false
}

// WeeklyClosure reports whether the salon is closed every week on the
// given weekday, and the closure message when it is.
func WeeklyClosure(weekday time.Weekday) (string, bool) {
	switch weekday {
	case time.Sunday:
		return MsgClosedSunday, true
	case time.Wednesday:
		return MsgClosedWednesday, true
	default:
		return "", false
	}
}

// BusinessPeriods returns the day's nominal opening ranges in decimal
// hours: the morning period on every open day, the afternoon period on
// every open day except Saturday.
func BusinessPeriods(weekday time.Weekday) []TimeRange {
	periods := []TimeRange{
		{Start: MorningOpenHour, End: MorningCloseHour},
	}
	if weekday != time.Saturday {
		periods = append(periods, TimeRange{Start: AfternoonOpenHour, End: AfternoonCloseHour})
	}
	return periods
}
