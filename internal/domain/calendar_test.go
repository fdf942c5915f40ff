package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsYearEndClosure(t *testing.T) {
	closed := []time.Time{
		time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range closed {
		assert.True(t, IsYearEndClosure(d), "date=%s", d.Format(DateFormat))
	}

	open := []time.Time{
		time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 29, 0, 0, 0, 0, time.UTC), // day 29 outside December
	}
	for _, d := range open {
		assert.False(t, IsYearEndClosure(d), "date=%s", d.Format(DateFormat))
	}
}

func TestWeeklyClosure(t *testing.T) {
	msg, closed := WeeklyClosure(time.Sunday)
	assert.True(t, closed)
	assert.Equal(t, MsgClosedSunday, msg)

	msg, closed = WeeklyClosure(time.Wednesday)
	assert.True(t, closed)
	assert.Equal(t, MsgClosedWednesday, msg)

	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Thursday, time.Friday, time.Saturday} {
		msg, closed = WeeklyClosure(wd)
		assert.False(t, closed, "weekday=%s", wd)
		assert.Empty(t, msg)
	}
}

func TestBusinessPeriods(t *testing.T) {
	full := []TimeRange{
		{Start: MorningOpenHour, End: MorningCloseHour},
		{Start: AfternoonOpenHour, End: AfternoonCloseHour},
	}

	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Thursday, time.Friday} {
		assert.Equal(t, full, BusinessPeriods(wd), "weekday=%s", wd)
	}

	// Saturday is morning only.
	assert.Equal(t, []TimeRange{{Start: MorningOpenHour, End: MorningCloseHour}}, BusinessPeriods(time.Saturday))
}
