package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kik4/salon-booking-service/pkg/types"
)

func TestDecimalHoursJST(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    float64
	}{
		{
			name:    "morning",
			instant: time.Date(2026, 2, 16, 1, 0, 0, 0, time.UTC), // 10:00 JST
			want:    10.0,
		},
		{
			name:    "half hour",
			instant: time.Date(2026, 2, 16, 1, 30, 0, 0, time.UTC), // 10:30 JST
			want:    10.5,
		},
		{
			name:    "wraps past midnight",
			instant: time.Date(2026, 2, 16, 16, 0, 0, 0, time.UTC), // 01:00 JST next day
			want:    1.0,
		},
		{
			name:    "exactly midnight JST",
			instant: time.Date(2026, 2, 16, 15, 0, 0, 0, time.UTC),
			want:    0.0,
		},
		{
			name:    "non-UTC input is converted first",
			instant: time.Date(2026, 2, 16, 10, 0, 0, 0, JST), // 01:00 UTC
			want:    10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DecimalHoursJST(tt.instant), 1e-9)
		})
	}
}

func TestDecimalHoursToTimeString(t *testing.T) {
	tests := []struct {
		decimal float64
		want    types.TimeString
	}{
		{9.0, "09:00"},
		{13.0, "13:00"},
		{10.5, "10:30"},
		{18.75, "18:45"},
		{0.0, "00:00"},
		{9.025, "09:02"}, // 1.5 minutes rounds half away from zero
		// a minute that rounds to 60 carries into the hour

		{13.9999, "14:00"},
		{9.9999, "10:00"},
	}

	for _, tt := range tests {
		got := DecimalHoursToTimeString(tt.decimal)
		assert.Equal(t, tt.want, got, "decimal=%v", tt.decimal)
	}
}

func TestClockRoundTrip(t *testing.T) {
	// Converting an instant to decimal hours and back recovers the JST
	// wall-clock reading for on-the-minute times.
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 1, 15, 30, 45, 59} {
			instant := time.Date(2026, 2, 16, hour, minute, 0, 0, JST)
			got := DecimalHoursToTimeString(DecimalHoursJST(instant))
			want := types.NewTimeString(instant)
			assert.Equal(t, want, got, "hour=%d minute=%d", hour, minute)
		}
	}
}
