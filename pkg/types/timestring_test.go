package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 2, 16, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:45")
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:45"), ts)

	invalid := []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "09-00", "09:00:00"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", s)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	tests := []struct {
		in   TimeString
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:00", 780},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := tt.in.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "in=%s", tt.in)
	}
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("19:00").IsAfter("15:00"))
	assert.False(t, TimeString("15:00").IsAfter("15:00"))

	// Invalid values compare as neither before nor after.
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	// Wraps forward past midnight.
	got, err = TimeString("23:50").AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:10"), got)

	// Wraps backward past midnight.
	got, err = TimeString("00:10").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:40"), got)

	_, err = TimeString("oops").AddMinutes(5)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
