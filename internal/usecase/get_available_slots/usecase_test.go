package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kik4/salon-booking-service/internal/domain"
	"github.com/kik4/salon-booking-service/pkg/types"
)

type stubReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (s *stubReservationRepo) ListByStartTimeRange(_ context.Context, _, _ time.Time) ([]*domain.Reservation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.reservations, nil
}

type stubHolidayCalendar struct {
	holiday bool
	err     error
	calls   int
}

func (s *stubHolidayCalendar) IsHoliday(_ context.Context, _ time.Time) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.holiday, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// reservation builds a stored reservation from UTC wall-clock timestamps.
// 01:00Z is 10:00 in the salon's timezone.
func reservation(id int64, start, end string) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    1,
		MenuName:  "cut",
		StartTime: start,
		EndTime:   end,
	}
}

func slotList(pairs ...string) []domain.AvailableTimeSlot {
	slots := make([]domain.AvailableTimeSlot, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		slots = append(slots, domain.AvailableTimeSlot{
			StartTime: types.TimeString(pairs[i]),
			EndTime:   types.TimeString(pairs[i+1]),
		})
	}
	return slots
}

func TestExecute_OpenDayNoReservations(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	// 2026-02-16 is a Monday.
	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	require.NoError(t, err)

	assert.Empty(t, resp.Message)
	assert.Equal(t, slotList("09:00", "13:00", "15:00", "19:00"), resp.Slots)
	assert.Equal(t, 1, repo.calls)
}

func TestExecute_SaturdayMorningOnly(t *testing.T) {
	uc := NewUseCase(&stubReservationRepo{}, &stubHolidayCalendar{}, nopLogger{})

	// 2026-02-21 is a Saturday.
	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 21)})
	require.NoError(t, err)

	assert.Empty(t, resp.Message)
	assert.Equal(t, slotList("09:00", "13:00"), resp.Slots)
}

func TestExecute_WeeklyClosures(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		msg  string
	}{
		{"sunday", date(2026, 2, 22), domain.MsgClosedSunday},
		{"wednesday", date(2026, 2, 18), domain.MsgClosedWednesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubReservationRepo{}
			holidays := &stubHolidayCalendar{}
			uc := NewUseCase(repo, holidays, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.day})
			require.NoError(t, err)

			assert.Equal(t, tt.msg, resp.Message)
			assert.Empty(t, resp.Slots)
			assert.Zero(t, repo.calls, "repository must not be queried on closed days")
			assert.Zero(t, holidays.calls, "weekly closure wins before the holiday calendar")
		})
	}
}

func TestExecute_YearEndClosure(t *testing.T) {
	repo := &stubReservationRepo{}
	holidays := &stubHolidayCalendar{}
	uc := NewUseCase(repo, holidays, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2025, 12, 31)})
	require.NoError(t, err)

	assert.Equal(t, domain.MsgClosedYearEnd, resp.Message)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, holidays.calls)
	assert.Zero(t, repo.calls)
}

func TestExecute_PublicHoliday(t *testing.T) {
	repo := &stubReservationRepo{}
	uc := NewUseCase(repo, &stubHolidayCalendar{holiday: true}, nopLogger{})

	// 2026-02-23 is a Monday, closed only because the calendar says so.
	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 23)})
	require.NoError(t, err)

	assert.Equal(t, domain.MsgClosedHoliday, resp.Message)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, repo.calls)
}

func TestExecute_SingleReservationSplitsMorning(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			// 10:00-11:00 in salon time.
			reservation(1, "2026-02-16T01:00:00.000Z", "2026-02-16T02:00:00.000Z"),
		},
	}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	require.NoError(t, err)

	assert.Equal(t, slotList(
		"09:00", "10:00",
		"11:00", "13:00",
		"15:00", "19:00",
	), resp.Slots)
}

func TestExecute_MorningConsumedAfternoonSplit(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			// 09:00-11:00, 11:00-13:00 and 16:00-17:00 in salon time.
			// Timestamp shapes vary on purpose; normalization handles them.
			reservation(1, "2026-02-16T00:00:00Z", "2026-02-16T02:00:00Z"),
			reservation(2, "2026-02-16T02:00:00.5Z", "2026-02-16T04:00:00.000Z"),
			reservation(3, "2026-02-16T16:00:00+09:00", "2026-02-16T17:00:00+09:00"),
		},
	}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	require.NoError(t, err)

	assert.Equal(t, slotList(
		"15:00", "16:00",
		"17:00", "19:00",
	), resp.Slots)
}

func TestExecute_FullyBookedDay(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			reservation(1, "2026-02-16T00:00:00.000Z", "2026-02-16T04:00:00.000Z"),
			reservation(2, "2026-02-16T06:00:00.000Z", "2026-02-16T10:00:00.000Z"),
		},
	}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	require.NoError(t, err)

	assert.Empty(t, resp.Message)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Idempotent(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			reservation(1, "2026-02-16T01:00:00.000Z", "2026-02-16T02:30:00.000Z"),
		},
	}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&stubReservationRepo{}, &stubHolidayCalendar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubReservationRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_HolidayCalendarError(t *testing.T) {
	holidays := &stubHolidayCalendar{err: errors.New("upstream down")}
	uc := NewUseCase(&stubReservationRepo{}, holidays, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CorruptTimestamp(t *testing.T) {
	repo := &stubReservationRepo{
		reservations: []*domain.Reservation{
			reservation(1, "not a timestamp", "2026-02-16T02:00:00.000Z"),
		},
	}
	uc := NewUseCase(repo, &stubHolidayCalendar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date(2026, 2, 16)})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}
