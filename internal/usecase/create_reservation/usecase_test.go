package create_reservation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kik4/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/kik4/salon-booking-service/internal/usecase/get_available_slots"
)

type stubRepo struct {
	created *domain.Reservation
	err     error
}

func (s *stubRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *res
	out.ID = 42
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	s.created = &out
	return &out, nil
}

type stubSlotsProvider struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubSlotsProvider) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	resp := *s.resp
	resp.Date = req.Date
	return &resp, nil
}

// stubTxManager runs the function directly; serialization guarantees are
// the real manager's concern.
type stubTxManager struct {
	calls int
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openDay() *getAvailableSlots.Response {
	return &getAvailableSlots.Response{
		Slots: []domain.AvailableTimeSlot{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "15:00", EndTime: "19:00"},
		},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		Date:      time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		MenuName:  "cut",
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	repo := &stubRepo{}
	tx := &stubTxManager{}
	uc := NewUseCase(repo, &stubSlotsProvider{resp: openDay()}, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.Reservation.ID)
	assert.Equal(t, int64(7), resp.Reservation.UserID)
	assert.Equal(t, 1, tx.calls)

	// 10:00 on 2026-02-16 in the salon's timezone.
	require.NotNil(t, repo.created)
	assert.Equal(t, "2026-02-16T10:00:00.000+09:00", repo.created.StartTime)
	assert.Equal(t, "2026-02-16T11:00:00.000+09:00", repo.created.EndTime)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	slots := &getAvailableSlots.Response{
		Slots: []domain.AvailableTimeSlot{
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}
	uc := NewUseCase(&stubRepo{}, &stubSlotsProvider{resp: slots}, &stubTxManager{}, nopLogger{})

	req := validRequest()
	req.StartTime = "09:30"
	req.EndTime = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SalonClosed(t *testing.T) {
	closed := &getAvailableSlots.Response{
		Slots:   []domain.AvailableTimeSlot{},
		Message: domain.MsgClosedSunday,
	}
	repo := &stubRepo{}
	uc := NewUseCase(repo, &stubSlotsProvider{resp: closed}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
	assert.Nil(t, repo.created)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero user id", func(r *Request) { r.UserID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidDate},
		{"malformed start", func(r *Request) { r.StartTime = "ten" }, ErrInvalidTimeRange},
		{"malformed end", func(r *Request) { r.EndTime = "25:00" }, ErrInvalidTimeRange},
		{"start equals end", func(r *Request) { r.EndTime = r.StartTime }, ErrInvalidTimeRange},
		{"start after end", func(r *Request) { r.StartTime = "12:00"; r.EndTime = "11:00" }, ErrInvalidTimeRange},
		{"empty menu", func(r *Request) { r.MenuName = "" }, ErrInvalidInput},
		{"menu too long", func(r *Request) { r.MenuName = strings.Repeat("x", domain.MaxMenuNameLength+1) }, ErrInvalidInput},
		{
			"notes too long",
			func(r *Request) {
				long := strings.Repeat("x", domain.MaxNotesLength+1)
				r.Notes = &long
			},
			ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &stubTxManager{}
			uc := NewUseCase(&stubRepo{}, &stubSlotsProvider{resp: openDay()}, tx, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, tx.calls, "validation failures must not open a transaction")
		})
	}
}

func TestExecute_SlotsProviderError(t *testing.T) {
	provider := &stubSlotsProvider{err: errors.New("db down")}
	uc := NewUseCase(&stubRepo{}, provider, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("insert failed")}
	uc := NewUseCase(repo, &stubSlotsProvider{resp: openDay()}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
