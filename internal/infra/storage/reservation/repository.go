package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/kik4/salon-booking-service/internal/domain"
	"github.com/kik4/salon-booking-service/pkg/psqlbuilder"
	"github.com/kik4/salon-booking-service/pkg/txmanager"
)

// reservationColumns is the scan order used by all SELECTs below.
var reservationColumns = []string{
	"id",
	"user_id",
	"menu_name",
	"start_time",
	"end_time",
	"notes",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository persists reservations in the reservations table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation. When the context carries an active
// transaction it joins it, which is how the create path keeps its
// availability check and insert in one serializable unit.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"menu_name",
			"start_time",
			"end_time",
			"notes",
		).
		Values(
			res.UserID,
			res.MenuName,
			res.StartTime,
			res.EndTime,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID fetches a reservation by ID, including soft-deleted rows so the
// caller can distinguish "cancelled" from "never existed".
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListByStartTimeRange returns the non-deleted reservations whose
// start_time falls within [from, to], ordered by start time ascending.
// This is the day query behind availability computation.
func (r *Repository) ListByStartTimeRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.LtOrEq{"start_time": to}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStartTimeRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStartTimeRange - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// ListByUserID returns a user's non-deleted reservations, newest first.
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserID - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// SoftDelete marks a reservation as deleted. Already-deleted and unknown
// IDs both report ErrReservationNotFound.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var startTime, endTime time.Time
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.MenuName,
		&startTime,
		&endTime,
		&res.Notes,
		&res.DeletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Timestamps are handed to the domain as text. RFC3339Nano drops
	// trailing fraction zeros, so the strings vary in precision and go
	// through NormalizeDateTime before any arithmetic.
	res.StartTime = startTime.UTC().Format(time.RFC3339Nano)
	res.EndTime = endTime.UTC().Format(time.RFC3339Nano)
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}
	return reservations, nil
}
