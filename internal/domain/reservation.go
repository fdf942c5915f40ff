package domain

import "time"

// Reservation represents a salon reservation. StartTime and EndTime are
// timestamp strings as stored: ISO-ish text that may lack milliseconds or
// carry a variable-length fraction, so they must go through
// NormalizeDateTime before any arithmetic.
type Reservation struct {
	ID        int64
	UserID    int64
	MenuName  string
	StartTime string
	EndTime   string
	Notes     *string

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted reports whether the reservation has been soft-deleted.
func (r *Reservation) IsDeleted() bool {
	return r.DeletedAt != nil
}
