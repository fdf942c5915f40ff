package domain

import "errors"

// ErrInvalidFormat is returned when a timestamp string cannot be
// normalized into the canonical form.
var ErrInvalidFormat = errors.New("domain: invalid timestamp format")
