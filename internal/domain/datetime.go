package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the canonical timestamp form produced by
// NormalizeDateTime: YYYY-MM-DDTHH:MM:SS.mmm followed by Z or ±HH:MM.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateFormat is the calendar date form used across the service.
const DateFormat = "2006-01-02"

// Timestamps arrive in several ISO-ish shapes: fractional seconds may be
// absent, shorter or longer than three digits, and the offset may be
// missing entirely (assumed UTC).
var timestampPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2})T(\d{2}:\d{2}:\d{2})(?:\.(\d+))?(Z|[+-]\d{2}:\d{2})?$`)

// NormalizeDateTime canonicalizes a timestamp string into TimestampLayout
// form. Fractional seconds are padded or truncated to milliseconds and a
// missing offset is taken as UTC. Inputs that are not a date-T-time shape
// at all (date only, time only, garbage) fail with ErrInvalidFormat.
func NormalizeDateTime(raw string) (string, error) {
	m := timestampPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}

	frac := m[3]
	switch {
	case frac == "":
		frac = "000"
	case len(frac) < 3:
		frac += strings.Repeat("0", 3-len(frac))
	case len(frac) > 3:
		frac = frac[:3]
	}

	offset := m[4]
	if offset == "" {
		offset = "Z"
	}

	return m[1] + "T" + m[2] + "." + frac + offset, nil
}

// ParseDateTime normalizes raw and parses it into an absolute instant.
func ParseDateTime(raw string) (time.Time, error) {
	normalized, err := NormalizeDateTime(raw)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(TimestampLayout, normalized)
	if err != nil {
		// The pattern admits out-of-range components like month 13.
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	return t, nil
}
