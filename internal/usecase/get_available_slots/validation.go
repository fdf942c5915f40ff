package get_available_slots

import "fmt"

// validateRequest checks the request date. Format errors are caught at the
// handler boundary when the date string is parsed; here only the zero
// value can slip through.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	return nil
}
