package dto

import (
	"fmt"
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/apperrors"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD boundary value into a UTC time. Malformed
// input surfaces as apperrors.ErrParse so handlers can map it to a 400.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrParse, value)
	}
	return t, nil
}

// ParseOptionalDate parses an optional YYYY-MM-DD value; empty means unset.
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a time back into the boundary date form.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
