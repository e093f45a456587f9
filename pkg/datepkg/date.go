// Package datepkg converts calendar dates to and from the DD.MM.YYYY wire format.
//
// Dates are stored as plain calendar dates; the display format exists only at
// the delivery edge. Parsing is calendar aware, so inputs like "31.02.2024"
// are rejected.
package datepkg

import (
	"errors"
	"time"
)

// Layout is the user facing date format.
const Layout = "02.01.2006"

// ErrInvalidDate indicates that the input is not a valid DD.MM.YYYY date.
var ErrInvalidDate = errors.New("date must be a valid DD.MM.YYYY date")

// Parse converts a DD.MM.YYYY string into a calendar date in UTC.
func Parse(s string) (time.Time, error) {
	d, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return d, nil
}

// Format renders a calendar date in the DD.MM.YYYY format.
func Format(d time.Time) string {
	return d.Format(Layout)
}

// IsValid reports whether s is a valid DD.MM.YYYY date.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
