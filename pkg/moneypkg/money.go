// Package moneypkg parses and formats user facing money amounts.
package moneypkg

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount indicates that the amount is below zero.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ErrInvalidAmount indicates that the amount is not a number.
var ErrInvalidAmount = errors.New("amount is not a valid number")

// Parse converts a user facing amount into a decimal. Thousands separators
// used for display grouping are stripped before conversion.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	s = strings.ReplaceAll(s, " ", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}

	return d, nil
}

// Format renders a non-negative integer amount with dot thousands separators,
// e.g. 1234567 -> "1.234.567".
func Format(d decimal.Decimal) string {
	s := d.Truncate(0).String()

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder

	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	if neg {
		return "-" + sb.String()
	}

	return sb.String()
}
