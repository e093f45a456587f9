package carddelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/okutan/card-vault/pkg/datepkg"
)

const maxCardNumberLen = 16

// ValidCardNumber validates that the field is a digit string of at most 16 characters.
var ValidCardNumber validator.Func = func(fl validator.FieldLevel) bool {
	n, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	if len(n) == 0 || len(n) > maxCardNumberLen {
		return false
	}

	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// ValidCardDate validates that the field is a calendar valid DD.MM.YYYY date.
var ValidCardDate validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return datepkg.IsValid(s)
	}
	return false
}
