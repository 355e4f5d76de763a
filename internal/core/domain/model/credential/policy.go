// Package credential holds the password complexity policy applied when a buyer
// registers. Hashing and storage of the password are done elsewhere.
package credential

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"checkout/internal/pkg/errs"
)

const MinPasswordLength = 8

var (
	ErrPasswordTooShort    = errors.New("password must have at least 8 characters")
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one digit")
)

// ValidatePassword returns the first violated rule, checked in the order:
// required, length, uppercase, lowercase, digit.
func ValidatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password", ErrPasswordTooShort)
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	switch {
	case !upper:
		return errs.NewValueIsInvalidErrorWithCause("password", ErrPasswordNoUppercase)
	case !lower:
		return errs.NewValueIsInvalidErrorWithCause("password", ErrPasswordNoLowercase)
	case !digit:
		return errs.NewValueIsInvalidErrorWithCause("password", ErrPasswordNoDigit)
	}
	return nil
}
