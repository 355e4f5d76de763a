package identity

import (
	"fmt"
	"strings"

	"checkout/internal/pkg/errs"
)

var acceptedPhoneLengths = []int{8, 9, 10, 11}

// Phone is a Chilean phone number in canonical "+56…" form.
type Phone struct {
	value string
}

// ParsePhone strips whitespace, dashes, parentheses, dots and a leading '+'.
// The country code is checked before the length:
//
//	starts with 569 → must have 11 digits, "+" + digits
//	starts with 56  → must have 10 digits, "+" + digits
//	 9 digits starting with 9 → "+56" + digits
//	 8 digits                 → "+569" + digits
//
// Any other length fails with *InvalidLengthError.
func ParsePhone(raw string) (Phone, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '(', ')', '.':
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimPrefix(cleaned, "+")

	if cleaned == "" {
		return Phone{}, errs.NewValueIsRequiredError("telefono")
	}
	if !isDigits(cleaned) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("telefono", ErrNonDigitPhone)
	}

	switch {
	case strings.HasPrefix(cleaned, "569"):
		if len(cleaned) != 11 {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("telefono",
				fmt.Errorf("%w: 569 numbers have 11 digits, got %d", ErrPhoneCountryCode, len(cleaned)))
		}
		return Phone{value: "+" + cleaned}, nil
	case strings.HasPrefix(cleaned, "56"):
		if len(cleaned) != 10 {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("telefono",
				fmt.Errorf("%w: 56 numbers have 10 digits, got %d", ErrPhoneCountryCode, len(cleaned)))
		}
		return Phone{value: "+" + cleaned}, nil
	case len(cleaned) == 9:
		if cleaned[0] != '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("telefono", ErrPhonePrefix)
		}
		return Phone{value: "+56" + cleaned}, nil
	case len(cleaned) == 8:
		return Phone{value: "+569" + cleaned}, nil
	default:
		return Phone{}, &InvalidLengthError{Length: len(cleaned), Accepted: acceptedPhoneLengths}
	}
}

// String returns the canonical form.
func (p Phone) String() string {
	return p.value
}

// IsZero reports whether p was never parsed.
func (p Phone) IsZero() bool {
	return p.value == ""
}
