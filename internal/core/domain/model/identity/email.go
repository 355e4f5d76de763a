package identity

import (
	"net/mail"
	"strings"

	"checkout/internal/pkg/errs"
)

// Email is a syntactically valid bare e-mail address.
type Email struct {
	value string
}

// ParseEmail accepts a bare RFC 5322 address; display names are rejected.
func ParseEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", ErrMalformedEmail)
	}
	return Email{value: strings.ToLower(addr.Address)}, nil
}

func (e Email) String() string {
	return e.value
}
