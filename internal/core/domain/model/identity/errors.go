package identity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"checkout/internal/pkg/errs"
)

var (
	ErrMalformedNationalID = errors.New("national id format is invalid")
	ErrNonDigitBody        = errors.New("national id body must contain only digits")
	ErrInvalidCheckSymbol  = errors.New("check digit must be a digit or K")
	ErrNonDigitPhone       = errors.New("phone must contain only digits")
	ErrPhonePrefix         = errors.New("local phone numbers must start with 9")
	ErrPhoneCountryCode    = errors.New("phone with country code has the wrong length")
	ErrMalformedEmail      = errors.New("email format is invalid")
)

// ChecksumMismatchError is returned when the supplied check symbol of a national
// id differs from the computed one.
type ChecksumMismatchError struct {
	Expected byte
	Got      byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("invalid check digit %c, expected %c", e.Got, e.Expected)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// InvalidLengthError is returned for phone numbers whose digit count is not accepted.
type InvalidLengthError struct {
	Length   int
	Accepted []int
}

func (e *InvalidLengthError) Error() string {
	accepted := make([]string, 0, len(e.Accepted))
	for _, n := range e.Accepted {
		accepted = append(accepted, strconv.Itoa(n))
	}
	return fmt.Sprintf("invalid phone length %d, accepted lengths are %s", e.Length, strings.Join(accepted, ", "))
}

func (e *InvalidLengthError) Unwrap() error {
	return errs.ErrValueIsInvalid
}
