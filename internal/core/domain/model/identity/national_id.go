package identity

import (
	"strconv"
	"strings"

	"checkout/internal/pkg/errs"
)

const (
	minNationalIDBody = 1_000_000
	maxNationalIDBody = 99_999_999
)

var checksumWeights = [...]int{2, 3, 4, 5, 6, 7}

// NationalID is a checksum-validated RUT in canonical "<digits>-<check>" form.
type NationalID struct {
	body  string
	check byte
}

// ParseNationalID strips dots and whitespace, upper-cases, splits body and check
// symbol (after a hyphen, or the trailing character) and verifies the modulo 11
// check digit.
//
// Example:
//
//	id, err := identity.ParseNationalID("12.345.678-5")
//	// id.String() == "12345678-5"
func ParseNationalID(raw string) (NationalID, error) {
	cleaned := strings.ToUpper(strings.Map(func(r rune) rune {
		if r == '.' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, raw))
	if cleaned == "" {
		return NationalID{}, errs.NewValueIsRequiredError("rut")
	}

	var body, check string
	if strings.Contains(cleaned, "-") {
		parts := strings.Split(cleaned, "-")
		if len(parts) != 2 {
			return NationalID{}, errs.NewValueIsInvalidErrorWithCause("rut", ErrMalformedNationalID)
		}
		body, check = parts[0], parts[1]
	} else {
		if len(cleaned) < 2 {
			return NationalID{}, errs.NewValueIsInvalidErrorWithCause("rut", ErrMalformedNationalID)
		}
		body, check = cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1:]
	}

	if body == "" || !isDigits(body) {
		return NationalID{}, errs.NewValueIsInvalidErrorWithCause("rut", ErrNonDigitBody)
	}
	if len(check) != 1 || !strings.Contains("0123456789K", check) {
		return NationalID{}, errs.NewValueIsInvalidErrorWithCause("rut", ErrInvalidCheckSymbol)
	}

	number, err := strconv.Atoi(body)
	if err != nil || number < minNationalIDBody || number > maxNationalIDBody {
		return NationalID{}, errs.NewValueIsOutOfRangeError("rut", body, minNationalIDBody, maxNationalIDBody)
	}

	// Leading zeros do not change the check digit; the canonical body drops them.
	body = strconv.Itoa(number)
	expected := CheckSymbol(body)
	if check[0] != expected {
		return NationalID{}, &ChecksumMismatchError{Expected: expected, Got: check[0]}
	}

	return NationalID{body: body, check: expected}, nil
}

// CheckSymbol computes the modulo 11 check symbol of a digit body: digits are
// weighted right to left with the cycle 2..7, and 11 - (sum mod 11) is mapped
// 11→'0', 10→'K'. body must contain only digits.
func CheckSymbol(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		digit := int(body[len(body)-1-i] - '0')
		sum += digit * checksumWeights[i%len(checksumWeights)]
	}

	switch value := 11 - sum%11; value {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + value)
	}
}

// String returns the canonical form.
func (n NationalID) String() string {
	if n.body == "" {
		return ""
	}
	return n.body + "-" + string(n.check)
}

// IsZero reports whether n was never parsed.
func (n NationalID) IsZero() bool {
	return n.body == ""
}

// IsEqual compares canonical forms.
func (n NationalID) IsEqual(other NationalID) bool {
	return n.body == other.body && n.check == other.check
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
