package identity_test

import (
	"testing"

	"checkout/internal/core/domain/model/identity"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhone_CollapsesEquivalentForms(t *testing.T) {
	equivalents := []string{
		"87654321",
		"987654321",
		"56987654321",
		"+56987654321",
		"+56 9 8765 4321",
		"(+56) 9-8765-4321",
	}

	for _, raw := range equivalents {
		t.Run(raw, func(t *testing.T) {
			phone, err := identity.ParsePhone(raw)

			require.NoError(t, err)
			assert.Equal(t, "+56987654321", phone.String())
		})
	}
}

func TestParsePhone_TenDigitInternational(t *testing.T) {
	phone, err := identity.ParsePhone("56 2 234 5678")

	require.NoError(t, err)
	assert.Equal(t, "+5622345678", phone.String())
}

func TestParsePhone_IsIdempotent(t *testing.T) {
	for _, raw := range []string{"87654321", "912345678", "5621234567", "+56912345678"} {
		first, err := identity.ParsePhone(raw)
		require.NoError(t, err)

		second, err := identity.ParsePhone(first.String())

		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	}
}

func TestParsePhone_Rejections(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := identity.ParsePhone("  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("letters", func(t *testing.T) {
		_, err := identity.ParsePhone("9876abcd")
		require.ErrorIs(t, err, identity.ErrNonDigitPhone)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nine digits not starting with 9", func(t *testing.T) {
		_, err := identity.ParsePhone("812345678")
		require.ErrorIs(t, err, identity.ErrPhonePrefix)
	})

	for _, raw := range []string{"5691234567", "569123456789", "56912345"} {
		t.Run("569 prefix with wrong length "+raw, func(t *testing.T) {
			_, err := identity.ParsePhone(raw)

			require.ErrorIs(t, err, identity.ErrPhoneCountryCode)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	for _, raw := range []string{"56123456", "561234567", "56123456789"} {
		t.Run("56 prefix with wrong length "+raw, func(t *testing.T) {
			_, err := identity.ParsePhone(raw)

			require.ErrorIs(t, err, identity.ErrPhoneCountryCode)
		})
	}

	for _, raw := range []string{"1234567", "123456789012", "57912345678", "1234567890"} {
		t.Run("invalid length "+raw, func(t *testing.T) {
			_, err := identity.ParsePhone(raw)

			var lengthErr *identity.InvalidLengthError
			require.ErrorAs(t, err, &lengthErr)
			assert.Equal(t, len(raw), lengthErr.Length)
			assert.Equal(t, []int{8, 9, 10, 11}, lengthErr.Accepted)
			assert.Contains(t, err.Error(), "accepted lengths are 8, 9, 10, 11")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
