package credential_test

import (
	"testing"

	"checkout/internal/core/domain/model/credential"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		want     error
	}{
		{name: "empty", password: "", want: errs.ErrValueIsRequired},
		{name: "too short", password: "Ab1", want: credential.ErrPasswordTooShort},
		{name: "seven runes", password: "Ñandú1x", want: credential.ErrPasswordTooShort},
		{name: "no uppercase", password: "secret123", want: credential.ErrPasswordNoUppercase},
		{name: "no lowercase", password: "SECRET123", want: credential.ErrPasswordNoLowercase},
		{name: "no digit", password: "SecretPass", want: credential.ErrPasswordNoDigit},
		{name: "first violated rule wins", password: "abcdefgh", want: credential.ErrPasswordNoUppercase},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, credential.ValidatePassword(tc.password), tc.want)
		})
	}

	t.Run("accepts compliant password", func(t *testing.T) {
		require.NoError(t, credential.ValidatePassword("Secret123"))
		require.NoError(t, credential.ValidatePassword("Contraseña2024"))
	})
}
