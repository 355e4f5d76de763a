package identity_test

import (
	"testing"

	"checkout/internal/core/domain/model/identity"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmail(t *testing.T) {
	t.Run("accepts bare address", func(t *testing.T) {
		email, err := identity.ParseEmail(" ana@example.cl ")

		require.NoError(t, err)
		assert.Equal(t, "ana@example.cl", email.String())
	})

	t.Run("lowercases the address", func(t *testing.T) {
		email, err := identity.ParseEmail("Ana@Example.CL")

		require.NoError(t, err)
		assert.Equal(t, "ana@example.cl", email.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := identity.ParseEmail("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed and display-name forms", func(t *testing.T) {
		for _, raw := range []string{"ana", "ana@", "Ana <ana@example.cl>"} {
			_, err := identity.ParseEmail(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}
