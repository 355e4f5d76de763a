package order_test

import (
	"testing"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status      order.Status
		name        string
		validateErr bool
		appendErr   bool
	}{
		{order.Unknown, "unknown", true, true},
		{order.Draft, "draft", false, false},
		{order.Completed, "completed", false, true},
		{order.Status(42), "unknown", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.status.String())

			if tt.validateErr {
				require.ErrorIs(t, tt.status.Validate(), errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, tt.status.Validate())
			}

			if tt.appendErr {
				require.ErrorIs(t, tt.status.ValidateAppend(), errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, tt.status.ValidateAppend())
			}
		})
	}
}
