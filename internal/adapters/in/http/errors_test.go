package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	fields := func(pairs ...any) error {
		var fe errs.FieldErrors
		for i := 0; i < len(pairs); i += 2 {
			fe.Add(pairs[i].(string), pairs[i+1].(error))
		}
		return fe.ErrOrNil()
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"field format error", fields("rut", errs.NewValueIsInvalidError("rut")), http.StatusBadRequest},
		{"field required", fields("comuna", errs.NewValueIsRequiredError("comuna")), http.StatusBadRequest},
		{"field not found", fields("producto_9", errs.NewObjectNotFoundError("producto_id", 9)), http.StatusUnprocessableEntity},
		{"field stock", fields("producto_1", errs.NewStockConflictError(1, 0, 1)), http.StatusUnprocessableEntity},
		{"field not unique", fields("rut", errs.NewValueIsNotUniqueError("rut", "1-9")), http.StatusConflict},
		{"bare not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", errs.NewObjectNotFoundError("buyer", "x")), http.StatusNotFound},
		{"bare not unique", errs.NewValueIsNotUniqueError("email", "a@b.c"), http.StatusConflict},
		{"bare invalid", errs.NewValueIsInvalidError("id"), http.StatusBadRequest},
		{"snapshot unavailable", fmt.Errorf("%w: x", ports.ErrSnapshotUnavailable), http.StatusInternalServerError},
		{"total mismatch", order.ErrTotalMismatch, http.StatusInternalServerError},
		{"restored total mismatch", errs.NewValueIsInvalidErrorWithCause("total", order.ErrTotalMismatch), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestErrorBody_HidesInternalDetails(t *testing.T) {
	body := errorBody(http.StatusInternalServerError, errors.New("dial tcp 10.0.0.1:5432"))

	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
	assert.Empty(t, body.Errors)
}
