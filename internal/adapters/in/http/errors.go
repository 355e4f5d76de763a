package http

import (
	"errors"
	"net/http"

	"checkout/internal/core/domain/model/order"
	"checkout/internal/generated/servers"
	"checkout/internal/pkg/errs"
)

// statusFor maps a use case error to an HTTP status. Field errors become 400
// when any of them is a format problem and 422 otherwise. A stored order whose
// total no longer matches its lines is a server fault.
func statusFor(err error) int {
	if errors.Is(err, order.ErrTotalMismatch) {
		return http.StatusInternalServerError
	}

	var fieldErrs *errs.FieldErrors
	if errors.As(err, &fieldErrs) {
		switch {
		case fieldErrs.HasAny(errs.ErrValueIsNotUnique):
			return http.StatusConflict
		case fieldErrs.HasAny(errs.ErrValueIsInvalid),
			fieldErrs.HasAny(errs.ErrValueIsRequired),
			fieldErrs.HasAny(errs.ErrValueIsOutOfRange):
			return http.StatusBadRequest
		default:
			return http.StatusUnprocessableEntity
		}
	}

	switch {
	case errors.Is(err, errs.ErrValueIsNotUnique):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStockConflict):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(status int, err error) servers.Error {
	body := servers.Error{Code: status, Message: http.StatusText(status)}
	if status == http.StatusInternalServerError {
		return body
	}

	var fieldErrs *errs.FieldErrors
	if errors.As(err, &fieldErrs) {
		body.Message = "validation failed"
		body.Errors = fieldErrs.Messages()
		return body
	}
	body.Message = err.Error()
	return body
}
