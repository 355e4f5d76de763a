package order

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// States:
//
//	Draft (appendable)    Completed (final)
//
// Checkout creates orders directly in Completed. Draft orders only come from the
// create-draft path and accept appended line items.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Draft orders accept new line items.
	Draft

	// Completed is final: monetary fields and line items are frozen.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Completed: "completed",
	}
}

// Validate rejects Unknown and out-of-range values read from storage.
func (s Status) Validate() error {
	if s != Draft && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name used in API responses.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAppend checks that line items can still be added.
func (s Status) ValidateAppend() error {
	if s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to append line items", s),
		)
	}
	return nil
}
