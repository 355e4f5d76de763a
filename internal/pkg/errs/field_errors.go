package errs

import (
	"errors"
	"sort"
	"strings"
)

// FieldErrors accumulates validation failures keyed by request field.
// A field keeps the last error recorded for it. The zero value is ready to use.
//
// Example:
//
//	var fe errs.FieldErrors
//	fe.Add("rut", err)
//	fe.Add("producto_7", errs.NewObjectNotFoundError("producto_id", 7))
//	if err := fe.ErrOrNil(); err != nil {
//	    return err
//	}
type FieldErrors struct {
	fields map[string]error
}

// Add records err for field. Nil errors are ignored.
func (fe *FieldErrors) Add(field string, err error) {
	if err == nil {
		return
	}
	if fe.fields == nil {
		fe.fields = make(map[string]error)
	}
	fe.fields[field] = err
}

// Merge copies every entry of other into fe.
func (fe *FieldErrors) Merge(other *FieldErrors) {
	if other == nil {
		return
	}
	for field, err := range other.fields {
		fe.Add(field, err)
	}
}

// Len returns the number of fields with an error.
func (fe *FieldErrors) Len() int {
	if fe == nil {
		return 0
	}
	return len(fe.fields)
}

// Get returns the error recorded for field, if any.
func (fe *FieldErrors) Get(field string) (error, bool) {
	if fe == nil {
		return nil, false
	}
	err, ok := fe.fields[field]
	return err, ok
}

// Fields returns the field keys in lexical order.
func (fe *FieldErrors) Fields() []string {
	if fe == nil {
		return nil
	}
	keys := make([]string, 0, len(fe.fields))
	for k := range fe.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Messages returns the field→message map reported to clients.
func (fe *FieldErrors) Messages() map[string]string {
	out := make(map[string]string, fe.Len())
	if fe == nil {
		return out
	}
	for field, err := range fe.fields {
		out[field] = err.Error()
	}
	return out
}

// HasAny reports whether any recorded error matches target.
func (fe *FieldErrors) HasAny(target error) bool {
	if fe == nil {
		return false
	}
	for _, err := range fe.fields {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ErrOrNil returns fe as an error when it holds at least one entry.
func (fe *FieldErrors) ErrOrNil() error {
	if fe.Len() == 0 {
		return nil
	}
	return fe
}

func (fe *FieldErrors) Error() string {
	parts := make([]string, 0, fe.Len())
	for _, field := range fe.Fields() {
		parts = append(parts, field+": "+fe.fields[field].Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the recorded errors in field order so errors.Is and errors.As see them.
func (fe *FieldErrors) Unwrap() []error {
	out := make([]error, 0, fe.Len())
	for _, field := range fe.Fields() {
		out = append(out, fe.fields[field])
	}
	return out
}
