package services

import (
	"fmt"
	"strings"
)

// TransitionError reports an illegal listing status change.
type TransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("cannot change listing status from %q to %q", e.From, e.To)
}

// ClassificationError reports a category/type/subtype hierarchy
// mismatch or an orphaned classification reference.
type ClassificationError struct {
	Message string
}

func (e *ClassificationError) Error() string { return e.Message }

// FieldError reports a single missing, invalid or forbidden field for
// the listing's type.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// FieldErrors collects every field violation found in one pass.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// LocationError reports a development/barangay mismatch or an
// unresolvable development reference.
type LocationError struct {
	Development string
	Message     string
}

func (e *LocationError) Error() string { return e.Message }
