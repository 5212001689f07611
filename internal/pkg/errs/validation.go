package errs

import (
	"errors"
	"fmt"
	"strings"
)

// FieldViolation is a single broken rule, scoped to the input field that broke it.
// Conflicts names the sibling records that caused the violation, when any.
type FieldViolation struct {
	Field     string   `json:"field"`
	Message   string   `json:"message"`
	Conflicts []string `json:"conflicts,omitempty"`
}

func (v FieldViolation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError aggregates every violated rule for one request so the
// editor UI can surface the full error set per field, not just the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrDomainValidation
}

// Violations collects field violations during a validation pass.
// The zero value is ready to use.
type Violations struct {
	list []FieldViolation
}

func (v *Violations) Add(field, format string, args ...any) {
	v.list = append(v.list, FieldViolation{Field: field, Message: fmt.Sprintf(format, args...)})
}

// AddConflict records a violation caused by specific sibling records.
func (v *Violations) AddConflict(field, message string, conflicts []string) {
	v.list = append(v.list, FieldViolation{Field: field, Message: message, Conflicts: conflicts})
}

func (v *Violations) AddErr(field string, err error) {
	if err == nil {
		return
	}
	v.list = append(v.list, FieldViolation{Field: field, Message: err.Error()})
}

func (v *Violations) Empty() bool {
	return len(v.list) == 0
}

// Err returns the accumulated ValidationError, or nil when nothing was violated.
func (v *Violations) Err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

// AsValidation unwraps err into a *ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
