package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// Validation rules reported back to API clients.
const (
	RuleRequired = "required"
	RuleString   = "string"
	RuleMax      = "max"
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects every field that failed validation for one input.
// A nil or empty ValidationErrors means the input is valid.
type ValidationErrors []*ValidationError

// Error joins the individual field messages.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for any ValidationErrors.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fields returns the names of the offending fields in report order.
func (v ValidationErrors) Fields() []string {
	out := make([]string, 0, len(v))
	for _, fe := range v {
		out = append(out, fe.Field)
	}
	return out
}

// For returns the error reported for field, or nil.
func (v ValidationErrors) For(field string) *ValidationError {
	for _, fe := range v {
		if fe.Field == field {
			return fe
		}
	}
	return nil
}

// NewTypeError reports a field whose value is not a string.
func NewTypeError(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Rule:    RuleString,
		Message: fmt.Sprintf("%s must be a string", field),
	}
}

// OrNil returns nil when no field failed, so callers can write `return errs.OrNil()`
// without producing a non-nil error interface holding an empty slice.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
