package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every input parse, validation and limit failure.
var ErrInvalidInput = errors.New("invalid input")

// Input field names used in errors and prompts.
const (
	FieldPrincipal           = "principal"
	FieldAnnualRate          = "annual rate"
	FieldCompoundsPerYear    = "compounds per year"
	FieldYears               = "years"
	FieldMonthlyContribution = "monthly contribution"
)

// InputError describes a rejected input value.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func NewInputError(field string, value any, reason string) *InputError {
	return &InputError{Field: field, Value: value, Reason: reason}
}

func (e *InputError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
