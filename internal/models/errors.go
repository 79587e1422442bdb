package models

import (
	"errors"
	"fmt"
)

// ErrMissingField indicates a required search field was left empty
var ErrMissingField = errors.New("missing required field")

// MissingFieldsMessage is the user-facing text for a failed validation
const MissingFieldsMessage = "Please fill in all required fields"

// ValidationError represents a validation error for a search query field
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrMissingField) works
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ErrRequired creates the validation error for an empty required field
func ErrRequired(field string) error {
	return &ValidationError{
		Field:   field,
		Message: "field is required",
		Err:     ErrMissingField,
	}
}
