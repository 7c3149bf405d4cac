package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Store adapters wrap driver errors into these; the
// album service returns them as is.
var (
	// ErrNotFound: no album, tag album or parent with that ID.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: an album ID is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation: wrapped by *ValidationError and by CHECK violations.
	ErrValidation = errors.New("validation error")
	// ErrConflict: the album's current state forbids the operation.
	ErrConflict = errors.New("conflict")
)

// FieldError names an album field and what is wrong with it.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects field errors of one input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// CheckFields returns a *ValidationError for errs, or nil when errs is empty.
func CheckFields(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

// ConflictError reports an operation the album's state forbids.
func ConflictError(id fmt.Stringer, reason string) error {
	return fmt.Errorf("album %s: %s: %w", id, reason, ErrConflict)
}
