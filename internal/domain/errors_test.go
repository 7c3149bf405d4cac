package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")

	if got := err.Error(); got != "validation: title: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := CheckFields([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "license", Message: "unknown license"},
	})

	if got := err.Error(); got != "validation: title: required; license: unknown license" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) != 2 {
		t.Fatalf("expected *ValidationError with 2 field errors, got %v", err)
	}
}

func TestCheckFields_EmptyIsNil(t *testing.T) {
	t.Parallel()

	if err := CheckFields(nil); err != nil {
		t.Fatalf("CheckFields(nil) = %v, want nil", err)
	}
	if err := CheckFields([]FieldError{}); err != nil {
		t.Fatalf("CheckFields(empty) = %v, want nil", err)
	}
}

func TestConflictError(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("0b5f1c8e-4a57-4f5e-9a43-3f7c0c1a2b3d")
	err := ConflictError(id, "has sub-albums")

	if !errors.Is(err, ErrConflict) {
		t.Fatal("errors.Is(err, ErrConflict) = false")
	}
	want := "album 0b5f1c8e-4a57-4f5e-9a43-3f7c0c1a2b3d: has sub-albums: conflict"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("sorting_order", "must be ASC or DESC")
	if !errors.Is(err, ErrValidation) {
		t.Fatal("Unwrap should return ErrValidation")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrConflict,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
