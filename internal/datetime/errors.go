package datetime

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by the Normalizer.
var (
	ErrParse            = errors.New("unrecognized date/time format")
	ErrInvalidInputType = errors.New("invalid temporal input type")

	errOutOfRange = errors.New("year outside 0000-9999")
)

// ParseError reports a string that matched none of the recognized formats,
// including the best-effort fallback.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("datetime: parse %q: %v", e.Input, ErrParse)
	}
	return fmt.Sprintf("datetime: parse %q: %v: %v", e.Input, ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// InvalidInputTypeError reports a value whose Go type is outside the
// accepted temporal inputs.
type InvalidInputTypeError struct {
	Type string
}

func (e *InvalidInputTypeError) Error() string {
	return fmt.Sprintf("datetime: %v: %s", ErrInvalidInputType, e.Type)
}

func (e *InvalidInputTypeError) Unwrap() error { return ErrInvalidInputType }
