package health

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCheck indicates a check could not be registered because it
	// has no function to invoke.
	ErrInvalidCheck = errors.New("health: invalid check")

	// ErrCheckPanicked indicates a check panicked during invocation.
	ErrCheckPanicked = errors.New("health: check panicked")
)

// PanicError carries the value recovered from a panicking check.
type PanicError struct {
	Check string
	Value any
}

func (e *PanicError) Error() string {
	if e.Check == "" {
		return fmt.Sprintf("health: check panicked: %v", e.Value)
	}
	return fmt.Sprintf("health: check %q panicked: %v", e.Check, e.Value)
}

// Unwrap allows errors.Is(err, ErrCheckPanicked).
func (e *PanicError) Unwrap() error {
	return ErrCheckPanicked
}
