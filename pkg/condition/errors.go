package condition

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyBound is returned when a delegate is assigned to a condition
	// that already has one.
	ErrAlreadyBound = errors.New("condition: delegate already bound")
	// ErrNilDelegate is returned when SetDelegate receives nil.
	ErrNilDelegate = errors.New("condition: delegate is nil")
	// ErrUnknownIdentifier is returned when an expression references a value
	// the resolver does not know.
	ErrUnknownIdentifier = errors.New("condition: unknown identifier")
)

// AlreadyBoundError reports a second SetDelegate call on a Delegating
// condition.
type AlreadyBoundError struct {
	Name string
}

func (e *AlreadyBoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %q", ErrAlreadyBound.Error(), e.Name)
	}
	return ErrAlreadyBound.Error()
}

// Unwrap exposes ErrAlreadyBound for errors.Is.
func (e *AlreadyBoundError) Unwrap() error {
	return ErrAlreadyBound
}
