package rain

import (
	"errors"
	"fmt"
)

// Error kinds. None of them is recoverable in place.
var (
	// ErrAllocation indicates collection storage could not be set up or grown.
	ErrAllocation = errors.New("rain: drop storage allocation failed")

	// ErrOutOfBounds indicates an index outside [0, length).
	ErrOutOfBounds = errors.New("rain: bad access")

	// ErrCapability indicates the terminal lacks a required feature.
	ErrCapability = errors.New("rain: terminal emulator lacks capabilities")
)

// Error wraps an error kind with the operation and the offending value.
type Error struct {
	Op      string
	Value   int
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s %d)", e.Wrapped.Error(), e.Op, e.Value)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
