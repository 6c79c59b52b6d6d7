package lazyval

import (
	"errors"
	"fmt"
)

var (
	// ErrComputeFailed is returned by Get when the compute callback fails.
	ErrComputeFailed = errors.New("compute value failed")

	// ErrInitializationFailed is the panic value kind raised by MustGet and Supplier.
	ErrInitializationFailed = errors.New("initialization failed")

	// ErrNotYetAvailable is raised by MustPeek on a value that was never computed.
	ErrNotYetAvailable = errors.New("value not yet available")

	// ErrDisposeFailed wraps errors and panics of the dispose hook.
	ErrDisposeFailed = errors.New("dispose value failed")

	// ErrInvalidPolicy is returned when a policy name or its durations are not valid.
	ErrInvalidPolicy = errors.New("invalid expiration policy")

	// ErrInvalidConfig is returned when the config cannot be parsed.
	ErrInvalidConfig = errors.New("invalid config")
)

// InitializationError is the panic value of the non-fallible accessors.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrInitializationFailed, e.Err)
}

func (e *InitializationError) Unwrap() []error {
	return []error{ErrInitializationFailed, e.Err}
}
