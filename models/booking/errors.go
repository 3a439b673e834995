package booking

import "errors"

// Domain errors surfaced by the lifecycle engine and checkout assembler.
// Controllers translate these into HTTP responses; none of them crash the
// process.
var (
	// ErrInvalidTransition means the requested event is not legal from the
	// booking's current status. The booking is left unchanged.
	ErrInvalidTransition = errors.New("invalid booking transition")

	// ErrTerminalState means the booking is completed or cancelled and can no
	// longer be mutated.
	ErrTerminalState = errors.New("booking is in a terminal state")

	// ErrConcurrencyConflict means a concurrent transition won the race.
	// Callers should refetch the booking and retry.
	ErrConcurrencyConflict = errors.New("booking was modified concurrently")

	// ErrServiceUnavailable means a cart line item references an inactive or
	// missing service. The whole checkout is rejected.
	ErrServiceUnavailable = errors.New("service is not available for booking")

	// ErrNotFound means the booking does not exist.
	ErrNotFound = errors.New("booking not found")
)
