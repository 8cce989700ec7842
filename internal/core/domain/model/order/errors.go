package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel for any state machine move outside
	// the forward table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCancellation is the sentinel for cancelling an order that is
	// past prepayment or already terminal.
	ErrInvalidCancellation = errors.New("invalid cancellation")
)

// TransitionError details a rejected forward move.
type TransitionError struct {
	From Status
	To   Status
}

func NewTransitionError(from, to Status) *TransitionError {
	return &TransitionError{From: from, To: to}
}

func (e *TransitionError) Error() string {
	if e.To == Unknown {
		return fmt.Sprintf("%s: no transition from %s", ErrInvalidTransition, e.From)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CancellationError details a rejected cancellation.
type CancellationError struct {
	From Status
}

func NewCancellationError(from Status) *CancellationError {
	return &CancellationError{From: from}
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("%s: order in %s status cannot be cancelled", ErrInvalidCancellation, e.From)
}

func (e *CancellationError) Unwrap() error {
	return ErrInvalidCancellation
}
