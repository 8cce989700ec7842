package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Its string value is the form
// exchanged with clients and stored in the database.
//
// State transitions:
//
//	Created ──> Prepaid ──> InProduction ──> Delivered ──> Completed
//	   │           │
//	   └─────┬─────┘
//	         v
//	     Cancelled
//
// Forward moves are strictly linear. Completed and Cancelled are terminal.
type Status string

const (
	// Unknown is the zero value and never a valid persisted status.
	Unknown Status = ""

	// Created is the initial status. The order waits for prepayment and is
	// the only status the timeout sweep acts on.
	Created Status = "created"

	// Prepaid means the partner paid in advance; prepayment date is set.
	Prepaid Status = "prepaid"

	// InProduction means materials were reserved and production started.
	InProduction Status = "in_production"

	// Delivered means the goods left the warehouse.
	Delivered Status = "delivered"

	// Completed is terminal; completion date is set.
	Completed Status = "completed"

	// Cancelled is terminal, reached manually or by the timeout sweep.
	Cancelled Status = "cancelled"
)

// forwardTransitions maps every non-terminal status to its only successor.
func forwardTransitions() map[Status]Status {
	return map[Status]Status{
		Created:      Prepaid,
		Prepaid:      InProduction,
		InProduction: Delivered,
		Delivered:    Completed,
	}
}

// ParseStatus converts the wire representation into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate accepts the six lifecycle statuses and rejects anything else.
func (s Status) Validate() error {
	switch s {
	case Created, Prepaid, InProduction, Delivered, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	if s == Unknown {
		return "unknown"
	}
	return string(s)
}

// IsTerminal reports whether no transition or cancellation is accepted from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Next returns the successor of s on the forward path.
//
// Returns a TransitionError (ErrInvalidTransition) for terminal or invalid statuses.
func (s Status) Next() (Status, error) {
	next, ok := forwardTransitions()[s]
	if !ok {
		return Unknown, NewTransitionError(s, Unknown)
	}
	return next, nil
}

// TransitionTo validates a forward move from s to target without skipping.
func (s Status) TransitionTo(target Status) (Status, error) {
	if next, ok := forwardTransitions()[s]; !ok || next != target {
		return Unknown, NewTransitionError(s, target)
	}
	return target, nil
}

// CanCancel reports whether a manual cancellation is allowed from s.
func (s Status) CanCancel() bool {
	return s == Created || s == Prepaid
}

// Cancel validates a manual cancellation, which is only allowed before
// production starts.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return Unknown, NewCancellationError(s)
	}
	return Cancelled, nil
}
