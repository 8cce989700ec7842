// Package ports defines the contracts between the order workflow core and
// its infrastructure: repositories, the unit of work and the partner
// notification channel.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Read-then-write callers use GetForUpdate inside a unit of work so that a
// manual transition and the timeout sweep never both apply to one order.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and dates of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get reads an order without locking it.
	// Returns errs.ObjectNotFoundError when no order has the ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate reads an order and holds its row lock until the unit of
	// work ends. Must be called within Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every order, newest first.
	List(ctx context.Context) ([]*order.Order, error)

	// ListAwaitingPrepayment returns the orders still in created status
	// without a prepayment date. The result is a candidate list only;
	// callers re-check each order under lock.
	ListAwaitingPrepayment(ctx context.Context) ([]*order.Order, error)
}
