// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LedgerRepoFactory provides the repositories the inventory ledger writes through.
	LedgerRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
		MovementRepository() ports.MovementRepository
	}

	CatalogRepoFactory interface {
		ProductRepository() ports.ProductRepository
		PartnerRepository() ports.PartnerRepository
		ManagerRepository() ports.ManagerRepository
	}

	// MaterialUoW manages transactions that only touch materials and movements.
	MaterialUoW interface {
		TxManager
		LedgerRepoFactory
	}

	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	// CatalogUoW manages transactions over reference data: partners,
	// managers, products and sales.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UoW manages transactions across orders, the ledger and reference data.
	// Used by the order lifecycle commands.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		LedgerRepoFactory
		CatalogRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
