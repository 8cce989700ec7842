package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
)

// MaterialRepository defines the persistence contract for materials.
// Only the inventory ledger writes stock through it.
type MaterialRepository interface {
	Add(ctx context.Context, m *material.Material) error

	// AddSupplier registers a supplier materials can reference.
	AddSupplier(ctx context.Context, s *material.Supplier) error

	// Update persists the stock of an existing material.
	Update(ctx context.Context, m *material.Material) error

	Get(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// GetForUpdate reads a material and holds its row lock until the unit of
	// work ends. Two reservations against one material serialize on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*material.Material, error)

	// ListBelowMinimum returns materials whose stock is under their minimum quantity.
	ListBelowMinimum(ctx context.Context) ([]*material.Material, error)
}

// MovementRepository is the append-only warehouse movement log.
type MovementRepository interface {
	Add(ctx context.Context, mv *material.Movement) error

	// ListByMaterial returns the movements of a material, oldest first.
	ListByMaterial(ctx context.Context, materialID kernel.UUID) ([]*material.Movement, error)
}
