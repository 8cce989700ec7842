// Package inventory implements the inventory ledger: the single entry point
// that changes material stock. Every stock change is paired with exactly one
// warehouse movement written through the same unit of work.
package inventory

import (
	"context"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
)

// Ledger must be built from repositories of a unit of work that has begun.
// It never commits; the caller's transaction decides whether the stock
// change and its movement become visible together.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	ledger := inventory.NewLedger(uow.MaterialRepository(), uow.MovementRepository(), clock)
//	if _, err := ledger.Reserve(ctx, materialID, 100, productID); err != nil {
//	    return err // material.ErrInsufficientStock leaves stock untouched
//	}
//	return uow.Commit(ctx)
type Ledger struct {
	materials ports.MaterialRepository
	movements ports.MovementRepository
	clock     kernel.Clock
}

func NewLedger(materials ports.MaterialRepository, movements ports.MovementRepository, clock kernel.Clock) Ledger {
	return Ledger{
		materials: materials,
		movements: movements,
		clock:     clock,
	}
}

// Reserve locks the material, deducts quantity and records an outgoing
// movement for productID.
func (l Ledger) Reserve(ctx context.Context, materialID kernel.UUID, quantity int, productID kernel.UUID) (*material.Movement, error) {
	m, err := l.materials.GetForUpdate(ctx, materialID)
	if err != nil {
		return nil, err
	}

	if err = m.Reserve(quantity); err != nil {
		return nil, err
	}

	mv, err := material.NewOutgoingMovement(kernel.NewUUID(), materialID, productID, quantity, l.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = l.persist(ctx, m, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

// ReserveAll reserves every requirement for productID. Materials are locked
// in ascending ID order so two orders sharing materials cannot deadlock.
// The first shortage aborts the whole reservation; the caller rolls back.
func (l Ledger) ReserveAll(ctx context.Context, requirements []product.Component, productID kernel.UUID) ([]*material.Movement, error) {
	sorted := slices.Clone(requirements)
	slices.SortFunc(sorted, func(a, b product.Component) int {
		return a.MaterialID.Compare(b.MaterialID)
	})

	movements := make([]*material.Movement, 0, len(sorted))
	for _, req := range sorted {
		mv, err := l.Reserve(ctx, req.MaterialID, req.QuantityPerUnit, productID)
		if err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, nil
}

// Restock locks the material, adds quantity and records an incoming movement.
func (l Ledger) Restock(ctx context.Context, materialID kernel.UUID, quantity int) (*material.Movement, error) {
	m, err := l.materials.GetForUpdate(ctx, materialID)
	if err != nil {
		return nil, err
	}

	if err = m.Restock(quantity); err != nil {
		return nil, err
	}

	mv, err := material.NewIncomingMovement(kernel.NewUUID(), materialID, quantity, l.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = l.persist(ctx, m, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

func (l Ledger) persist(ctx context.Context, m *material.Material, mv *material.Movement) error {
	if err := l.materials.Update(ctx, m); err != nil {
		return err
	}
	return l.movements.Add(ctx, mv)
}
