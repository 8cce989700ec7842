package memory

import (
	"context"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/pkg/errs"
)

type materialRepository struct {
	uow *UnitOfWork
}

func (r *materialRepository) Add(ctx context.Context, m *material.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.materials[m.ID()]; ok {
			return duplicate("material", m.ID())
		}
		if supplierID := m.SupplierID(); supplierID != nil {
			if _, ok := s.suppliers[*supplierID]; !ok {
				return errs.NewObjectNotFoundError("supplier", supplierID.String())
			}
		}
		s.materials[m.ID()] = m.Snapshot()
		return nil
	})
}

func (r *materialRepository) AddSupplier(ctx context.Context, supplier *material.Supplier) error {
	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.suppliers[supplier.ID()]; ok {
			return duplicate("supplier", supplier.ID())
		}
		s.suppliers[supplier.ID()] = supplier
		return nil
	})
}

func (r *materialRepository) Update(ctx context.Context, m *material.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.materials[m.ID()]; !ok {
			return errs.NewObjectNotFoundError("material", m.ID().String())
		}
		s.materials[m.ID()] = m.Snapshot()
		return nil
	})
}

func (r *materialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	var m *material.Material
	err := r.uow.run(ctx, func(s *state) error {
		snapshot, ok := s.materials[id]
		if !ok {
			return errs.NewObjectNotFoundError("material", id.String())
		}

		var err error
		m, err = material.RestoreMaterial(snapshot)
		return err
	})
	return m, err
}

func (r *materialRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	return r.Get(ctx, id)
}

func (r *materialRepository) ListBelowMinimum(ctx context.Context) ([]*material.Material, error) {
	var snapshots []material.Snapshot
	err := r.uow.run(ctx, func(s *state) error {
		for _, snapshot := range s.materials {
			if snapshot.Stock < snapshot.MinQuantity {
				snapshots = append(snapshots, snapshot)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(snapshots, func(a, b material.Snapshot) int {
		return a.ID.Compare(b.ID)
	})

	materials := make([]*material.Material, 0, len(snapshots))
	for _, snapshot := range snapshots {
		m, restoreErr := material.RestoreMaterial(snapshot)
		if restoreErr != nil {
			return nil, restoreErr
		}
		materials = append(materials, m)
	}
	return materials, nil
}

type movementRepository struct {
	uow *UnitOfWork
}

func (r *movementRepository) Add(ctx context.Context, mv *material.Movement) error {
	return r.uow.run(ctx, func(s *state) error {
		if materialID := mv.MaterialID(); materialID != nil {
			if _, ok := s.materials[*materialID]; !ok {
				return errs.NewObjectNotFoundError("material", materialID.String())
			}
		}
		if productID := mv.ProductID(); productID != nil {
			if _, ok := s.products[*productID]; !ok {
				return errs.NewObjectNotFoundError("product", productID.String())
			}
		}
		s.movements = append(s.movements, mv)
		return nil
	})
}

func (r *movementRepository) ListByMaterial(ctx context.Context, materialID kernel.UUID) ([]*material.Movement, error) {
	var movements []*material.Movement
	err := r.uow.run(ctx, func(s *state) error {
		for _, mv := range s.movements {
			if id := mv.MaterialID(); id != nil && id.IsEqual(materialID) {
				movements = append(movements, mv)
			}
		}
		return nil
	})
	return movements, err
}
