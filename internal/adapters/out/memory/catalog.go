package memory

import (
	"context"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/errs"
)

type productRepository struct {
	uow *UnitOfWork
}

func (r *productRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.products[p.ID()]; ok {
			return duplicate("product", p.ID())
		}
		for _, c := range p.Components() {
			if _, ok := s.materials[c.MaterialID]; !ok {
				return errs.NewObjectNotFoundError("material", c.MaterialID.String())
			}
		}
		s.products[p.ID()] = p
		return nil
	})
}

func (r *productRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	var p *product.Product
	err := r.uow.run(ctx, func(s *state) error {
		var ok bool
		if p, ok = s.products[id]; !ok {
			return errs.NewObjectNotFoundError("product", id.String())
		}
		return nil
	})
	return p, err
}

type partnerRepository struct {
	uow *UnitOfWork
}

func (r *partnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.partners[p.ID()]; ok {
			return duplicate("partner", p.ID())
		}
		s.partners[p.ID()] = p
		return nil
	})
}

func (r *partnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	var p *partner.Partner
	err := r.uow.run(ctx, func(s *state) error {
		var ok bool
		if p, ok = s.partners[id]; !ok {
			return errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil
	})
	return p, err
}

func (r *partnerRepository) AddSale(ctx context.Context, sale *partner.Sale) error {
	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.partners[sale.PartnerID()]; !ok {
			return errs.NewObjectNotFoundError("partner", sale.PartnerID().String())
		}
		if _, ok := s.products[sale.ProductID()]; !ok {
			return errs.NewObjectNotFoundError("product", sale.ProductID().String())
		}
		s.sales = append(s.sales, sale)
		return nil
	})
}

func (r *partnerRepository) CumulativeSaleQuantity(ctx context.Context, partnerID kernel.UUID) (int64, error) {
	var total int64
	err := r.uow.run(ctx, func(s *state) error {
		for _, sale := range s.sales {
			if sale.PartnerID().IsEqual(partnerID) {
				total += int64(sale.Quantity())
			}
		}
		return nil
	})
	return total, err
}

func (r *partnerRepository) ListSales(ctx context.Context, partnerID kernel.UUID) ([]*partner.Sale, error) {
	var sales []*partner.Sale
	err := r.uow.run(ctx, func(s *state) error {
		for _, sale := range s.sales {
			if sale.PartnerID().IsEqual(partnerID) {
				sales = append(sales, sale)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Most recent first; SortStableFunc keeps insertion order within a day.
	slices.Reverse(sales)
	slices.SortStableFunc(sales, func(a, b *partner.Sale) int {
		return b.SaleDate().Time().Compare(a.SaleDate().Time())
	})
	return sales, nil
}

type managerRepository struct {
	uow *UnitOfWork
}

func (r *managerRepository) Add(ctx context.Context, m *manager.Manager) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.managers[m.ID()]; ok {
			return duplicate("manager", m.ID())
		}
		s.managers[m.ID()] = m
		return nil
	})
}

func (r *managerRepository) Get(ctx context.Context, id kernel.UUID) (*manager.Manager, error) {
	var m *manager.Manager
	err := r.uow.run(ctx, func(s *state) error {
		var ok bool
		if m, ok = s.managers[id]; !ok {
			return errs.NewObjectNotFoundError("manager", id.String())
		}
		return nil
	})
	return m, err
}
