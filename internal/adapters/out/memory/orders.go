package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		if _, ok := s.orders[aggregate.ID()]; ok {
			return duplicate("order", aggregate.ID())
		}
		s.orderSeq++
		s.orders[aggregate.ID()] = orderRecord{snapshot: aggregate.Snapshot(), seq: s.orderSeq}
		return nil
	})
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.run(ctx, func(s *state) error {
		rec, ok := s.orders[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		rec.snapshot = aggregate.Snapshot()
		s.orders[aggregate.ID()] = rec
		return nil
	})
}

func (r *orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var o *order.Order
	err := r.uow.run(ctx, func(s *state) error {
		rec, ok := s.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}

		var err error
		o, err = order.RestoreOrder(rec.snapshot)
		return err
	})
	return o, err
}

// GetForUpdate is Get: holding the writer slot already serializes writers.
func (r *orderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, func(order.Snapshot) bool { return true })
}

func (r *orderRepository) ListAwaitingPrepayment(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, func(s order.Snapshot) bool {
		return s.Status == order.Created && s.PrepaymentDate == nil
	})
}

// list returns matching orders, newest first.
func (r *orderRepository) list(ctx context.Context, match func(order.Snapshot) bool) ([]*order.Order, error) {
	var records []orderRecord
	err := r.uow.run(ctx, func(s *state) error {
		for _, rec := range s.orders {
			if match(rec.snapshot) {
				records = append(records, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(records, func(a, b orderRecord) int {
		return cmp.Compare(b.seq, a.seq)
	})

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, restoreErr := order.RestoreOrder(rec.snapshot)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func duplicate(entity string, id kernel.UUID) error {
	return errs.NewValueIsInvalidErrorWithCause(entity+" ID", fmt.Errorf("%s %s already exists", entity, id))
}
