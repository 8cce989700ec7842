// Package memory provides an in-process implementation of the unit of work
// and repositories. It backs local runs without a database and the
// command-level scenario tests.
//
// A transaction holds the store's single writer slot from Begin until
// Commit or Rollback and works on a private copy of the data, so
// transactions are serializable and a rollback simply drops the copy.
// Repository calls made outside a transaction take the slot for the
// duration of the call.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without an active transaction.
var ErrInvalidTransaction = errors.New("invalid transaction")

// state is the whole data set. Mutable aggregates are held as snapshots;
// immutable ones are shared by pointer.
type state struct {
	orders    map[kernel.UUID]orderRecord
	orderSeq  int64
	materials map[kernel.UUID]material.Snapshot
	suppliers map[kernel.UUID]*material.Supplier
	movements []*material.Movement
	products  map[kernel.UUID]*product.Product
	partners  map[kernel.UUID]*partner.Partner
	sales     []*partner.Sale
	managers  map[kernel.UUID]*manager.Manager
}

type orderRecord struct {
	snapshot order.Snapshot
	seq      int64
}

func newState() *state {
	return &state{
		orders:    make(map[kernel.UUID]orderRecord),
		materials: make(map[kernel.UUID]material.Snapshot),
		suppliers: make(map[kernel.UUID]*material.Supplier),
		products:  make(map[kernel.UUID]*product.Product),
		partners:  make(map[kernel.UUID]*partner.Partner),
		managers:  make(map[kernel.UUID]*manager.Manager),
	}
}

func (s *state) clone() *state {
	return &state{
		orders:    maps.Clone(s.orders),
		orderSeq:  s.orderSeq,
		materials: maps.Clone(s.materials),
		suppliers: maps.Clone(s.suppliers),
		movements: slices.Clone(s.movements),
		products:  maps.Clone(s.products),
		partners:  maps.Clone(s.partners),
		sales:     slices.Clone(s.sales),
		managers:  maps.Clone(s.managers),
	}
}

// Store owns the committed data.
type Store struct {
	slot chan struct{}
	data *state
}

func NewStore() *Store {
	return &Store{
		slot: make(chan struct{}, 1),
		data: newState(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.slot
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin waits for the writer slot. Calling Begin twice is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	if err := u.store.acquire(ctx); err != nil {
		return err
	}
	u.tx = u.store.data.clone()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrInvalidTransaction
	}

	u.store.data = u.tx
	u.tx = nil
	u.store.release()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrInvalidTransaction
	}

	u.tx = nil
	u.store.release()
	return nil
}

// run applies fn to the transaction's copy, or to the committed data under
// the writer slot when no transaction is active.
func (u *UnitOfWork) run(ctx context.Context, fn func(s *state) error) error {
	if u.tx != nil {
		return fn(u.tx)
	}

	if err := u.store.acquire(ctx); err != nil {
		return err
	}
	defer u.store.release()
	return fn(u.store.data)
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) MaterialRepository() ports.MaterialRepository {
	return &materialRepository{uow: u}
}

func (u *UnitOfWork) MovementRepository() ports.MovementRepository {
	return &movementRepository{uow: u}
}

func (u *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: u}
}

func (u *UnitOfWork) PartnerRepository() ports.PartnerRepository {
	return &partnerRepository{uow: u}
}

func (u *UnitOfWork) ManagerRepository() ports.ManagerRepository {
	return &managerRepository{uow: u}
}
