package memory_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, created kernel.Date) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		5, decimal.NewFromInt(10), nil, created)
	require.NoError(t, err)
	return o
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	today := kernel.DateOf(time.Now())

	committed := newOrder(t, today)
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, committed))
	require.NoError(t, uow.Commit(ctx))

	discarded := newOrder(t, today)
	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, discarded))
	require.NoError(t, uow.Rollback(ctx))

	reader := factory.Create().OrderRepository()
	_, err := reader.Get(ctx, committed.ID())
	require.NoError(t, err)
	_, err = reader.Get(ctx, discarded.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_RollbackWithoutTransaction(t *testing.T) {
	uow := memory.NewUnitOfWorkFactory(memory.NewStore()).Create()

	require.ErrorIs(t, uow.Rollback(t.Context()), memory.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Commit(t.Context()), memory.ErrInvalidTransaction)
}

func TestUnitOfWork_ChangesInvisibleUntilCommit(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	o := newOrder(t, kernel.DateOf(time.Now()))

	writer := factory.Create()
	require.NoError(t, writer.Begin(ctx))
	require.NoError(t, writer.OrderRepository().Add(ctx, o))

	// An outside read waits for the writer to finish.
	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err := factory.Create().OrderRepository().Get(waitCtx, o.ID())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, writer.Commit(ctx))
	_, err = factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
}

func TestUnitOfWork_BeginHonoursContext(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	holder := factory.Create()
	require.NoError(t, holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, factory.Create().Begin(waitCtx), context.DeadlineExceeded)
}

func TestOrderRepository_Lists(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())
	today := kernel.DateOf(time.Now())
	repo := factory.Create().OrderRepository()

	first, second := newOrder(t, today), newOrder(t, today)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))
	_, err := second.Advance(today)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, second))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].ID().IsEqual(second.ID()), "newest first")

	awaiting, err := repo.ListAwaitingPrepayment(ctx)
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.True(t, awaiting[0].ID().IsEqual(first.ID()))

	require.ErrorIs(t, repo.Add(ctx, first), errs.ErrValueIsInvalid)
}

func TestMaterialRepository_SupplierReference(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewUnitOfWorkFactory(memory.NewStore()).Create().MaterialRepository()
	supplierID := kernel.NewUUID()

	m, err := material.NewMaterial(kernel.NewUUID(), "Oak", 1, 0, 10, &supplierID)
	require.NoError(t, err)
	require.ErrorIs(t, repo.Add(ctx, m), errs.ErrObjectNotFound)

	supplier, err := material.NewSupplier(supplierID, "Timber Co")
	require.NoError(t, err)
	require.NoError(t, repo.AddSupplier(ctx, supplier))
	require.NoError(t, repo.Add(ctx, m))

	low, err := repo.ListBelowMinimum(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.True(t, low[0].ID().IsEqual(m.ID()))
}
