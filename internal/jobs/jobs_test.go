package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, partner.Notification) error { return nil }

var jobClock = kernel.ClockFunc(func() time.Time {
	return time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)
})

func newFactory() *memory.UnitOfWorkFactory {
	return memory.NewUnitOfWorkFactory(memory.NewStore())
}

func newSweepHandler(f ports.UnitOfWorkFactory) commands.SweepExpiredOrdersCommandHandler {
	return commands.NewSweepExpiredOrdersCommandHandler(
		funcUoWFactory(func() commands.UoW { return f.Create() }),
		discardNotifier{}, jobClock, 72*time.Hour, slog.New(slog.DiscardHandler))
}

func TestOrderTimeoutJob_Run(t *testing.T) {
	ctx := context.Background()
	f := newFactory()

	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))

	email := "orders@acme.test"
	pt, err := partner.NewPartner(kernel.NewUUID(), "Acme", &email)
	require.NoError(t, err)
	require.NoError(t, uow.PartnerRepository().Add(ctx, pt))

	created, err := kernel.ParseDate("2026-10-01")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), pt.ID(), kernel.NewUUID(), kernel.NewUUID(),
		3, decimal.NewFromInt(900), nil, created)
	require.NoError(t, err)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	job := jobs.NewOrderTimeoutJob(newSweepHandler(f), "0 */5 * * * *", slog.New(slog.DiscardHandler))
	job.Run(ctx)

	got, err := f.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, got.Status())
}

func TestLowStockAlertJob_Run(t *testing.T) {
	ctx := context.Background()
	f := newFactory()

	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	low, err := material.NewMaterial(kernel.NewUUID(), "Glue", 2, 3, 10, nil)
	require.NoError(t, err)
	ok, err := material.NewMaterial(kernel.NewUUID(), "Oak board", 1, 50, 10, nil)
	require.NoError(t, err)
	require.NoError(t, uow.MaterialRepository().Add(ctx, low))
	require.NoError(t, uow.MaterialRepository().Add(ctx, ok))
	require.NoError(t, uow.Commit(ctx))

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	job := jobs.NewLowStockAlertJob(queries.NewListLowStockMaterialsQueryHandler(f), "0 0 * * * *", logger)

	assert.Equal(t, 1, job.Run(ctx))
	assert.Contains(t, buf.String(), `"name":"Glue"`)
	assert.Contains(t, buf.String(), `"component":"low_stock_alert_job"`)
	assert.NotContains(t, buf.String(), "Oak board")
}

func TestJobManager_StartAndStop(t *testing.T) {
	f := newFactory()
	jm := jobs.NewJobManager(
		newSweepHandler(f),
		queries.NewListLowStockMaterialsQueryHandler(f),
		jobs.Schedules{Sweep: "0 */5 * * * *", LowStock: "0 0 * * * *"},
		slog.New(slog.DiscardHandler),
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	f := newFactory()
	jm := jobs.NewJobManager(
		newSweepHandler(f),
		queries.NewListLowStockMaterialsQueryHandler(f),
		jobs.Schedules{Sweep: "0 */5 * * * *", LowStock: "every hour"},
		slog.New(slog.DiscardHandler),
	)

	err := jm.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low stock alert job")
}
