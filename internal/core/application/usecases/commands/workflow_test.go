package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []partner.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, notification partner.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) Sent() []partner.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]partner.Notification(nil), n.sent...)
}

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW {
	return f()
}

type funcMaterialUoWFactory func() commands.MaterialUoW

func (f funcMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

// WorkflowSuite drives the command handlers against the in-memory store.
type WorkflowSuite struct {
	suite.Suite

	ctx      context.Context
	clock    *testClock
	notifier *recordingNotifier
	store    ports.UnitOfWorkFactory
	factory  commands.UoWFactory

	partnerID   kernel.UUID
	managerID   kernel.UUID
	productID   kernel.UUID
	materialID  kernel.UUID
	createdDate kernel.Date

	create  commands.CreateOrderCommandHandler
	advance commands.AdvanceOrderStatusCommandHandler
	cancel  commands.CancelOrderCommandHandler
	sweep   commands.SweepExpiredOrdersCommandHandler
	restock commands.RestockMaterialCommandHandler
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowSuite))
}

func (s *WorkflowSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &testClock{now: time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)}
	s.createdDate = kernel.Today(s.clock)
	s.notifier = &recordingNotifier{}

	mf := memory.NewUnitOfWorkFactory(memory.NewStore())
	s.store = mf
	s.factory = funcUoWFactory(func() commands.UoW { return mf.Create() })
	materialFactory := funcMaterialUoWFactory(func() commands.MaterialUoW { return mf.Create() })

	logger := slog.New(slog.DiscardHandler)
	s.materialID = kernel.NewUUID()
	s.create = commands.NewCreateOrderCommandHandler(s.factory, s.clock)
	s.advance = commands.NewAdvanceOrderStatusCommandHandler(s.factory, s.notifier, s.clock, s.materialID, logger)
	s.cancel = commands.NewCancelOrderCommandHandler(s.factory, s.notifier, s.clock, logger)
	s.sweep = commands.NewSweepExpiredOrdersCommandHandler(s.factory, s.notifier, s.clock, 72*time.Hour, logger)
	s.restock = commands.NewRestockMaterialCommandHandler(materialFactory, s.clock)

	s.seed(50)
	s.seedPartner("orders@acme.test")
}

func (s *WorkflowSuite) seedPartner(email string) {
	uow := s.store.Create()
	s.Require().NoError(uow.Begin(s.ctx))

	pt, err := partner.NewPartner(kernel.NewUUID(), "Acme", &email)
	s.Require().NoError(err)
	s.Require().NoError(uow.PartnerRepository().Add(s.ctx, pt))
	s.partnerID = pt.ID()

	s.Require().NoError(uow.Commit(s.ctx))
}

func (s *WorkflowSuite) seed(stock int) {
	uow := s.store.Create()
	s.Require().NoError(uow.Begin(s.ctx))

	mgr, err := manager.NewManager(kernel.NewUUID(), "Olga Ivanova")
	s.Require().NoError(err)
	s.Require().NoError(uow.ManagerRepository().Add(s.ctx, mgr))
	s.managerID = mgr.ID()

	mat, err := material.NewMaterial(s.materialID, "Oak plank", 1, stock, 10, nil)
	s.Require().NoError(err)
	s.Require().NoError(uow.MaterialRepository().Add(s.ctx, mat))

	p, err := product.NewProduct(kernel.NewUUID(), "Chair", 1, decimal.NewFromInt(2), decimal.NewFromInt(5), nil)
	s.Require().NoError(err)
	s.Require().NoError(uow.ProductRepository().Add(s.ctx, p))
	s.productID = p.ID()

	s.Require().NoError(uow.Commit(s.ctx))
}

func (s *WorkflowSuite) createOrder(quantity int) kernel.UUID {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), s.partnerID, s.managerID, s.productID,
		quantity, decimal.NewFromInt(500), nil)
	s.Require().NoError(err)
	s.Require().NoError(s.create.Handle(s.ctx, cmd))
	return cmd.OrderID()
}

func (s *WorkflowSuite) advanceOrder(id kernel.UUID) (order.Status, error) {
	cmd, err := commands.NewAdvanceOrderStatusCommand(id)
	s.Require().NoError(err)
	return s.advance.Handle(s.ctx, cmd)
}

func (s *WorkflowSuite) cancelOrder(id kernel.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	s.Require().NoError(err)
	return s.cancel.Handle(s.ctx, cmd)
}

func (s *WorkflowSuite) runSweep() commands.SweepResult {
	result, err := s.sweep.Handle(s.ctx, commands.NewSweepExpiredOrdersCommand())
	s.Require().NoError(err)
	return result
}

func (s *WorkflowSuite) loadOrder(id kernel.UUID) *order.Order {
	o, err := s.store.Create().OrderRepository().Get(s.ctx, id)
	s.Require().NoError(err)
	s.assertDateInvariants(o)
	return o
}

func (s *WorkflowSuite) stock() int {
	m, err := s.store.Create().MaterialRepository().Get(s.ctx, s.materialID)
	s.Require().NoError(err)
	return m.Stock()
}

func (s *WorkflowSuite) movements() []*material.Movement {
	mvs, err := s.store.Create().MovementRepository().ListByMaterial(s.ctx, s.materialID)
	s.Require().NoError(err)
	return mvs
}

func (s *WorkflowSuite) outgoingCount() int {
	n := 0
	for _, mv := range s.movements() {
		if mv.Kind() == material.Outgoing {
			n++
		}
	}
	return n
}

func (s *WorkflowSuite) assertDateInvariants(o *order.Order) {
	switch o.Status() {
	case order.Created:
		s.Nil(o.PrepaymentDate(), "created order has no prepayment date")
	case order.Cancelled:
	default:
		s.NotNil(o.PrepaymentDate(), "%s order has a prepayment date", o.Status())
	}
	s.Equal(o.Status() == order.Completed, o.CompletionDate() != nil)
}

func (s *WorkflowSuite) TestEndToEnd() {
	id := s.createOrder(100)
	s.Equal(order.Created, s.loadOrder(id).Status())

	status, err := s.advanceOrder(id)
	s.Require().NoError(err)
	s.Equal(order.Prepaid, status)
	s.True(s.loadOrder(id).PrepaymentDate().IsEqual(s.createdDate))

	_, err = s.advanceOrder(id)
	s.Require().ErrorIs(err, material.ErrInsufficientStock)
	s.Equal(order.Prepaid, s.loadOrder(id).Status())
	s.Equal(50, s.stock())
	s.Empty(s.movements())

	restockCmd, err := commands.NewRestockMaterialCommand(s.materialID, 100)
	s.Require().NoError(err)
	newStock, err := s.restock.Handle(s.ctx, restockCmd)
	s.Require().NoError(err)
	s.Equal(150, newStock)

	status, err = s.advanceOrder(id)
	s.Require().NoError(err)
	s.Equal(order.InProduction, status)
	s.Equal(50, s.stock())
	s.Equal(1, s.outgoingCount())
	outgoing := s.movements()[1]
	s.Equal(100, outgoing.Quantity())
	s.True(outgoing.ProductID().IsEqual(s.productID))

	status, err = s.advanceOrder(id)
	s.Require().NoError(err)
	s.Equal(order.Delivered, status)
	s.Empty(s.notifier.Sent())

	s.clock.Advance(48 * time.Hour)
	status, err = s.advanceOrder(id)
	s.Require().NoError(err)
	s.Equal(order.Completed, status)

	completed := s.loadOrder(id)
	s.Equal("2026-10-03", completed.CompletionDate().String())
	s.True(completed.PrepaymentDate().IsEqual(s.createdDate))

	sent := s.notifier.Sent()
	s.Require().Len(sent, 1)
	s.Equal(partner.OrderCompleted, sent[0].Kind)
	s.Equal("orders@acme.test", sent[0].Contact)
}

func (s *WorkflowSuite) TestConcurrentReservationOnSameMaterial() {
	// Bring stock down to exactly 5 through the ledger.
	drain := s.createOrder(45)
	_, _ = s.advanceOrder(drain)
	_, err := s.advanceOrder(drain)
	s.Require().NoError(err)
	s.Require().Equal(5, s.stock())
	before := s.outgoingCount()

	first, second := s.createOrder(3), s.createOrder(3)
	_, _ = s.advanceOrder(first)
	_, _ = s.advanceOrder(second)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []kernel.UUID{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = s.advanceOrder(id)
		}()
	}
	wg.Wait()

	succeeded, short := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, material.ErrInsufficientStock):
			short++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, short)
	s.Equal(2, s.stock())
	s.Equal(before+1, s.outgoingCount())
}

func (s *WorkflowSuite) TestNoSkippingAndTerminalImmutability() {
	id := s.createOrder(1)
	s.Require().NoError(s.cancelOrder(id))
	cancelled := s.loadOrder(id).Snapshot()

	_, err := s.advanceOrder(id)
	s.Require().ErrorIs(err, order.ErrInvalidTransition)
	s.Require().ErrorIs(s.cancelOrder(id), order.ErrInvalidCancellation)
	s.clock.Advance(30 * 24 * time.Hour)
	s.runSweep()

	s.Equal(cancelled, s.loadOrder(id).Snapshot())
	s.Len(s.notifier.Sent(), 1)
}

func (s *WorkflowSuite) TestCancelRejectedOnceInProduction() {
	id := s.createOrder(10)
	_, _ = s.advanceOrder(id)
	_, err := s.advanceOrder(id)
	s.Require().NoError(err)

	err = s.cancelOrder(id)

	s.Require().ErrorIs(err, order.ErrInvalidCancellation)
	s.Equal(order.InProduction, s.loadOrder(id).Status())
	s.Equal(40, s.stock())
}

func (s *WorkflowSuite) TestSweepCancelsOnlyOverdueCreatedOrders() {
	overdue := s.createOrder(1)
	prepaid := s.createOrder(1)
	_, _ = s.advanceOrder(prepaid)

	s.clock.Advance(72 * time.Hour)
	fresh := s.createOrder(1)

	// Exactly 72h after the creation day started: not yet overdue.
	s.clock.Advance(-9*time.Hour - 30*time.Minute)
	s.Empty(s.runSweep().Cancelled)

	s.clock.Advance(time.Minute)
	result := s.runSweep()

	s.Require().Len(result.Cancelled, 1)
	s.True(result.Cancelled[0].IsEqual(overdue))
	s.Equal(order.Cancelled, s.loadOrder(overdue).Status())
	s.Nil(s.loadOrder(overdue).PrepaymentDate())
	s.Equal(order.Prepaid, s.loadOrder(prepaid).Status())
	s.Equal(order.Created, s.loadOrder(fresh).Status())

	sent := s.notifier.Sent()
	s.Require().Len(sent, 1)
	s.Equal(partner.OrderExpired, sent[0].Kind)
	s.True(sent[0].OrderID.IsEqual(overdue))
}

func (s *WorkflowSuite) TestSweepCountsGraceFromLocalMidnight() {
	msk := time.FixedZone("UTC+3", 3*60*60)
	s.clock.now = time.Date(2026, 10, 1, 0, 30, 0, 0, msk)
	id := s.createOrder(1)
	s.True(s.loadOrder(id).CreatedDate().IsEqual(kernel.DateOf(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))))

	s.clock.now = time.Date(2026, 10, 3, 23, 59, 0, 0, msk)
	s.Empty(s.runSweep().Cancelled)

	s.clock.now = time.Date(2026, 10, 4, 1, 0, 0, 0, msk)
	result := s.runSweep()

	s.Require().Len(result.Cancelled, 1)
	s.Equal(order.Cancelled, s.loadOrder(id).Status())
}

func (s *WorkflowSuite) TestProductionWithoutConsumptionMaterial() {
	s.advance = commands.NewAdvanceOrderStatusCommandHandler(s.factory, s.notifier, s.clock, kernel.UUID{},
		slog.New(slog.DiscardHandler))
	id := s.createOrder(5)
	_, _ = s.advanceOrder(id)

	_, err := s.advanceOrder(id)

	s.Require().ErrorIs(err, errs.ErrInfrastructure)
	s.Require().ErrorIs(err, commands.ErrConsumptionMaterialNotConfigured)
	s.Equal(order.Prepaid, s.loadOrder(id).Status())
	s.Equal(50, s.stock())
}

func (s *WorkflowSuite) TestSweepIsIdempotent() {
	id := s.createOrder(1)
	s.clock.Advance(4 * 24 * time.Hour)

	first := s.runSweep()
	afterFirst := s.loadOrder(id).Snapshot()
	second := s.runSweep()

	s.Len(first.Cancelled, 1)
	s.Empty(second.Cancelled)
	s.Equal(afterFirst, s.loadOrder(id).Snapshot())
	s.Len(s.notifier.Sent(), 1)
}

func (s *WorkflowSuite) TestSweepContinuesWhenNotificationFails() {
	a, b := s.createOrder(1), s.createOrder(2)
	s.notifier.err = errors.New("broker unavailable")
	s.clock.Advance(4 * 24 * time.Hour)

	result := s.runSweep()

	s.Len(result.Cancelled, 2)
	s.Zero(result.Failed)
	s.Equal(order.Cancelled, s.loadOrder(a).Status())
	s.Equal(order.Cancelled, s.loadOrder(b).Status())
}

func (s *WorkflowSuite) TestSweepWithoutPartnerContact() {
	s.seedPartner("")
	id := s.createOrder(1)
	s.clock.Advance(4 * 24 * time.Hour)

	result := s.runSweep()

	s.Len(result.Cancelled, 1)
	s.Equal(order.Cancelled, s.loadOrder(id).Status())
	s.Empty(s.notifier.Sent())
}

func (s *WorkflowSuite) TestManualTransitionAndSweepSerialize() {
	ids := make([]kernel.UUID, 20)
	for i := range ids {
		ids[i] = s.createOrder(1)
	}
	s.clock.Advance(4 * 24 * time.Hour)

	var wg sync.WaitGroup
	advanced := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, advanced[i] = s.advanceOrder(id)
		}()
	}
	var result commands.SweepResult
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, _ = s.sweep.Handle(s.ctx, commands.NewSweepExpiredOrdersCommand())
	}()
	wg.Wait()

	swept := make(map[kernel.UUID]bool)
	for _, id := range result.Cancelled {
		swept[id] = true
	}
	for i, id := range ids {
		o := s.loadOrder(id)
		if advanced[i] == nil {
			s.Equal(order.Prepaid, o.Status())
			s.False(swept[id], "order both prepaid and swept")
		} else {
			s.ErrorIs(advanced[i], order.ErrInvalidTransition)
			s.Equal(order.Cancelled, o.Status())
			s.True(swept[id])
		}
	}
}

func (s *WorkflowSuite) TestBillOfMaterials() {
	second := kernel.NewUUID()
	uow := s.store.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	glue, err := material.NewMaterial(second, "Glue", 2, 30, 0, nil)
	s.Require().NoError(err)
	s.Require().NoError(uow.MaterialRepository().Add(s.ctx, glue))
	p, err := product.NewProduct(kernel.NewUUID(), "Table", 2, decimal.NewFromInt(1), decimal.NewFromInt(1),
		[]product.Component{{MaterialID: s.materialID, QuantityPerUnit: 4}, {MaterialID: second, QuantityPerUnit: 3}})
	s.Require().NoError(err)
	s.Require().NoError(uow.ProductRepository().Add(s.ctx, p))
	s.Require().NoError(uow.Commit(s.ctx))
	s.productID = p.ID()

	id := s.createOrder(10)
	_, _ = s.advanceOrder(id)
	status, err := s.advanceOrder(id)
	s.Require().NoError(err)
	s.Equal(order.InProduction, status)

	s.Equal(10, s.stock())
	g, err := s.store.Create().MaterialRepository().Get(s.ctx, second)
	s.Require().NoError(err)
	s.Equal(0, g.Stock())

	// A shortage on any component rolls back the others.
	again := s.createOrder(1)
	_, _ = s.advanceOrder(again)
	_, err = s.advanceOrder(again)
	s.Require().ErrorIs(err, material.ErrInsufficientStock)
	s.Equal(10, s.stock())
}

func (s *WorkflowSuite) TestCreateOrderReferencesMustExist() {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), s.managerID, s.productID,
		1, decimal.NewFromInt(1), nil)
	s.Require().NoError(err)

	err = s.create.Handle(s.ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = s.store.Create().OrderRepository().Get(s.ctx, cmd.OrderID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestSweepExpiredOrdersCommandHandler_RejectsUnconstructedCommand(t *testing.T) {
	h := commands.NewSweepExpiredOrdersCommandHandler(new(MockUoWFactory), &recordingNotifier{}, handlerClock, 0,
		slog.New(slog.DiscardHandler))

	_, err := h.Handle(t.Context(), commands.SweepExpiredOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrSweepExpiredOrdersCommandIsNotConstructed)
	assert.Equal(t, 72*time.Hour, commands.DefaultPrepaymentGracePeriod)
}
