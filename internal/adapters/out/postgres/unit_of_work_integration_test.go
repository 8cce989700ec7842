package postgres_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/inventory"
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
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and the
// inventory ledger against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	clock     kernel.Clock

	partner  *partner.Partner
	manager  *manager.Manager
	product  *product.Product
	material *material.Material
}

// SetupSuite starts PostgreSQL and migrates the schema once for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.clock = kernel.ClockFunc(func() time.Time {
		return time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	})
}

// SetupTest truncates every table and seeds one partner, manager, product
// and material with 5 units of stock.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE movements, sales, orders, product_components, products,
		materials, suppliers, partners, managers`).Error
	suite.Require().NoError(err)

	email := "orders@acme.test"
	suite.partner, err = partner.NewPartner(kernel.NewUUID(), "Acme", &email)
	suite.Require().NoError(err)
	suite.manager, err = manager.NewManager(kernel.NewUUID(), "Olga Ivanova")
	suite.Require().NoError(err)
	suite.material, err = material.NewMaterial(kernel.NewUUID(), "Oak plank", 1, 5, 2, nil)
	suite.Require().NoError(err)
	suite.product, err = product.NewProduct(kernel.NewUUID(), "Chair", 1, decimal.NewFromInt(2), decimal.NewFromInt(5),
		[]product.Component{{MaterialID: suite.material.ID(), QuantityPerUnit: 1}})
	suite.Require().NoError(err)

	suite.inTx(func(uow ports.UnitOfWork) error {
		return errors.Join(
			uow.PartnerRepository().Add(context.Background(), suite.partner),
			uow.ManagerRepository().Add(context.Background(), suite.manager),
			uow.MaterialRepository().Add(context.Background(), suite.material),
			uow.ProductRepository().Add(context.Background(), suite.product),
		)
	})
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) inTx(fn func(uow ports.UnitOfWork) error) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(fn(uow))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(quantity int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.partner.ID(), suite.manager.ID(), suite.product.ID(),
		quantity, decimal.NewFromInt(500), nil, kernel.Today(suite.clock))
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) stock() int {
	m, err := suite.factory.Create().MaterialRepository().Get(context.Background(), suite.material.ID())
	suite.Require().NoError(err)
	return m.Stock()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Begin is idempotent")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsAllRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder(2)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	ledger := inventory.NewLedger(uow.MaterialRepository(), uow.MovementRepository(), suite.clock)
	_, err := ledger.Reserve(ctx, suite.material.ID(), 2, suite.product.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(5, suite.stock())
	movements, err := suite.factory.Create().MovementRepository().ListByMaterial(ctx, suite.material.ID())
	suite.Require().NoError(err)
	suite.Empty(movements)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsStockAndMovementTogether() {
	ctx := context.Background()

	suite.inTx(func(uow ports.UnitOfWork) error {
		ledger := inventory.NewLedger(uow.MaterialRepository(), uow.MovementRepository(), suite.clock)
		if _, err := ledger.Restock(ctx, suite.material.ID(), 10); err != nil {
			return err
		}
		_, err := ledger.Reserve(ctx, suite.material.ID(), 15, suite.product.ID())
		return err
	})

	suite.Equal(0, suite.stock())
	movements, err := suite.factory.Create().MovementRepository().ListByMaterial(ctx, suite.material.ID())
	suite.Require().NoError(err)
	suite.Require().Len(movements, 2)
	suite.Equal(material.Incoming, movements[0].Kind())
	suite.Equal(material.Outgoing, movements[1].Kind())
	suite.Equal(15, movements[1].Quantity())
	suite.Require().NotNil(movements[1].ProductID())
	suite.Equal(suite.product.ID(), *movements[1].ProductID())

	low, err := suite.factory.Create().MaterialRepository().ListBelowMinimum(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(low, 1)
	suite.Equal(suite.material.ID(), low[0].ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStockCannotGoNegative() {
	ctx := context.Background()
	m, err := material.RestoreMaterial(material.Snapshot{
		ID:     suite.material.ID(),
		Name:   suite.material.Name(),
		TypeID: suite.material.TypeID(),
		Stock:  0,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().MaterialRepository().Update(ctx, m))

	err = suite.db.Exec("UPDATE materials SET stock = -1 WHERE id = ?", suite.material.ID().Bytes()).Error

	suite.Require().Error(err)
	suite.Equal(0, suite.stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReferencesAreEnforced() {
	ctx := context.Background()
	uow := suite.factory.Create()

	sale, err := partner.NewSale(kernel.NewUUID(), suite.partner.ID(), kernel.NewUUID(), 10, kernel.Today(suite.clock))
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.PartnerRepository().AddSale(ctx, sale), errs.ErrObjectNotFound)

	ghost, err := material.NewMaterial(kernel.NewUUID(), "Ghost", 1, 0, 0, nil)
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), "Stool", 1, decimal.NewFromInt(1), decimal.NewFromInt(1),
		[]product.Component{{MaterialID: ghost.ID(), QuantityPerUnit: 2}})
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.ProductRepository().Add(ctx, p), errs.ErrObjectNotFound)

	supplierID := kernel.NewUUID()
	withSupplier, err := material.NewMaterial(kernel.NewUUID(), "Glue", 2, 0, 0, &supplierID)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.MaterialRepository().Add(ctx, withSupplier), errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSalesAggregation() {
	ctx := context.Background()
	repo := suite.factory.Create().PartnerRepository()

	total, err := repo.CumulativeSaleQuantity(ctx, suite.partner.ID())
	suite.Require().NoError(err)
	suite.Zero(total)

	for _, q := range []int{6000, 4000} {
		sale, saleErr := partner.NewSale(kernel.NewUUID(), suite.partner.ID(), suite.product.ID(), q, kernel.Today(suite.clock))
		suite.Require().NoError(saleErr)
		suite.Require().NoError(repo.AddSale(ctx, sale))
	}

	total, err = repo.CumulativeSaleQuantity(ctx, suite.partner.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(10000), total)

	sales, err := repo.ListSales(ctx, suite.partner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(sales, 2)
	suite.Equal(4000, sales[0].Quantity())
}

// TestConcurrentReservation runs two production entries of 3 units against
// 5 units of stock. The material row lock lets exactly one of them through.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentReservation() {
	ctx := context.Background()
	first, second := suite.newOrder(3), suite.newOrder(3)
	for _, o := range []*order.Order{first, second} {
		suite.Require().NoError(o.TransitionTo(order.Prepaid, kernel.Today(suite.clock)))
	}
	suite.inTx(func(uow ports.UnitOfWork) error {
		return errors.Join(
			uow.OrderRepository().Add(ctx, first),
			uow.OrderRepository().Add(ctx, second),
		)
	})

	var f commands.UoWFactory = uowFactory(func() commands.UoW { return suite.factory.Create() })
	handler := commands.NewAdvanceOrderStatusCommandHandler(f, noopNotifier{}, suite.clock, kernel.NewUUID(),
		slog.New(slog.DiscardHandler))

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, o := range []*order.Order{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID())
			if err != nil {
				results[i] = err
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	var succeeded, short int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, material.ErrInsufficientStock):
			short++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, short)
	suite.Equal(2, suite.stock())

	movements, err := suite.factory.Create().MovementRepository().ListByMaterial(ctx, suite.material.ID())
	suite.Require().NoError(err)
	suite.Len(movements, 1)

	statuses := map[order.Status]int{}
	for _, o := range []*order.Order{first, second} {
		got, getErr := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
		suite.Require().NoError(getErr)
		statuses[got.Status()]++
	}
	suite.Equal(map[order.Status]int{order.InProduction: 1, order.Prepaid: 1}, statuses)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW {
	return f()
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, partner.Notification) error {
	return nil
}
