package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpapi "orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/adapters/out/notification"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	clock      kernel.Clock
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.Notifier
	closers    []func() error

	grace                 time.Duration
	consumptionMaterialID kernel.UUID
	yield                 services.YieldCalculator
	discount              services.DiscountCalculator
}

// NewCompositionRoot wires the adapters selected by configs. A nil gormDB
// selects the in-memory store.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs:  configs,
		logger:   logger,
		clock:    kernel.SystemClock{},
		discount: services.DefaultDiscountCalculator(),
	}

	if gormDB != nil {
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		logger.Warn("DB_HOST is not set, orders are kept in memory")
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	grace, err := time.ParseDuration(configs.PrepaymentGracePeriod)
	if err != nil || grace <= 0 {
		return nil, fmt.Errorf("invalid PREPAYMENT_GRACE_PERIOD %q", configs.PrepaymentGracePeriod)
	}
	c.grace = grace

	if configs.ConsumptionMaterialID != "" {
		c.consumptionMaterialID, err = kernel.UUIDFromString(configs.ConsumptionMaterialID)
		if err != nil {
			return nil, fmt.Errorf("invalid CONSUMPTION_MATERIAL_ID: %w", err)
		}
	} else {
		logger.Warn("CONSUMPTION_MATERIAL_ID is not set, products without components cannot enter production")
	}

	if c.yield, err = newYieldCalculator(configs); err != nil {
		return nil, err
	}

	if configs.KafkaHost != "" {
		kafkaNotifier, kafkaErr := notification.NewKafkaNotifier(configs.KafkaHost, configs.KafkaOrderNotificationsTopic)
		if kafkaErr != nil {
			return nil, kafkaErr
		}
		c.notifier = kafkaNotifier
		c.closers = append(c.closers, kafkaNotifier.Close)
	} else {
		c.notifier = notification.NewLogNotifier(logger)
	}

	return c, nil
}

func newYieldCalculator(configs Config) (services.YieldCalculator, error) {
	coefficients := services.DefaultProductCoefficients()
	defectRates := services.DefaultMaterialDefectRates()

	var err error
	if configs.YieldProductCoefficients != "" {
		if coefficients, err = services.ParseRateTable(configs.YieldProductCoefficients); err != nil {
			return services.YieldCalculator{}, fmt.Errorf("YIELD_PRODUCT_COEFFICIENTS: %w", err)
		}
	}
	if configs.YieldMaterialDefectRates != "" {
		if defectRates, err = services.ParseRateTable(configs.YieldMaterialDefectRates); err != nil {
			return services.YieldCalculator{}, fmt.Errorf("YIELD_MATERIAL_DEFECT_RATES: %w", err)
		}
	}

	return services.NewYieldCalculator(coefficients, defectRates)
}

// Close releases the notifier's connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) uows() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) materialUoWs() commands.MaterialUoWFactory {
	return FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWs() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uows(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.uows(), c.notifier, c.clock, c.consumptionMaterialID, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uows(), c.notifier, c.clock, c.logger)
}

func (c *CompositionRoot) CreateSweepExpiredOrdersCommandHandler() commands.SweepExpiredOrdersCommandHandler {
	return commands.NewSweepExpiredOrdersCommandHandler(c.uows(), c.notifier, c.clock, c.grace, c.logger)
}

func (c *CompositionRoot) CreateRestockMaterialCommandHandler() commands.RestockMaterialCommandHandler {
	return commands.NewRestockMaterialCommandHandler(c.materialUoWs(), c.clock)
}

func (c *CompositionRoot) CreateRegisterMaterialCommandHandler() commands.RegisterMaterialCommandHandler {
	return commands.NewRegisterMaterialCommandHandler(c.materialUoWs())
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	return commands.NewRegisterProductCommandHandler(c.uows())
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	return commands.NewRegisterPartnerCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateRegisterManagerCommandHandler() commands.RegisterManagerCommandHandler {
	return commands.NewRegisterManagerCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateRecordSaleCommandHandler() commands.RecordSaleCommandHandler {
	return commands.NewRecordSaleCommandHandler(c.catalogUoWs())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetPartnerDiscountQueryHandler() queries.GetPartnerDiscountQueryHandler {
	return queries.NewGetPartnerDiscountQueryHandler(c.uowFactory, c.discount)
}

func (c *CompositionRoot) CreateGetPartnerSalesQueryHandler() queries.GetPartnerSalesQueryHandler {
	return queries.NewGetPartnerSalesQueryHandler(c.uowFactory, c.discount)
}

func (c *CompositionRoot) CreateComputeYieldQueryHandler() queries.ComputeYieldQueryHandler {
	return queries.NewComputeYieldQueryHandler(c.yield)
}

func (c *CompositionRoot) CreateProductYieldQueryHandler() queries.ProductYieldQueryHandler {
	return queries.NewProductYieldQueryHandler(c.uowFactory, c.yield)
}

func (c *CompositionRoot) CreateListLowStockMaterialsQueryHandler() queries.ListLowStockMaterialsQueryHandler {
	return queries.NewListLowStockMaterialsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListMaterialMovementsQueryHandler() queries.ListMaterialMovementsQueryHandler {
	return queries.NewListMaterialMovementsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) NewServer() *httpapi.Server {
	return httpapi.NewServer(httpapi.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:     c.CreateAdvanceOrderStatusCommandHandler(),
		CancelOrder:      c.CreateCancelOrderCommandHandler(),
		SweepExpired:     c.CreateSweepExpiredOrdersCommandHandler(),
		Restock:          c.CreateRestockMaterialCommandHandler(),
		RegisterPartner:  c.CreateRegisterPartnerCommandHandler(),
		RegisterManager:  c.CreateRegisterManagerCommandHandler(),
		RegisterProduct:  c.CreateRegisterProductCommandHandler(),
		RegisterMaterial: c.CreateRegisterMaterialCommandHandler(),
		RecordSale:       c.CreateRecordSaleCommandHandler(),

		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		PartnerDiscount:   c.CreateGetPartnerDiscountQueryHandler(),
		PartnerSales:      c.CreateGetPartnerSalesQueryHandler(),
		ComputeYield:      c.CreateComputeYieldQueryHandler(),
		ProductYield:      c.CreateProductYieldQueryHandler(),
		LowStockMaterials: c.CreateListLowStockMaterialsQueryHandler(),
		MaterialMovements: c.CreateListMaterialMovementsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSweepExpiredOrdersCommandHandler(),
		c.CreateListLowStockMaterialsQueryHandler(),
		jobs.Schedules{Sweep: c.configs.SweepSchedule, LowStock: c.configs.LowStockSchedule},
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
