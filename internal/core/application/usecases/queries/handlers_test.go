package queries_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/memory"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QueryHandlersTestSuite struct {
	suite.Suite

	ctx     context.Context
	factory ports.UnitOfWorkFactory

	partner  *partner.Partner
	manager  *manager.Manager
	chair    *product.Product
	table    *product.Product
	oak      *material.Material
	glue     *material.Material
	today    kernel.Date
	occurred time.Time
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

func (s *QueryHandlersTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
	s.occurred = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	s.today = kernel.DateOf(s.occurred)

	var err error
	email := "sales@acme.test"
	s.partner, err = partner.NewPartner(kernel.NewUUID(), "Acme", &email)
	s.Require().NoError(err)
	s.manager, err = manager.NewManager(kernel.NewUUID(), "Olga Ivanova")
	s.Require().NoError(err)
	s.chair, err = product.NewProduct(kernel.NewUUID(), "Chair", 1, decimal.NewFromInt(2), decimal.NewFromInt(5), nil)
	s.Require().NoError(err)
	s.table, err = product.NewProduct(kernel.NewUUID(), "Table", 2, decimal.NewFromInt(1), decimal.NewFromInt(1), nil)
	s.Require().NoError(err)
	s.oak, err = material.NewMaterial(kernel.NewUUID(), "Oak plank", 1, 5, 10, nil)
	s.Require().NoError(err)
	s.glue, err = material.NewMaterial(kernel.NewUUID(), "Glue", 2, 40, 10, nil)
	s.Require().NoError(err)

	s.inTx(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.PartnerRepository().Add(s.ctx, s.partner))
		s.Require().NoError(uow.ManagerRepository().Add(s.ctx, s.manager))
		s.Require().NoError(uow.ProductRepository().Add(s.ctx, s.chair))
		s.Require().NoError(uow.ProductRepository().Add(s.ctx, s.table))
		s.Require().NoError(uow.MaterialRepository().Add(s.ctx, s.oak))
		s.Require().NoError(uow.MaterialRepository().Add(s.ctx, s.glue))
	})
}

func (s *QueryHandlersTestSuite) inTx(fn func(uow ports.UnitOfWork)) {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	fn(uow)
	s.Require().NoError(uow.Commit(s.ctx))
}

func (s *QueryHandlersTestSuite) addOrder(quantity int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), s.partner.ID(), s.manager.ID(), s.chair.ID(),
		quantity, decimal.RequireFromString("499.90"), nil, s.today)
	s.Require().NoError(err)
	s.inTx(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.OrderRepository().Add(s.ctx, o))
	})
	return o
}

func (s *QueryHandlersTestSuite) addSale(p *product.Product, quantity int, date kernel.Date) {
	sale, err := partner.NewSale(kernel.NewUUID(), s.partner.ID(), p.ID(), quantity, date)
	s.Require().NoError(err)
	s.inTx(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.PartnerRepository().AddSale(s.ctx, sale))
	})
}

func (s *QueryHandlersTestSuite) TestListOrders_Empty() {
	result, err := queries.NewListOrdersQueryHandler(s.factory).Handle(s.ctx, queries.NewListOrdersQuery())

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *QueryHandlersTestSuite) TestListOrders_NewestFirstWithAllStatuses() {
	first := s.addOrder(1)
	second := s.addOrder(2)
	s.Require().NoError(second.Cancel())
	s.inTx(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.OrderRepository().Update(s.ctx, second))
	})

	result, err := queries.NewListOrdersQueryHandler(s.factory).Handle(s.ctx, queries.NewListOrdersQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(second.ID(), result[0].ID)
	s.Equal(order.Cancelled, result[0].Status)
	s.Equal(first.ID(), result[1].ID)
	s.Equal(order.Created, result[1].Status)
	s.True(decimal.RequireFromString("499.90").Equal(result[1].Cost))
}

func (s *QueryHandlersTestSuite) TestListOrders_InvalidQuery() {
	result, err := queries.NewListOrdersQueryHandler(s.factory).Handle(s.ctx, queries.ListOrdersQuery{})

	s.Require().ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
	s.Nil(result)
}

func (s *QueryHandlersTestSuite) TestGetOrder() {
	o := s.addOrder(3)
	query, err := queries.NewGetOrderQuery(o.ID())
	s.Require().NoError(err)

	result, err := queries.NewGetOrderQueryHandler(s.factory).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Equal(o.ID(), result.ID)
	s.Equal(s.partner.ID(), result.PartnerID)
	s.Equal(3, result.Quantity)
	s.True(result.CreatedDate.IsEqual(s.today))
	s.Nil(result.PrepaymentDate)
	s.Nil(result.CompletionDate)
}

func (s *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(s.factory).Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueryHandlersTestSuite) TestGetPartnerDiscount() {
	tests := []struct {
		name    string
		sales   []int
		total   int64
		percent int
	}{
		{"no sales", nil, 0, 0},
		{"just below first tier", []int{9999}, 9999, 0},
		{"first tier boundary", []int{6000, 4000}, 10000, 5},
		{"second tier", []int{30000, 20000}, 50000, 10},
		{"top tier", []int{300000}, 300000, 15},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			for _, q := range tt.sales {
				s.addSale(s.chair, q, s.today)
			}
			query, err := queries.NewGetPartnerDiscountQuery(s.partner.ID())
			s.Require().NoError(err)

			result, err := queries.NewGetPartnerDiscountQueryHandler(s.factory, services.DefaultDiscountCalculator()).
				Handle(s.ctx, query)

			s.Require().NoError(err)
			s.Equal(tt.total, result.CumulativeQuantity)
			s.Equal(tt.percent, result.DiscountPercent)
		})
	}
}

func (s *QueryHandlersTestSuite) TestGetPartnerDiscount_UnknownPartner() {
	query, err := queries.NewGetPartnerDiscountQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = queries.NewGetPartnerDiscountQueryHandler(s.factory, services.DefaultDiscountCalculator()).
		Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueryHandlersTestSuite) TestGetPartnerSales() {
	older, _ := kernel.ParseDate("2026-09-01")
	s.addSale(s.chair, 7000, older)
	s.addSale(s.table, 4000, s.today)

	query, err := queries.NewGetPartnerSalesQuery(s.partner.ID())
	s.Require().NoError(err)

	result, err := queries.NewGetPartnerSalesQueryHandler(s.factory, services.DefaultDiscountCalculator()).
		Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal("Table", result[0].ProductName)
	s.Equal(4000, result[0].Quantity)
	s.Equal("Chair", result[1].ProductName)
	s.Equal("2026-09-01", result[1].SaleDate.String())
	for _, row := range result {
		s.Equal(5, row.DiscountPercent)
	}
}

func (s *QueryHandlersTestSuite) TestComputeYield() {
	handler := queries.NewComputeYieldQueryHandler(services.DefaultYieldCalculator())

	result, err := handler.Handle(s.ctx, queries.NewComputeYieldQuery(1, 1,
		decimal.NewFromInt(1000), decimal.NewFromInt(2), decimal.NewFromInt(5)))

	s.Require().NoError(err)
	s.Equal(int64(60), result.Units)

	_, err = handler.Handle(s.ctx, queries.NewComputeYieldQuery(9, 1,
		decimal.NewFromInt(1000), decimal.NewFromInt(2), decimal.NewFromInt(5)))
	s.Require().ErrorIs(err, services.ErrYieldInputInvalid)
}

func (s *QueryHandlersTestSuite) TestProductYield() {
	query, err := queries.NewProductYieldQuery(s.chair.ID(), s.glue.ID(), decimal.NewFromInt(1000))
	s.Require().NoError(err)

	result, err := queries.NewProductYieldQueryHandler(s.factory, services.DefaultYieldCalculator()).Handle(s.ctx, query)

	// 1000 * (1 - 0.20) / (2 * 5 * 1.5) = 53.33
	s.Require().NoError(err)
	s.Equal(1, result.ProductType)
	s.Equal(2, result.MaterialType)
	s.Equal(int64(53), result.Units)
}

func (s *QueryHandlersTestSuite) TestProductYield_UnknownMaterial() {
	query, err := queries.NewProductYieldQuery(s.chair.ID(), kernel.NewUUID(), decimal.NewFromInt(1000))
	s.Require().NoError(err)

	_, err = queries.NewProductYieldQueryHandler(s.factory, services.DefaultYieldCalculator()).Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueryHandlersTestSuite) TestListLowStockMaterials() {
	result, err := queries.NewListLowStockMaterialsQueryHandler(s.factory).
		Handle(s.ctx, queries.NewListLowStockMaterialsQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal(s.oak.ID(), result[0].ID)
	s.Equal(5, result[0].Stock)
	s.Equal(10, result[0].MinQuantity)
}

func (s *QueryHandlersTestSuite) TestListMaterialMovements() {
	in, err := material.NewIncomingMovement(kernel.NewUUID(), s.oak.ID(), 20, s.occurred)
	s.Require().NoError(err)
	out, err := material.NewOutgoingMovement(kernel.NewUUID(), s.oak.ID(), s.chair.ID(), 8, s.occurred.Add(time.Hour))
	s.Require().NoError(err)
	s.inTx(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.MovementRepository().Add(s.ctx, in))
		s.Require().NoError(uow.MovementRepository().Add(s.ctx, out))
	})

	query, err := queries.NewListMaterialMovementsQuery(s.oak.ID())
	s.Require().NoError(err)

	result, err := queries.NewListMaterialMovementsQueryHandler(s.factory).Handle(s.ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(material.Incoming, result[0].Kind)
	s.Nil(result[0].ProductID)
	s.Equal(material.Outgoing, result[1].Kind)
	s.Require().NotNil(result[1].ProductID)
	s.Equal(s.chair.ID(), *result[1].ProductID)
	s.Equal(8, result[1].Quantity)
}

func (s *QueryHandlersTestSuite) TestListMaterialMovements_UnknownMaterial() {
	query, err := queries.NewListMaterialMovementsQuery(kernel.NewUUID())
	s.Require().NoError(err)

	_, err = queries.NewListMaterialMovementsQueryHandler(s.factory).Handle(s.ctx, query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
