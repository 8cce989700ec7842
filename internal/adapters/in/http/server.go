// Package http exposes the order workflow over a JSON API served by echo.
// Server implements ServerInterface, the operations of api/openapi.yml.
package http

import (
	"log/slog"
	"net/http"

	"orderflow/api"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	AdvanceOrder     commands.AdvanceOrderStatusCommandHandler
	CancelOrder      commands.CancelOrderCommandHandler
	SweepExpired     commands.SweepExpiredOrdersCommandHandler
	Restock          commands.RestockMaterialCommandHandler
	RegisterPartner  commands.RegisterPartnerCommandHandler
	RegisterManager  commands.RegisterManagerCommandHandler
	RegisterProduct  commands.RegisterProductCommandHandler
	RegisterMaterial commands.RegisterMaterialCommandHandler
	RecordSale       commands.RecordSaleCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	PartnerDiscount   queries.GetPartnerDiscountQueryHandler
	PartnerSales      queries.GetPartnerSalesQueryHandler
	ComputeYield      queries.ComputeYieldQueryHandler
	ProductYield      queries.ProductYieldQueryHandler
	LowStockMaterials queries.ListLowStockMaterialsQueryHandler
	MaterialMovements queries.ListMaterialMovementsQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// Register mounts the API described by api/openapi.yml on e. Requests are
// validated against the document before dispatch; the document itself is
// served at /openapi.yml and through swagger UI at /swagger/index.html.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := api.GetSwagger()
	if err != nil {
		return err
	}
	if err = api.RegisterDocs(doc); err != nil {
		return err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(validator)
	RegisterHandlers(e, s)
	return nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
