package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	managerID, err := kernel.UUIDFromString(req.ManagerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return s.fail(ctx, err)
	}
	productionDate, err := parseOptionalDate(req.ProductionDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, partnerID, managerID, productID, req.Quantity, req.Cost, productionDate,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders, newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// AdvanceOrder handles POST /api/v1/orders/{id}/advance and returns the new status.
func (s *Server) AdvanceOrder(ctx echo.Context, id kernel.UUID) error {
	cmd, err := commands.NewAdvanceOrderStatusCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.h.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusResponse{ID: id.String(), Status: status.String()})
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id kernel.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, StatusResponse{ID: id.String(), Status: order.Cancelled.String()})
}

// SweepExpiredOrders handles POST /api/v1/sweeps by running one sweep pass.
func (s *Server) SweepExpiredOrders(ctx echo.Context) error {
	result, err := s.h.SweepExpired.Handle(ctx.Request().Context(), commands.NewSweepExpiredOrdersCommand())
	if err != nil {
		return s.fail(ctx, err)
	}

	cancelled := make([]string, len(result.Cancelled))
	for i, id := range result.Cancelled {
		cancelled[i] = id.String()
	}
	return ctx.JSON(http.StatusOK, SweepResponse{
		Examined:  result.Examined,
		Cancelled: cancelled,
		Failed:    result.Failed,
	})
}
