package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterMaterial handles POST /api/v1/materials. New materials start with
// no stock.
func (s *Server) RegisterMaterial(ctx echo.Context) error {
	var req RegisterMaterialRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	supplierID, err := parseOptionalID(req.SupplierID)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterMaterialCommand(id, req.Name, req.TypeID, req.MinQuantity, supplierID, req.SupplierName)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RegisterMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// RestockMaterial handles POST /api/v1/materials/{id}/restock.
func (s *Server) RestockMaterial(ctx echo.Context, id kernel.UUID) error {
	var req RestockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRestockMaterialCommand(id, req.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	stock, err := s.h.Restock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RestockResponse{MaterialID: id.String(), Stock: stock})
}

// ListLowStockMaterials handles GET /api/v1/materials/low-stock.
func (s *Server) ListLowStockMaterials(ctx echo.Context) error {
	materials, err := s.h.LowStockMaterials.Handle(ctx.Request().Context(), queries.NewListLowStockMaterialsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Material, len(materials))
	for i, m := range materials {
		response[i] = toMaterial(m)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListMaterialMovements handles GET /api/v1/materials/{id}/movements.
func (s *Server) ListMaterialMovements(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewListMaterialMovementsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	movements, err := s.h.MaterialMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Movement, len(movements))
	for i, m := range movements {
		response[i] = Movement{
			ID:         m.ID.String(),
			MaterialID: m.MaterialID.String(),
			ProductID:  idString(m.ProductID),
			Quantity:   m.Quantity,
			Kind:       string(m.Kind),
			OccurredAt: m.OccurredAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
