package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RegisterPartner handles POST /api/v1/partners.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	var req RegisterPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterPartnerCommand(id, req.Name, req.Email)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RegisterPartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// GetPartnerDiscount handles GET /api/v1/partners/{id}/discount.
func (s *Server) GetPartnerDiscount(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetPartnerDiscountQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	discount, err := s.h.PartnerDiscount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, DiscountResponse{
		PartnerID:          discount.PartnerID.String(),
		CumulativeQuantity: discount.CumulativeQuantity,
		DiscountPercent:    discount.DiscountPercent,
	})
}

// GetPartnerSales handles GET /api/v1/partners/{id}/sales.
func (s *Server) GetPartnerSales(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetPartnerSalesQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	sales, err := s.h.PartnerSales.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Sale, len(sales))
	for i, sale := range sales {
		response[i] = Sale{
			ID:              sale.SaleID.String(),
			ProductID:       sale.ProductID.String(),
			ProductName:     sale.ProductName,
			Quantity:        sale.Quantity,
			SaleDate:        sale.SaleDate.String(),
			DiscountPercent: sale.DiscountPercent,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RecordSale handles POST /api/v1/partners/{id}/sales.
func (s *Server) RecordSale(ctx echo.Context, partnerID kernel.UUID) error {
	var req RecordSaleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return s.fail(ctx, err)
	}
	saleDate, err := kernel.ParseDate(req.SaleDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRecordSaleCommand(id, partnerID, productID, req.Quantity, saleDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RecordSale.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// RegisterManager handles POST /api/v1/managers.
func (s *Server) RegisterManager(ctx echo.Context) error {
	var req RegisterManagerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterManagerCommand(id, req.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RegisterManager.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// RegisterProduct handles POST /api/v1/products.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var req RegisterProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	components := make([]product.Component, len(req.Components))
	for i, c := range req.Components {
		materialID, err := kernel.UUIDFromString(c.MaterialID)
		if err != nil {
			return s.fail(ctx, err)
		}
		components[i] = product.Component{MaterialID: materialID, QuantityPerUnit: c.QuantityPerUnit}
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterProductCommand(id, req.Name, req.TypeID, req.Param1, req.Param2, components)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RegisterProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ComputeYield handles POST /api/v1/yield.
func (s *Server) ComputeYield(ctx echo.Context) error {
	var req YieldRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	query := queries.NewComputeYieldQuery(req.ProductType, req.MaterialType, req.TotalMaterial, req.Param1, req.Param2)
	result, err := s.h.ComputeYield.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toYield(result))
}

// ProductYield handles GET /api/v1/products/{id}/yield?material_id=&total=.
func (s *Server) ProductYield(ctx echo.Context, productID kernel.UUID, params ProductYieldParams) error {
	materialID, err := kernel.UUIDFromString(params.MaterialId)
	if err != nil {
		return s.fail(ctx, err)
	}
	total, err := decimal.NewFromString(params.Total)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("total", err))
	}

	query, err := queries.NewProductYieldQuery(productID, materialID, total)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ProductYield.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toYield(result))
}

func toYield(r queries.YieldResponse) YieldResponse {
	return YieldResponse{
		ProductType:  r.ProductType,
		MaterialType: r.MaterialType,
		Units:        r.Units,
	}
}
