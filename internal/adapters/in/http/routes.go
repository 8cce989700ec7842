package http

import (
	"fmt"
	"net/http"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.yml. Path and query
// parameters arrive already bound.
type ServerInterface interface {
	// (GET /health)
	Health(ctx echo.Context) error

	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id kernel.UUID) error
	// (POST /api/v1/orders/{id}/advance)
	AdvanceOrder(ctx echo.Context, id kernel.UUID) error
	// (POST /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id kernel.UUID) error
	// (POST /api/v1/sweeps)
	SweepExpiredOrders(ctx echo.Context) error

	// (POST /api/v1/partners)
	RegisterPartner(ctx echo.Context) error
	// (GET /api/v1/partners/{id}/discount)
	GetPartnerDiscount(ctx echo.Context, id kernel.UUID) error
	// (GET /api/v1/partners/{id}/sales)
	GetPartnerSales(ctx echo.Context, id kernel.UUID) error
	// (POST /api/v1/partners/{id}/sales)
	RecordSale(ctx echo.Context, id kernel.UUID) error

	// (POST /api/v1/managers)
	RegisterManager(ctx echo.Context) error

	// (POST /api/v1/products)
	RegisterProduct(ctx echo.Context) error
	// (GET /api/v1/products/{id}/yield)
	ProductYield(ctx echo.Context, id kernel.UUID, params ProductYieldParams) error
	// (POST /api/v1/yield)
	ComputeYield(ctx echo.Context) error

	// (POST /api/v1/materials)
	RegisterMaterial(ctx echo.Context) error
	// (GET /api/v1/materials/low-stock)
	ListLowStockMaterials(ctx echo.Context) error
	// (POST /api/v1/materials/{id}/restock)
	RestockMaterial(ctx echo.Context, id kernel.UUID) error
	// (GET /api/v1/materials/{id}/movements)
	ListMaterialMovements(ctx echo.Context, id kernel.UUID) error
}

// ProductYieldParams defines parameters for ProductYield.
type ProductYieldParams struct {
	MaterialId string `form:"material_id" json:"material_id"`
	// Total is a decimal string.
	Total string `form:"total" json:"total"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.AdvanceOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.CancelOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) SweepExpiredOrders(ctx echo.Context) error {
	return w.Handler.SweepExpiredOrders(ctx)
}

func (w *ServerInterfaceWrapper) RegisterPartner(ctx echo.Context) error {
	return w.Handler.RegisterPartner(ctx)
}

func (w *ServerInterfaceWrapper) GetPartnerDiscount(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.GetPartnerDiscount(ctx, id)
}

func (w *ServerInterfaceWrapper) GetPartnerSales(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.GetPartnerSales(ctx, id)
}

func (w *ServerInterfaceWrapper) RecordSale(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.RecordSale(ctx, id)
}

func (w *ServerInterfaceWrapper) RegisterManager(ctx echo.Context) error {
	return w.Handler.RegisterManager(ctx)
}

func (w *ServerInterfaceWrapper) RegisterProduct(ctx echo.Context) error {
	return w.Handler.RegisterProduct(ctx)
}

func (w *ServerInterfaceWrapper) ProductYield(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}

	var params ProductYieldParams

	// ------------- Required query parameter "material_id" -------------
	err = runtime.BindQueryParameter("form", true, true, "material_id", ctx.QueryParams(), &params.MaterialId)
	if err != nil {
		return invalidParameter(ctx, "material_id", err)
	}

	// ------------- Required query parameter "total" -------------
	err = runtime.BindQueryParameter("form", true, true, "total", ctx.QueryParams(), &params.Total)
	if err != nil {
		return invalidParameter(ctx, "total", err)
	}

	return w.Handler.ProductYield(ctx, id, params)
}

func (w *ServerInterfaceWrapper) ComputeYield(ctx echo.Context) error {
	return w.Handler.ComputeYield(ctx)
}

func (w *ServerInterfaceWrapper) RegisterMaterial(ctx echo.Context) error {
	return w.Handler.RegisterMaterial(ctx)
}

func (w *ServerInterfaceWrapper) ListLowStockMaterials(ctx echo.Context) error {
	return w.Handler.ListLowStockMaterials(ctx)
}

func (w *ServerInterfaceWrapper) RestockMaterial(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.RestockMaterial(ctx, id)
}

func (w *ServerInterfaceWrapper) ListMaterialMovements(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return invalidParameter(ctx, "id", err)
	}
	return w.Handler.ListMaterialMovements(ctx, id)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, prefixing each path
// with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.Health)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:id/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/api/v1/orders/:id/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/sweeps", wrapper.SweepExpiredOrders)
	router.POST(baseURL+"/api/v1/partners", wrapper.RegisterPartner)
	router.GET(baseURL+"/api/v1/partners/:id/discount", wrapper.GetPartnerDiscount)
	router.GET(baseURL+"/api/v1/partners/:id/sales", wrapper.GetPartnerSales)
	router.POST(baseURL+"/api/v1/partners/:id/sales", wrapper.RecordSale)
	router.POST(baseURL+"/api/v1/managers", wrapper.RegisterManager)
	router.POST(baseURL+"/api/v1/products", wrapper.RegisterProduct)
	router.GET(baseURL+"/api/v1/products/:id/yield", wrapper.ProductYield)
	router.POST(baseURL+"/api/v1/yield", wrapper.ComputeYield)
	router.POST(baseURL+"/api/v1/materials", wrapper.RegisterMaterial)
	router.GET(baseURL+"/api/v1/materials/low-stock", wrapper.ListLowStockMaterials)
	router.POST(baseURL+"/api/v1/materials/:id/restock", wrapper.RestockMaterial)
	router.GET(baseURL+"/api/v1/materials/:id/movements", wrapper.ListMaterialMovements)
}

// bindID binds the "id" path parameter.
func bindID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(raw)
}

func invalidParameter(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    CodeInvalidInput,
		Message: fmt.Sprintf("Invalid format for parameter %s: %s", name, err),
	})
}
