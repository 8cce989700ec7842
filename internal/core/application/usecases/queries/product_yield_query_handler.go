package queries

import (
	"context"

	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

type ProductYieldQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	calculator services.YieldCalculator
}

func NewProductYieldQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	calculator services.YieldCalculator,
) ProductYieldQueryHandler {
	return ProductYieldQueryHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

func (h ProductYieldQueryHandler) Handle(ctx context.Context, query ProductYieldQuery) (YieldResponse, error) {
	if err := query.Validate(); err != nil {
		return YieldResponse{}, err
	}

	uow := h.uowFactory.Create()
	p, err := uow.ProductRepository().Get(ctx, query.ProductID())
	if err != nil {
		return YieldResponse{}, err
	}
	m, err := uow.MaterialRepository().Get(ctx, query.MaterialID())
	if err != nil {
		return YieldResponse{}, err
	}

	units, err := h.calculator.Compute(p.TypeID(), m.TypeID(), query.totalMaterial, p.Param1(), p.Param2())
	if err != nil {
		return YieldResponse{}, err
	}

	return YieldResponse{
		ProductType:  p.TypeID(),
		MaterialType: m.TypeID(),
		Units:        units,
	}, nil
}
