package queries

import (
	"context"

	"orderflow/internal/core/domain/services"
)

type ComputeYieldQueryHandler struct {
	calculator services.YieldCalculator
}

func NewComputeYieldQueryHandler(calculator services.YieldCalculator) ComputeYieldQueryHandler {
	return ComputeYieldQueryHandler{calculator: calculator}
}

func (h ComputeYieldQueryHandler) Handle(_ context.Context, query ComputeYieldQuery) (YieldResponse, error) {
	if err := query.Validate(); err != nil {
		return YieldResponse{}, err
	}

	units, err := h.calculator.Compute(query.productType, query.materialType, query.totalMaterial, query.param1, query.param2)
	if err != nil {
		return YieldResponse{}, err
	}

	return YieldResponse{
		ProductType:  query.productType,
		MaterialType: query.materialType,
		Units:        units,
	}, nil
}
