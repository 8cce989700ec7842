package queries

import (
	"context"

	"orderflow/internal/core/ports"
)

type ListLowStockMaterialsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListLowStockMaterialsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListLowStockMaterialsQueryHandler {
	return ListLowStockMaterialsQueryHandler{uowFactory: uowFactory}
}

func (h ListLowStockMaterialsQueryHandler) Handle(
	ctx context.Context,
	query ListLowStockMaterialsQuery,
) ([]MaterialResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	materials, err := h.uowFactory.Create().MaterialRepository().ListBelowMinimum(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		result = append(result, newMaterialResponse(m))
	}
	return result, nil
}
