package queries

import (
	"context"

	"orderflow/internal/core/ports"
)

type ListMaterialMovementsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListMaterialMovementsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListMaterialMovementsQueryHandler {
	return ListMaterialMovementsQueryHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound for an unknown material.
func (h ListMaterialMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListMaterialMovementsQuery,
) ([]MovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.MaterialRepository().Get(ctx, query.MaterialID()); err != nil {
		return nil, err
	}

	movements, err := uow.MovementRepository().ListByMaterial(ctx, query.MaterialID())
	if err != nil {
		return nil, err
	}

	result := make([]MovementResponse, 0, len(movements))
	for _, mv := range movements {
		result = append(result, MovementResponse{
			ID:         mv.ID(),
			MaterialID: query.MaterialID(),
			ProductID:  mv.ProductID(),
			Quantity:   mv.Quantity(),
			Kind:       mv.Kind(),
			OccurredAt: mv.OccurredAt(),
		})
	}
	return result, nil
}
