package queries

import (
	"context"

	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

type GetPartnerDiscountQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	calculator services.DiscountCalculator
}

func NewGetPartnerDiscountQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	calculator services.DiscountCalculator,
) GetPartnerDiscountQueryHandler {
	return GetPartnerDiscountQueryHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle returns errs.ErrObjectNotFound for an unknown partner. A partner
// without sales gets a 0% discount.
func (h GetPartnerDiscountQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerDiscountQuery,
) (GetPartnerDiscountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerDiscountQueryResponse{}, err
	}

	partners := h.uowFactory.Create().PartnerRepository()
	if _, err := partners.Get(ctx, query.PartnerID()); err != nil {
		return GetPartnerDiscountQueryResponse{}, err
	}

	total, err := partners.CumulativeSaleQuantity(ctx, query.PartnerID())
	if err != nil {
		return GetPartnerDiscountQueryResponse{}, err
	}

	percent, err := h.calculator.Compute(total)
	if err != nil {
		return GetPartnerDiscountQueryResponse{}, err
	}

	return GetPartnerDiscountQueryResponse{
		PartnerID:          query.PartnerID(),
		CumulativeQuantity: total,
		DiscountPercent:    percent,
	}, nil
}
