package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

type GetPartnerSalesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	calculator services.DiscountCalculator
}

func NewGetPartnerSalesQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	calculator services.DiscountCalculator,
) GetPartnerSalesQueryHandler {
	return GetPartnerSalesQueryHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

func (h GetPartnerSalesQueryHandler) Handle(ctx context.Context, query GetPartnerSalesQuery) ([]SaleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	partners := uow.PartnerRepository()
	if _, err := partners.Get(ctx, query.PartnerID()); err != nil {
		return nil, err
	}

	sales, err := partners.ListSales(ctx, query.PartnerID())
	if err != nil {
		return nil, err
	}

	var total int64
	for _, s := range sales {
		total += int64(s.Quantity())
	}
	percent, err := h.calculator.Compute(total)
	if err != nil {
		return nil, err
	}

	products := uow.ProductRepository()
	names := make(map[kernel.UUID]string)
	result := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		name, ok := names[s.ProductID()]
		if !ok {
			p, getErr := products.Get(ctx, s.ProductID())
			if getErr != nil {
				return nil, getErr
			}
			name = p.Name()
			names[s.ProductID()] = name
		}

		result = append(result, SaleResponse{
			SaleID:          s.ID(),
			ProductID:       s.ProductID(),
			ProductName:     name,
			Quantity:        s.Quantity(),
			SaleDate:        s.SaleDate(),
			DiscountPercent: percent,
		})
	}
	return result, nil
}
