package commands

import (
	"context"

	"orderflow/internal/core/domain/model/partner"
)

type RecordSaleCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRecordSaleCommandHandler(uowFactory CatalogUoWFactory) RecordSaleCommandHandler {
	return RecordSaleCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the partner or product is unknown.
func (h *RecordSaleCommandHandler) Handle(ctx context.Context, cmd RecordSaleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sale, err := partner.NewSale(cmd.SaleID(), cmd.PartnerID(), cmd.ProductID(), cmd.Quantity(), cmd.SaleDate())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	if _, err = partnerRepo.Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}
	if _, err = uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err = partnerRepo.AddSale(ctx, sale); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
