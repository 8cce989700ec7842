package commands

import (
	"context"

	"orderflow/internal/core/domain/model/partner"
)

type RegisterPartnerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRegisterPartnerCommandHandler(uowFactory CatalogUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := partner.NewPartner(cmd.PartnerID(), cmd.Name(), cmd.Email())
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

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
