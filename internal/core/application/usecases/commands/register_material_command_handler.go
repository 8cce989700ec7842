package commands

import (
	"context"

	"orderflow/internal/core/domain/model/material"
)

type RegisterMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
}

func NewRegisterMaterialCommandHandler(uowFactory MaterialUoWFactory) RegisterMaterialCommandHandler {
	return RegisterMaterialCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterMaterialCommandHandler) Handle(ctx context.Context, cmd RegisterMaterialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := material.NewMaterial(cmd.MaterialID(), cmd.Name(), cmd.TypeID(), 0, cmd.MinQuantity(), cmd.SupplierID())
	if err != nil {
		return err
	}

	var supplier *material.Supplier
	if cmd.SupplierID() != nil && cmd.SupplierName() != "" {
		if supplier, err = material.NewSupplier(*cmd.SupplierID(), cmd.SupplierName()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	materialRepo := uow.MaterialRepository()
	if supplier != nil {
		if err = materialRepo.AddSupplier(ctx, supplier); err != nil {
			return err
		}
	}

	if err = materialRepo.Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
