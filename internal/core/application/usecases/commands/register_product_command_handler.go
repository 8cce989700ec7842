package commands

import (
	"context"

	"orderflow/internal/core/domain/model/product"
)

// RegisterProductCommandHandler checks that every component material exists
// before storing the product.
type RegisterProductCommandHandler struct {
	uowFactory UoWFactory
}

func NewRegisterProductCommandHandler(uowFactory UoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.TypeID(), cmd.Param1(), cmd.Param2(), cmd.Components())
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

	for _, c := range p.Components() {
		if _, err = uow.MaterialRepository().Get(ctx, c.MaterialID); err != nil {
			return err
		}
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
