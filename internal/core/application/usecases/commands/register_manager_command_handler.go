package commands

import (
	"context"

	"orderflow/internal/core/domain/model/manager"
)

type RegisterManagerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRegisterManagerCommandHandler(uowFactory CatalogUoWFactory) RegisterManagerCommandHandler {
	return RegisterManagerCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterManagerCommandHandler) Handle(ctx context.Context, cmd RegisterManagerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := manager.NewManager(cmd.ManagerID(), cmd.Name())
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

	if err = uow.ManagerRepository().Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
