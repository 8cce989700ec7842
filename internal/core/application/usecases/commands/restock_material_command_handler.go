package commands

import (
	"context"

	"orderflow/internal/core/application/inventory"
	"orderflow/internal/core/domain/model/kernel"
)

// RestockMaterialCommandHandler adds stock through the inventory ledger, so
// the increase is recorded as an incoming movement in the same transaction.
type RestockMaterialCommandHandler struct {
	uowFactory MaterialUoWFactory
	clock      kernel.Clock
}

func NewRestockMaterialCommandHandler(uowFactory MaterialUoWFactory, clock kernel.Clock) RestockMaterialCommandHandler {
	return RestockMaterialCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the stock after restocking.
func (h *RestockMaterialCommandHandler) Handle(ctx context.Context, cmd RestockMaterialCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger := inventory.NewLedger(uow.MaterialRepository(), uow.MovementRepository(), h.clock)
	if _, err := ledger.Restock(ctx, cmd.MaterialID(), cmd.Quantity()); err != nil {
		return 0, err
	}

	m, err := uow.MaterialRepository().Get(ctx, cmd.MaterialID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return m.Stock(), nil
}
