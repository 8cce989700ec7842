package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// CreateOrderCommandHandler registers a new order in created status, dated
// today by the injected clock.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), partnerID, managerID, productID, 10, cost, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle checks that the referenced partner, manager and product exist and
// persists the order. Lookups return errs.ObjectNotFoundError when they do not.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID()); err != nil {
		return err
	}
	if _, err := uow.ManagerRepository().Get(ctx, cmd.ManagerID()); err != nil {
		return err
	}
	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.PartnerID(),
		cmd.ManagerID(),
		cmd.ProductID(),
		cmd.Quantity(),
		cmd.Cost(),
		cmd.ProductionDate(),
		kernel.Today(h.clock),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
