package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/ports"
)

// CancelOrderCommandHandler cancels a created or prepaid order under its row
// lock and notifies the partner after commit. Any other status fails with
// order.ErrInvalidCancellation and nothing changes.
type CancelOrderCommandHandler struct {
	uowFactory    UoWFactory
	notifications partnerNotifications
	logger        *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	clock kernel.Clock,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	logger = logger.With("component", "CancelOrderCommandHandler")
	return CancelOrderCommandHandler{
		uowFactory:    uowFactory,
		notifications: newPartnerNotifications(notifier, clock, logger),
		logger:        logger,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("order cancelled", "order_id", o.ID().String())
	h.notifications.send(ctx, h.uowFactory.Create().PartnerRepository(), partner.OrderCancelled, o)
	return nil
}
