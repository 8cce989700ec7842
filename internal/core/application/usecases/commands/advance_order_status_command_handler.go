package commands

import (
	"context"
	"errors"
	"log/slog"

	"orderflow/internal/core/application/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// ErrConsumptionMaterialNotConfigured means a product without a bill of
// materials entered production while no consumption material was set.
var ErrConsumptionMaterialNotConfigured = errors.New("consumption material is not configured")

// AdvanceOrderStatusCommandHandler is the order lifecycle engine's forward path.
//
// Side effects per transition:
//   - created -> prepaid: prepayment date is set to today
//   - prepaid -> in_production: the product's bill of materials is reserved
//     through the inventory ledger; a shortage fails the whole command
//   - delivered -> completed: completion date is set and, after commit, the
//     partner is notified
//
// The order row is locked for the whole transaction, so a concurrent
// cancellation or timeout sweep observes either the old or the new status.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory            UoWFactory
	clock                 kernel.Clock
	consumptionMaterialID kernel.UUID
	notifications         partnerNotifications
	logger                *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates the handler. consumptionMaterialID
// is reserved for products that have no bill of materials.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	clock kernel.Clock,
	consumptionMaterialID kernel.UUID,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	logger = logger.With("component", "AdvanceOrderStatusCommandHandler")
	return AdvanceOrderStatusCommandHandler{
		uowFactory:            uowFactory,
		clock:                 clock,
		consumptionMaterialID: consumptionMaterialID,
		notifications:         newPartnerNotifications(notifier, clock, logger),
		logger:                logger,
	}
}

// Handle returns the status the order moved to.
//
// Errors:
//   - errs.ErrObjectNotFound: unknown order
//   - order.ErrInvalidTransition: the order is terminal
//   - material.ErrInsufficientStock: production entry without enough stock;
//     status and stock are unchanged
//   - errs.ErrInfrastructure: production entry of a product without a bill of
//     materials while no consumption material is configured
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	next, err := o.NextStatus()
	if err != nil {
		return order.Unknown, err
	}

	if o.EntersProductionNext() {
		if err = h.reserveMaterials(ctx, uow, o); err != nil {
			return order.Unknown, err
		}
	}

	if err = o.TransitionTo(next, kernel.Today(h.clock)); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	h.logger.Info("order advanced", "order_id", o.ID().String(), "status", next.String())

	if next == order.Completed {
		h.notifications.send(ctx, h.uowFactory.Create().PartnerRepository(), partner.OrderCompleted, o)
	}

	return next, nil
}

func (h *AdvanceOrderStatusCommandHandler) reserveMaterials(ctx context.Context, uow UoW, o *order.Order) error {
	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return err
	}

	if len(p.Components()) == 0 && h.consumptionMaterialID.Validate() != nil {
		return errs.NewInfrastructureError("reserve consumption material", ErrConsumptionMaterialNotConfigured)
	}

	ledger := inventory.NewLedger(uow.MaterialRepository(), uow.MovementRepository(), h.clock)
	_, err = ledger.ReserveAll(ctx, p.MaterialRequirements(o.Quantity(), h.consumptionMaterialID), p.ID())
	return err
}
