package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/ports"
)

// DefaultPrepaymentGracePeriod is how long a created order may wait for
// prepayment before the sweep cancels it.
const DefaultPrepaymentGracePeriod = 72 * time.Hour

// SweepResult reports one sweep pass.
type SweepResult struct {
	Examined  int
	Cancelled []kernel.UUID
	Failed    int
}

// SweepExpiredOrdersCommandHandler force-cancels created orders whose
// prepayment is overdue.
//
// Each candidate is evaluated in its own unit of work: the order is re-read
// under its row lock and re-checked before cancelling, so an order prepaid or
// cancelled since the candidate list was read is left alone. A failure on
// one order is logged and the pass moves on. A crash mid-pass leaves every
// order either untouched or fully cancelled, and the next pass picks up the
// rest.
type SweepExpiredOrdersCommandHandler struct {
	uowFactory    UoWFactory
	clock         kernel.Clock
	grace         time.Duration
	notifications partnerNotifications
	logger        *slog.Logger
}

func NewSweepExpiredOrdersCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	clock kernel.Clock,
	grace time.Duration,
	logger *slog.Logger,
) SweepExpiredOrdersCommandHandler {
	if grace <= 0 {
		grace = DefaultPrepaymentGracePeriod
	}

	logger = logger.With("component", "SweepExpiredOrdersCommandHandler")
	return SweepExpiredOrdersCommandHandler{
		uowFactory:    uowFactory,
		clock:         clock,
		grace:         grace,
		notifications: newPartnerNotifications(notifier, clock, logger),
		logger:        logger,
	}
}

// Handle returns the orders cancelled by this pass. It only returns an error
// when the candidate list cannot be read or ctx is done; per-order failures
// are counted in SweepResult.Failed.
func (h *SweepExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd SweepExpiredOrdersCommand) (SweepResult, error) {
	var result SweepResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	candidates, err := h.uowFactory.Create().OrderRepository().ListAwaitingPrepayment(ctx)
	if err != nil {
		return result, err
	}

	now := h.clock.Now()
	for _, candidate := range candidates {
		if err = ctx.Err(); err != nil {
			return result, err
		}
		if !candidate.IsPrepaymentOverdue(now, h.grace) {
			continue
		}
		result.Examined++

		cancelled, expireErr := h.expire(ctx, candidate.ID(), now)
		if expireErr != nil {
			result.Failed++
			h.logger.Error("failed to expire order", "order_id", candidate.ID().String(), "error", expireErr)
			continue
		}
		if cancelled == nil {
			continue
		}

		result.Cancelled = append(result.Cancelled, cancelled.ID())
		h.logger.Info("order expired", "order_id", cancelled.ID().String(), "created_date", cancelled.CreatedDate().String())
		h.notifications.send(ctx, h.uowFactory.Create().PartnerRepository(), partner.OrderExpired, cancelled)
	}

	return result, nil
}

// expire cancels one order if it is still overdue under lock. It returns a
// nil order when a concurrent change made the order ineligible.
func (h *SweepExpiredOrdersCommandHandler) expire(ctx context.Context, id kernel.UUID, now time.Time) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	err = o.CancelForTimeout(now, h.grace)
	switch {
	case errors.Is(err, order.ErrInvalidCancellation), errors.Is(err, order.ErrPrepaymentNotOverdue):
		return nil, nil
	case err != nil:
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
