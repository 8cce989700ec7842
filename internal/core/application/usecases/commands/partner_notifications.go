package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/partner"
	"orderflow/internal/core/ports"
)

// partnerNotifications sends outcome notifications once the order change is
// committed. It reads the partner outside the transaction and only logs
// failures: a committed transition is never undone because a partner could
// not be told about it.
type partnerNotifications struct {
	notifier ports.Notifier
	clock    kernel.Clock
	logger   *slog.Logger
}

func newPartnerNotifications(notifier ports.Notifier, clock kernel.Clock, logger *slog.Logger) partnerNotifications {
	return partnerNotifications{
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

// send returns true when the notification reached the notifier.
func (p partnerNotifications) send(
	ctx context.Context,
	partners ports.PartnerRepository,
	kind partner.NotificationKind,
	o *order.Order,
) bool {
	log := p.logger.With("order_id", o.ID().String(), "partner_id", o.PartnerID().String(), "kind", string(kind))

	pt, err := partners.Get(ctx, o.PartnerID())
	if err != nil {
		log.Error("failed to load partner for notification", "error", err)
		return false
	}

	n := partner.NewNotification(kind, o.ID(), pt, p.clock.Now())
	if !n.HasContact() {
		log.Warn("no contact on file, notification not sent")
		return false
	}

	if err = p.notifier.Notify(ctx, n); err != nil {
		log.Error("failed to deliver notification", "error", err)
		return false
	}

	log.Info("partner notified")
	return true
}
