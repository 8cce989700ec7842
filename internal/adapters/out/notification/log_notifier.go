package notification

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/partner"
)

// LogNotifier writes notifications to the log instead of a broker. It is
// used when no Kafka host is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "LogNotifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, notification partner.Notification) error {
	n.logger.InfoContext(ctx, "partner notification",
		"kind", string(notification.Kind),
		"order_id", notification.OrderID.String(),
		"partner_id", notification.PartnerID.String(),
		"contact", notification.Contact,
		"occurred_at", notification.OccurredAt,
	)
	return nil
}
