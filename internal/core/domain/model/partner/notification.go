package partner

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// NotificationKind names the order outcome a partner is told about.
type NotificationKind string

const (
	OrderCancelled NotificationKind = "order_cancelled"
	OrderExpired   NotificationKind = "order_expired"
	OrderCompleted NotificationKind = "order_completed"
)

// Notification is emitted after an order outcome has been committed.
// Contact is empty when the partner has no contact on file.
type Notification struct {
	Kind       NotificationKind
	OrderID    kernel.UUID
	PartnerID  kernel.UUID
	Contact    string
	OccurredAt time.Time
}

// NewNotification addresses a notification to p's contact, if any.
func NewNotification(kind NotificationKind, orderID kernel.UUID, p *Partner, at time.Time) Notification {
	contact, _ := p.Contact()
	return Notification{
		Kind:       kind,
		OrderID:    orderID,
		PartnerID:  p.ID(),
		Contact:    contact,
		OccurredAt: at.UTC(),
	}
}

// HasContact reports whether the notification can be delivered to anyone.
func (n Notification) HasContact() bool {
	return n.Contact != ""
}
