package ports

import (
	"context"

	"orderflow/internal/core/domain/model/partner"
)

// Notifier delivers partner notifications to an external channel. It is
// called only after the order change has been committed; a delivery error
// is logged by the caller and never undoes the change.
type Notifier interface {
	Notify(ctx context.Context, n partner.Notification) error
}
