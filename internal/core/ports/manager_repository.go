package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
)

type ManagerRepository interface {
	Add(ctx context.Context, m *manager.Manager) error
	Get(ctx context.Context, id kernel.UUID) (*manager.Manager, error)
}
