// Package managerrepo persists the managers who take partner orders.
package managerrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/dberr"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManagerDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (ManagerDTO) TableName() string {
	return "managers"
}

type GormManagerRepository struct {
	db *gorm.DB
}

func NewGormManagerRepository(db *gorm.DB) *GormManagerRepository {
	return &GormManagerRepository{db: db}
}

func (r *GormManagerRepository) Add(ctx context.Context, m *manager.Manager) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := ManagerDTO{ID: m.ID().Bytes(), Name: m.Name()}
	return dberr.Wrap("insert manager", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormManagerRepository) Get(ctx context.Context, id kernel.UUID) (*manager.Manager, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManagerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manager", id.String())
		}
		return nil, dberr.Wrap("select manager", err)
	}

	managerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return manager.NewManager(managerID, dto.Name)
}
