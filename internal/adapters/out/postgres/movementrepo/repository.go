// Package movementrepo persists the append-only warehouse movement log.
package movementrepo

import (
	"context"
	"time"

	"orderflow/internal/adapters/out/postgres/dberr"
	"orderflow/internal/adapters/out/postgres/materialrepo"
	"orderflow/internal/adapters/out/postgres/productrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementDTO is a row of the movements table. Rows are inserted once and
// never updated. Seq orders movements written within the same instant.
type MovementDTO struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	Seq        int64                     `gorm:"autoIncrement;not null;uniqueIndex"`
	MaterialID *uuid.UUID                `gorm:"type:uuid;index"`
	Material   *materialrepo.MaterialDTO `gorm:"foreignKey:MaterialID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID  *uuid.UUID                `gorm:"type:uuid"`
	Product    *productrepo.ProductDTO   `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity   int                       `gorm:"not null;check:chk_movements_quantity,quantity > 0"`
	Kind       string                    `gorm:"type:varchar(16);not null"`
	OccurredAt time.Time                 `gorm:"not null"`
}

func (MovementDTO) TableName() string {
	return "movements"
}

type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

func (r *GormMovementRepository) Add(ctx context.Context, mv *material.Movement) error {
	dto := MovementDTO{
		ID:         mv.ID().Bytes(),
		MaterialID: optionalBytes(mv.MaterialID()),
		ProductID:  optionalBytes(mv.ProductID()),
		Quantity:   mv.Quantity(),
		Kind:       string(mv.Kind()),
		OccurredAt: mv.OccurredAt().UTC(),
	}
	return dberr.Wrap("insert movement", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormMovementRepository) ListByMaterial(ctx context.Context, materialID kernel.UUID) ([]*material.Movement, error) {
	var dtos []MovementDTO
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID.Bytes()).
		Order("occurred_at").
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap("list movements", err)
	}

	movements := make([]*material.Movement, 0, len(dtos))
	for _, dto := range dtos {
		mv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, nil
}

func toDomain(dto MovementDTO) (*material.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	materialID, err := optionalUUID(dto.MaterialID)
	if err != nil {
		return nil, err
	}
	productID, err := optionalUUID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	return material.RestoreMovement(material.MovementSnapshot{
		ID:         id,
		MaterialID: materialID,
		ProductID:  productID,
		Quantity:   dto.Quantity,
		Kind:       material.MovementKind(dto.Kind),
		OccurredAt: dto.OccurredAt.UTC(),
	})
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
