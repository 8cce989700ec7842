package materialrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/dberr"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMaterialRepository implements MaterialRepository using GORM.
type GormMaterialRepository struct {
	db *gorm.DB
}

func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

func (r *GormMaterialRepository) Add(ctx context.Context, m *material.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	return dberr.Wrap("insert material", r.db.WithContext(ctx).Omit("Supplier").Create(&dto).Error)
}

func (r *GormMaterialRepository) AddSupplier(ctx context.Context, s *material.Supplier) error {
	dto := SupplierDTO{
		ID:   s.ID().Bytes(),
		Name: s.Name(),
	}
	return dberr.Wrap("insert supplier", r.db.WithContext(ctx).Create(&dto).Error)
}

// Update writes every mutable column, including a stock of zero.
func (r *GormMaterialRepository) Update(ctx context.Context, m *material.Material) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	result := r.db.WithContext(ctx).
		Model(&MaterialDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "type_id", "stock", "min_quantity", "supplier_id").
		Updates(&dto)
	if result.Error != nil {
		return dberr.Wrap("update material", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("material", m.ID().String())
	}
	return nil
}

func (r *GormMaterialRepository) Get(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate issues SELECT ... FOR UPDATE; the lock lasts until the
// surrounding transaction ends.
func (r *GormMaterialRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*material.Material, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormMaterialRepository) ListBelowMinimum(ctx context.Context) ([]*material.Material, error) {
	var dtos []MaterialDTO
	if err := r.db.WithContext(ctx).Where("stock < min_quantity").Order("id").Find(&dtos).Error; err != nil {
		return nil, dberr.Wrap("list materials below minimum", err)
	}

	materials := make([]*material.Material, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}

func (r *GormMaterialRepository) get(query *gorm.DB, id kernel.UUID) (*material.Material, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MaterialDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", id.String())
		}
		return nil, dberr.Wrap("select material", err)
	}

	return toDomain(dto)
}
