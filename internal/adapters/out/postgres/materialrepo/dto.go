// Package materialrepo persists raw materials and their suppliers.
package materialrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"

	"github.com/google/uuid"
)

// SupplierDTO is a row of the suppliers table.
type SupplierDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

// MaterialDTO is a row of the materials table. Deleting a supplier keeps its
// materials and clears the reference.
type MaterialDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name        string       `gorm:"type:varchar(255);not null"`
	TypeID      int          `gorm:"not null"`
	Stock       int          `gorm:"not null;check:chk_materials_stock,stock >= 0"`
	MinQuantity int          `gorm:"not null;check:chk_materials_min_quantity,min_quantity >= 0"`
	SupplierID  *uuid.UUID   `gorm:"type:uuid;index"`
	Supplier    *SupplierDTO `gorm:"foreignKey:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (MaterialDTO) TableName() string {
	return "materials"
}

func fromDomain(m *material.Material) MaterialDTO {
	var supplierID *uuid.UUID
	if id := m.SupplierID(); id != nil {
		raw := id.Bytes()
		supplierID = &raw
	}

	return MaterialDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		TypeID:      m.TypeID(),
		Stock:       m.Stock(),
		MinQuantity: m.MinQuantity(),
		SupplierID:  supplierID,
	}
}

func toDomain(dto MaterialDTO) (*material.Material, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sID, supplierErr := kernel.UUIDFromBytes(dto.SupplierID[:])
		if supplierErr != nil {
			return nil, supplierErr
		}
		supplierID = &sID
	}

	return material.RestoreMaterial(material.Snapshot{
		ID:          id,
		Name:        dto.Name,
		TypeID:      dto.TypeID,
		Stock:       dto.Stock,
		MinQuantity: dto.MinQuantity,
		SupplierID:  supplierID,
	})
}
