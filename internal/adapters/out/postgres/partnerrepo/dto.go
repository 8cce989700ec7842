// Package partnerrepo persists partners and their sales history.
package partnerrepo

import (
	"time"

	"orderflow/internal/adapters/out/postgres/productrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

type PartnerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email *string   `gorm:"type:varchar(320)"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

// SaleDTO is one row of the sales history. Seq breaks ties between sales
// recorded on the same day.
type SaleDTO struct {
	ID        uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Seq       int64                   `gorm:"autoIncrement;not null;uniqueIndex"`
	PartnerID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Partner   *PartnerDTO             `gorm:"foreignKey:PartnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID uuid.UUID               `gorm:"type:uuid;not null"`
	Product   *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity  int                     `gorm:"not null;check:chk_sales_quantity,quantity > 0"`
	SaleDate  time.Time               `gorm:"type:date;not null"`
}

func (SaleDTO) TableName() string {
	return "sales"
}

func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return partner.NewPartner(id, dto.Name, dto.Email)
}

func saleFromDomain(s *partner.Sale) SaleDTO {
	return SaleDTO{
		ID:        s.ID().Bytes(),
		PartnerID: s.PartnerID().Bytes(),
		ProductID: s.ProductID().Bytes(),
		Quantity:  s.Quantity(),
		SaleDate:  s.SaleDate().Time(),
	}
}

func saleToDomain(dto SaleDTO) (*partner.Sale, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	return partner.NewSale(id, partnerID, productID, dto.Quantity, kernel.DateOf(dto.SaleDate))
}
