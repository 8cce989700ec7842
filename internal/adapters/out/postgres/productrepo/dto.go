// Package productrepo persists the product catalog and each product's bill
// of materials.
package productrepo

import (
	"orderflow/internal/adapters/out/postgres/materialrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Name       string                `gorm:"type:varchar(255);not null"`
	TypeID     int                   `gorm:"not null"`
	Param1     decimal.Decimal       `gorm:"type:numeric(12,4);not null;check:chk_products_param1,param1 > 0"`
	Param2     decimal.Decimal       `gorm:"type:numeric(12,4);not null;check:chk_products_param2,param2 > 0"`
	Components []ProductComponentDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// ProductComponentDTO is one bill-of-materials line. A material used by a
// product cannot be deleted.
type ProductComponentDTO struct {
	ProductID       uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	MaterialID      uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	QuantityPerUnit int                       `gorm:"not null;check:chk_product_components_quantity,quantity_per_unit > 0"`
	Material        *materialrepo.MaterialDTO `gorm:"foreignKey:MaterialID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ProductComponentDTO) TableName() string {
	return "product_components"
}

func fromDomain(p *product.Product) ProductDTO {
	productID := p.ID().Bytes()
	components := make([]ProductComponentDTO, 0, len(p.Components()))
	for _, c := range p.Components() {
		components = append(components, ProductComponentDTO{
			ProductID:       productID,
			MaterialID:      c.MaterialID.Bytes(),
			QuantityPerUnit: c.QuantityPerUnit,
		})
	}

	return ProductDTO{
		ID:         productID,
		Name:       p.Name(),
		TypeID:     p.TypeID(),
		Param1:     p.Param1(),
		Param2:     p.Param2(),
		Components: components,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	components := make([]product.Component, 0, len(dto.Components))
	for _, c := range dto.Components {
		materialID, materialErr := kernel.UUIDFromBytes(c.MaterialID[:])
		if materialErr != nil {
			return nil, materialErr
		}
		components = append(components, product.Component{
			MaterialID:      materialID,
			QuantityPerUnit: c.QuantityPerUnit,
		})
	}

	return product.NewProduct(id, dto.Name, dto.TypeID, dto.Param1, dto.Param2, components)
}
