// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orderflow/internal/adapters/out/postgres/managerrepo"
	"orderflow/internal/adapters/out/postgres/partnerrepo"
	"orderflow/internal/adapters/out/postgres/productrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Partners, managers and products referenced by an order cannot be deleted.
// Seq records insertion order for newest-first listings.
type OrderDTO struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Seq            int64                   `gorm:"autoIncrement;not null;uniqueIndex"`
	PartnerID      uuid.UUID               `gorm:"type:uuid;not null;index"`
	Partner        *partnerrepo.PartnerDTO `gorm:"foreignKey:PartnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ManagerID      uuid.UUID               `gorm:"type:uuid;not null"`
	Manager        *managerrepo.ManagerDTO `gorm:"foreignKey:ManagerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductID      uuid.UUID               `gorm:"type:uuid;not null"`
	Product        *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Quantity       int                     `gorm:"not null;check:chk_orders_quantity,quantity > 0"`
	Cost           decimal.Decimal         `gorm:"type:numeric(14,2);not null;check:chk_orders_cost,cost > 0"`
	Status         string                  `gorm:"type:varchar(16);not null;index"`
	CreatedDate    time.Time               `gorm:"type:date;not null"`
	PrepaymentDate *time.Time              `gorm:"type:date"`
	CompletionDate *time.Time              `gorm:"type:date"`
	ProductionDate *time.Time              `gorm:"type:date"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		PartnerID:      o.PartnerID().Bytes(),
		ManagerID:      o.ManagerID().Bytes(),
		ProductID:      o.ProductID().Bytes(),
		Quantity:       o.Quantity(),
		Cost:           o.Cost(),
		Status:         o.Status().String(),
		CreatedDate:    o.CreatedDate().Time(),
		PrepaymentDate: dateToTime(o.PrepaymentDate()),
		CompletionDate: dateToTime(o.CompletionDate()),
		ProductionDate: dateToTime(o.ProductionDate()),
	}
}

// toDomain rebuilds the aggregate through RestoreOrder, which rejects rows
// whose status and dates disagree.
func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.PartnerID, dto.ManagerID, dto.ProductID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             ids[0],
		PartnerID:      ids[1],
		ManagerID:      ids[2],
		ProductID:      ids[3],
		Quantity:       dto.Quantity,
		Cost:           dto.Cost,
		Status:         order.Status(dto.Status),
		CreatedDate:    kernel.DateOf(dto.CreatedDate),
		PrepaymentDate: timeToDate(dto.PrepaymentDate),
		CompletionDate: timeToDate(dto.CompletionDate),
		ProductionDate: timeToDate(dto.ProductionDate),
	})
}

func dateToTime(d *kernel.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

func timeToDate(t *time.Time) *kernel.Date {
	if t == nil {
		return nil
	}
	return kernel.DateOf(*t).Ptr()
}
