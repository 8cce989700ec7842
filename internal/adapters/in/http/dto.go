package http

import (
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Dates travel as YYYY-MM-DD strings, statuses as their lowercase names.

type CreateOrderRequest struct {
	PartnerID      string          `json:"partner_id"`
	ManagerID      string          `json:"manager_id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	Cost           decimal.Decimal `json:"cost"`
	ProductionDate *string         `json:"production_date,omitempty"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Order struct {
	ID             string          `json:"id"`
	PartnerID      string          `json:"partner_id"`
	ManagerID      string          `json:"manager_id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	Cost           decimal.Decimal `json:"cost"`
	Status         string          `json:"status"`
	CreatedDate    string          `json:"created_date"`
	PrepaymentDate *string         `json:"prepayment_date"`
	CompletionDate *string         `json:"completion_date"`
	ProductionDate *string         `json:"production_date"`
}

type SweepResponse struct {
	Examined  int      `json:"examined"`
	Cancelled []string `json:"cancelled"`
	Failed    int      `json:"failed"`
}

type DiscountResponse struct {
	PartnerID          string `json:"partner_id"`
	CumulativeQuantity int64  `json:"cumulative_quantity"`
	DiscountPercent    int    `json:"discount_percent"`
}

type Sale struct {
	ID              string `json:"id"`
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	SaleDate        string `json:"sale_date"`
	DiscountPercent int    `json:"discount_percent"`
}

type YieldRequest struct {
	ProductType   int             `json:"product_type"`
	MaterialType  int             `json:"material_type"`
	TotalMaterial decimal.Decimal `json:"total_material"`
	Param1        decimal.Decimal `json:"param1"`
	Param2        decimal.Decimal `json:"param2"`
}

type YieldResponse struct {
	ProductType  int   `json:"product_type"`
	MaterialType int   `json:"material_type"`
	Units        int64 `json:"units"`
}

type RestockRequest struct {
	Quantity int `json:"quantity"`
}

type RestockResponse struct {
	MaterialID string `json:"material_id"`
	Stock      int    `json:"stock"`
}

type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TypeID      int     `json:"type_id"`
	Stock       int     `json:"stock"`
	MinQuantity int     `json:"min_quantity"`
	SupplierID  *string `json:"supplier_id"`
}

type Movement struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"material_id"`
	ProductID  *string   `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RegisterPartnerRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

type RegisterManagerRequest struct {
	Name string `json:"name"`
}

type Component struct {
	MaterialID      string `json:"material_id"`
	QuantityPerUnit int    `json:"quantity_per_unit"`
}

type RegisterProductRequest struct {
	Name       string          `json:"name"`
	TypeID     int             `json:"type_id"`
	Param1     decimal.Decimal `json:"param1"`
	Param2     decimal.Decimal `json:"param2"`
	Components []Component     `json:"components"`
}

type RegisterMaterialRequest struct {
	Name         string  `json:"name"`
	TypeID       int     `json:"type_id"`
	MinQuantity  int     `json:"min_quantity"`
	SupplierID   *string `json:"supplier_id,omitempty"`
	SupplierName string  `json:"supplier_name,omitempty"`
}

type RecordSaleRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	SaleDate  string `json:"sale_date"`
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:             o.ID.String(),
		PartnerID:      o.PartnerID.String(),
		ManagerID:      o.ManagerID.String(),
		ProductID:      o.ProductID.String(),
		Quantity:       o.Quantity,
		Cost:           o.Cost,
		Status:         o.Status.String(),
		CreatedDate:    o.CreatedDate.String(),
		PrepaymentDate: dateString(o.PrepaymentDate),
		CompletionDate: dateString(o.CompletionDate),
		ProductionDate: dateString(o.ProductionDate),
	}
}

func toMaterial(m queries.MaterialResponse) Material {
	return Material{
		ID:          m.ID.String(),
		Name:        m.Name,
		TypeID:      m.TypeID,
		Stock:       m.Stock,
		MinQuantity: m.MinQuantity,
		SupplierID:  idString(m.SupplierID),
	}
}

func dateString(d *kernel.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseOptionalDate(s *string) (*kernel.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := kernel.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseOptionalID(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
