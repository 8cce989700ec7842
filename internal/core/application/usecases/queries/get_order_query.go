package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by ID.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := requireID("order ID", orderID, &q.orderID); err != nil {
		return GetOrderQuery{}, err
	}
	return q, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse is the read model of an order. Optional dates are nil until
// the lifecycle sets them.
type OrderResponse struct {
	ID             kernel.UUID
	PartnerID      kernel.UUID
	ManagerID      kernel.UUID
	ProductID      kernel.UUID
	Quantity       int
	Cost           decimal.Decimal
	Status         order.Status
	CreatedDate    kernel.Date
	PrepaymentDate *kernel.Date
	CompletionDate *kernel.Date
	ProductionDate *kernel.Date
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID(),
		PartnerID:      o.PartnerID(),
		ManagerID:      o.ManagerID(),
		ProductID:      o.ProductID(),
		Quantity:       o.Quantity(),
		Cost:           o.Cost(),
		Status:         o.Status(),
		CreatedDate:    o.CreatedDate(),
		PrepaymentDate: o.PrepaymentDate(),
		CompletionDate: o.CompletionDate(),
		ProductionDate: o.ProductionDate(),
	}
}
