package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a partner's request to manufacture a product.
// The caller chooses the order ID so it can report it back without a read.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, partnerID, managerID, productID,
//	    100, decimal.NewFromInt(500), nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	partnerID      kernel.UUID
	managerID      kernel.UUID
	productID      kernel.UUID
	quantity       int
	cost           decimal.Decimal
	productionDate *kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers, a positive quantity and a
// positive cost. productionDate is optional.
func NewCreateOrderCommand(
	orderID, partnerID, managerID, productID kernel.UUID,
	quantity int,
	cost decimal.Decimal,
	productionDate *kernel.Date,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		productionDate: productionDate,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("order ID", orderID, &cmd.orderID),
		requireID("partner ID", partnerID, &cmd.partnerID),
		requireID("manager ID", managerID, &cmd.managerID),
		requireID("product ID", productID, &cmd.productID),
		cmd.setQuantity(quantity),
		cmd.setCost(cost),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c CreateOrderCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c CreateOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c CreateOrderCommand) Cost() decimal.Decimal {
	return c.cost
}

func (c CreateOrderCommand) ProductionDate() *kernel.Date {
	return c.productionDate
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setCost(cost decimal.Decimal) error {
	if !cost.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid", fmt.Errorf("%s is not greater than 0", cost))
	}

	c.cost = cost
	return nil
}

// requireID stores id into dst when it is valid.
func requireID(name string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	*dst = id
	return nil
}
