package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRegisterProductCommandIsNotConstructed = errors.New(
		"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
	)
)

// RegisterProductCommand adds a catalog product with its yield parameters
// and optional bill of materials.
type RegisterProductCommand struct {
	productID  kernel.UUID
	name       string
	typeID     int
	param1     decimal.Decimal
	param2     decimal.Decimal
	components []product.Component

	guard guard.ConstructorGuard
}

func NewRegisterProductCommand(
	productID kernel.UUID,
	name string,
	typeID int,
	param1, param2 decimal.Decimal,
	components []product.Component,
) (RegisterProductCommand, error) {
	cmd := RegisterProductCommand{
		name:       name,
		typeID:     typeID,
		param1:     param1,
		param2:     param2,
		components: components,
		guard:      guard.NewConstructorGuard(),
	}

	if err := requireID("product ID", productID, &cmd.productID); err != nil {
		return RegisterProductCommand{}, err
	}
	return cmd, nil
}

func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

func (c RegisterProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c RegisterProductCommand) Name() string {
	return c.name
}

func (c RegisterProductCommand) TypeID() int {
	return c.typeID
}

func (c RegisterProductCommand) Param1() decimal.Decimal {
	return c.param1
}

func (c RegisterProductCommand) Param2() decimal.Decimal {
	return c.param2
}

func (c RegisterProductCommand) Components() []product.Component {
	return c.components
}
