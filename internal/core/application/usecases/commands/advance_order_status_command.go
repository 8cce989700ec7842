package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// AdvanceOrderStatusCommand applies the single next forward transition of
// an order: created -> prepaid -> in_production -> delivered -> completed.
type AdvanceOrderStatusCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(orderID kernel.UUID) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := requireID("order ID", orderID, &cmd.orderID); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}
	return cmd, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}
