package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrRestockMaterialCommandIsNotConstructed = errors.New(
		"RestockMaterialCommand must be created via NewRestockMaterialCommand constructor",
	)
)

// RestockMaterialCommand records a delivery of material into the warehouse.
type RestockMaterialCommand struct {
	materialID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

func NewRestockMaterialCommand(materialID kernel.UUID, quantity int) (RestockMaterialCommand, error) {
	cmd := RestockMaterialCommand{guard: guard.NewConstructorGuard()}

	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(
		requireID("material ID", materialID, &cmd.materialID),
		quantityErr,
	); err != nil {
		return RestockMaterialCommand{}, err
	}

	cmd.quantity = quantity
	return cmd, nil
}

func (c RestockMaterialCommand) Validate() error {
	return c.guard.Validate(ErrRestockMaterialCommandIsNotConstructed)
}

func (c RestockMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c RestockMaterialCommand) Quantity() int {
	return c.quantity
}
