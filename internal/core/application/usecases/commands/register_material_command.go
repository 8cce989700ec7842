package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrRegisterMaterialCommandIsNotConstructed = errors.New(
		"RegisterMaterialCommand must be created via NewRegisterMaterialCommand constructor",
	)
)

// RegisterMaterialCommand adds a material with zero stock. Opening stock is
// brought in with RestockMaterialCommand so it appears in the movement log.
// A supplier given by ID is registered on the fly when supplierName is set.
type RegisterMaterialCommand struct {
	materialID   kernel.UUID
	name         string
	typeID       int
	minQuantity  int
	supplierID   *kernel.UUID
	supplierName string

	guard guard.ConstructorGuard
}

func NewRegisterMaterialCommand(
	materialID kernel.UUID,
	name string,
	typeID, minQuantity int,
	supplierID *kernel.UUID,
	supplierName string,
) (RegisterMaterialCommand, error) {
	cmd := RegisterMaterialCommand{
		name:         name,
		typeID:       typeID,
		minQuantity:  minQuantity,
		supplierID:   supplierID,
		supplierName: supplierName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := requireID("material ID", materialID, &cmd.materialID); err != nil {
		return RegisterMaterialCommand{}, err
	}
	return cmd, nil
}

func (c RegisterMaterialCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMaterialCommandIsNotConstructed)
}

func (c RegisterMaterialCommand) MaterialID() kernel.UUID {
	return c.materialID
}

func (c RegisterMaterialCommand) Name() string {
	return c.name
}

func (c RegisterMaterialCommand) TypeID() int {
	return c.typeID
}

func (c RegisterMaterialCommand) MinQuantity() int {
	return c.minQuantity
}

func (c RegisterMaterialCommand) SupplierID() *kernel.UUID {
	return c.supplierID
}

func (c RegisterMaterialCommand) SupplierName() string {
	return c.supplierName
}
