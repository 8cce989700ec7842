package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrRegisterManagerCommandIsNotConstructed = errors.New(
		"RegisterManagerCommand must be created via NewRegisterManagerCommand constructor",
	)
)

// RegisterManagerCommand adds a manager orders can be assigned to.
type RegisterManagerCommand struct {
	managerID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

func NewRegisterManagerCommand(managerID kernel.UUID, name string) (RegisterManagerCommand, error) {
	cmd := RegisterManagerCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := requireID("manager ID", managerID, &cmd.managerID); err != nil {
		return RegisterManagerCommand{}, err
	}
	return cmd, nil
}

func (c RegisterManagerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterManagerCommandIsNotConstructed)
}

func (c RegisterManagerCommand) ManagerID() kernel.UUID {
	return c.managerID
}

func (c RegisterManagerCommand) Name() string {
	return c.name
}
