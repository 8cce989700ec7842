package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrSweepExpiredOrdersCommandIsNotConstructed = errors.New(
		"SweepExpiredOrdersCommand must be created via NewSweepExpiredOrdersCommand constructor",
	)
)

// SweepExpiredOrdersCommand runs one pass of the prepayment timeout sweep.
// The scheduler issues it periodically; operators may issue it on demand.
// Running it twice in a row is harmless.
type SweepExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpiredOrdersCommand creates a parameterless sweep command.
func NewSweepExpiredOrdersCommand() SweepExpiredOrdersCommand {
	return SweepExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c SweepExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredOrdersCommandIsNotConstructed)
}
