package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrRegisterPartnerCommandIsNotConstructed = errors.New(
		"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
	)
)

// RegisterPartnerCommand adds a partner to the reference data. Email is
// optional; without it the partner receives no notifications.
type RegisterPartnerCommand struct {
	partnerID kernel.UUID
	name      string
	email     *string

	guard guard.ConstructorGuard
}

func NewRegisterPartnerCommand(partnerID kernel.UUID, name string, email *string) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := requireID("partner ID", partnerID, &cmd.partnerID); err != nil {
		return RegisterPartnerCommand{}, err
	}
	return cmd, nil
}

func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c RegisterPartnerCommand) Name() string {
	return c.name
}

func (c RegisterPartnerCommand) Email() *string {
	return c.email
}
