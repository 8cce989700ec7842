package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, partnerID, managerID, productID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	target, _ := kernel.ParseDate("2026-11-01")

	cmd, err := commands.NewCreateOrderCommand(id, partnerID, managerID, productID, 100, decimal.NewFromInt(500), &target)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.Equal(t, managerID, cmd.ManagerID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 100, cmd.Quantity())
	assert.True(t, cmd.Cost().Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "2026-11-01", cmd.ProductionDate().String())
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		0, decimal.NewFromInt(500), nil)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "quantity")
}

func TestNewCreateOrderCommand_InvalidCost(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		1, decimal.RequireFromString("-0.01"), nil)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "cost")
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
		1, decimal.NewFromInt(1), nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "order ID")
	assert.Contains(t, err.Error(), "manager ID")
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	require.ErrorIs(t, commands.AdvanceOrderStatusCommand{}.Validate(), commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
	require.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	require.ErrorIs(t, commands.SweepExpiredOrdersCommand{}.Validate(), commands.ErrSweepExpiredOrdersCommandIsNotConstructed)
	require.ErrorIs(t, commands.RestockMaterialCommand{}.Validate(), commands.ErrRestockMaterialCommandIsNotConstructed)
	require.ErrorIs(t, commands.RecordSaleCommand{}.Validate(), commands.ErrRecordSaleCommandIsNotConstructed)

	sweep := commands.NewSweepExpiredOrdersCommand()
	require.NoError(t, sweep.Validate())
}

func TestNewRestockMaterialCommand(t *testing.T) {
	_, err := commands.NewRestockMaterialCommand(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewRestockMaterialCommand(kernel.NewUUID(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, cmd.Quantity())
}
