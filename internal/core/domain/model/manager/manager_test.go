package manager_test

import (
	"testing"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/manager"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	id := kernel.NewUUID()

	m, err := manager.NewManager(id, "Irina")
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.True(t, m.ID().IsEqual(id))
	assert.Equal(t, "Irina", m.Name())

	_, err = manager.NewManager(kernel.UUID{}, "")
	require.ErrorIs(t, err, manager.ErrNameIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var required *errs.ValueIsRequiredError
	require.ErrorAs(t, err, &required)
	assert.Equal(t, "manager ID", required.ParamName)
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, required.Cause)

	var zero manager.Manager
	require.ErrorIs(t, zero.Validate(), manager.ErrManagerIsNotConstructed)
}
