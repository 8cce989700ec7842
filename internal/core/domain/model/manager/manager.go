// Package manager holds the staff member responsible for an order. Orders
// reference a manager; nothing in the workflow mutates one.
package manager

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager constructor")
)

type Manager struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

func NewManager(id kernel.UUID, name string) (*Manager, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}

	var idErr error
	if err := id.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("manager ID", err)
	}

	if err := errors.Join(idErr, nameErr); err != nil {
		return nil, err
	}

	return &Manager{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (m *Manager) Validate() error {
	if m == nil {
		return ErrManagerIsNotConstructed
	}
	return m.guard.Validate(ErrManagerIsNotConstructed)
}

func (m *Manager) ID() kernel.UUID {
	return m.id
}

func (m *Manager) Name() string {
	return m.name
}
