package material

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
)

// Supplier delivers materials. Deleting a supplier clears the reference on
// its materials instead of blocking.
type Supplier struct {
	id   kernel.UUID
	name string
}

func NewSupplier(id kernel.UUID, name string) (*Supplier, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(wrapRequired("supplier ID", id.Validate()), nameErr); err != nil {
		return nil, err
	}
	return &Supplier{id: id, name: name}, nil
}

func (s *Supplier) ID() kernel.UUID {
	return s.id
}

func (s *Supplier) Name() string {
	return s.name
}
