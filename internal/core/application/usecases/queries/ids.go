package queries

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

func requireID(name string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	*dst = id
	return nil
}
