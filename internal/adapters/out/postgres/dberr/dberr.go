// Package dberr maps gorm errors onto the application's error taxonomy.
// The gorm connection must be opened with TranslateError enabled so driver
// constraint violations surface as gorm sentinels.
package dberr

import (
	"errors"

	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap classifies err raised while running operation. Constraint violations
// become domain errors, everything else is an infrastructure failure.
func Wrap(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewObjectNotFoundErrorWithCause("reference", operation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewValueIsInvalidErrorWithCause(operation, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errs.NewValueIsInvalidErrorWithCause(operation, err)
	default:
		return errs.NewInfrastructureError(operation, err)
	}
}
