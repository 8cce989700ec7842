package material

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is the sentinel for a reservation larger than the
// stock on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError details a rejected reservation so callers can prompt
// for restocking.
type InsufficientStockError struct {
	MaterialID kernel.UUID
	Requested  int
	Available  int
}

func NewInsufficientStockError(materialID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		MaterialID: materialID,
		Requested:  requested,
		Available:  available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: material %s has %d, requested %d",
		ErrInsufficientStock, e.MaterialID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
