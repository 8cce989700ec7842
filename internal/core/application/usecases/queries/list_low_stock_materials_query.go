package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/pkg/guard"
)

var (
	ErrListLowStockMaterialsQueryIsNotConstructed = errors.New(
		"ListLowStockMaterialsQuery must be created via NewListLowStockMaterialsQuery constructor",
	)
)

// ListLowStockMaterialsQuery lists materials whose stock fell under their
// advisory minimum. Nothing blocks on the minimum; it only drives alerts.
type ListLowStockMaterialsQuery struct {
	guard guard.ConstructorGuard
}

func NewListLowStockMaterialsQuery() ListLowStockMaterialsQuery {
	return ListLowStockMaterialsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListLowStockMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrListLowStockMaterialsQueryIsNotConstructed)
}

type MaterialResponse struct {
	ID          kernel.UUID
	Name        string
	TypeID      int
	Stock       int
	MinQuantity int
	SupplierID  *kernel.UUID
}

func newMaterialResponse(m *material.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID(),
		Name:        m.Name(),
		TypeID:      m.TypeID(),
		Stock:       m.Stock(),
		MinQuantity: m.MinQuantity(),
		SupplierID:  m.SupplierID(),
	}
}
