package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/material"
	"orderflow/internal/pkg/guard"
)

var (
	ErrListMaterialMovementsQueryIsNotConstructed = errors.New(
		"ListMaterialMovementsQuery must be created via NewListMaterialMovementsQuery constructor",
	)
)

// ListMaterialMovementsQuery returns the warehouse log of one material,
// oldest first.
type ListMaterialMovementsQuery struct {
	materialID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMaterialMovementsQuery(materialID kernel.UUID) (ListMaterialMovementsQuery, error) {
	q := ListMaterialMovementsQuery{guard: guard.NewConstructorGuard()}

	if err := requireID("material ID", materialID, &q.materialID); err != nil {
		return ListMaterialMovementsQuery{}, err
	}
	return q, nil
}

func (q ListMaterialMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListMaterialMovementsQueryIsNotConstructed)
}

func (q ListMaterialMovementsQuery) MaterialID() kernel.UUID {
	return q.materialID
}

// MovementResponse is one warehouse log entry. ProductID is set on outgoing
// movements only.
type MovementResponse struct {
	ID         kernel.UUID
	MaterialID kernel.UUID
	ProductID  *kernel.UUID
	Quantity   int
	Kind       material.MovementKind
	OccurredAt time.Time
}
