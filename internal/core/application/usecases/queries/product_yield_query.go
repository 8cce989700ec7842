package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrProductYieldQueryIsNotConstructed = errors.New(
		"ProductYieldQuery must be created via NewProductYieldQuery constructor",
	)
)

// ProductYieldQuery runs the yield calculation for a catalog product made
// from a stored material, using the product's type and parameters and the
// material's type.
type ProductYieldQuery struct {
	productID     kernel.UUID
	materialID    kernel.UUID
	totalMaterial decimal.Decimal

	guard guard.ConstructorGuard
}

func NewProductYieldQuery(productID, materialID kernel.UUID, totalMaterial decimal.Decimal) (ProductYieldQuery, error) {
	q := ProductYieldQuery{
		totalMaterial: totalMaterial,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("product ID", productID, &q.productID),
		requireID("material ID", materialID, &q.materialID),
	); err != nil {
		return ProductYieldQuery{}, err
	}
	return q, nil
}

func (q ProductYieldQuery) Validate() error {
	return q.guard.Validate(ErrProductYieldQueryIsNotConstructed)
}

func (q ProductYieldQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q ProductYieldQuery) MaterialID() kernel.UUID {
	return q.materialID
}
