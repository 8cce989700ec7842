package queries

import (
	"errors"

	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrComputeYieldQueryIsNotConstructed = errors.New(
		"ComputeYieldQuery must be created via NewComputeYieldQuery constructor",
	)
)

// ComputeYieldQuery asks how many units of a product type an amount of raw
// material of a given type yields. The inputs are checked by the yield
// calculator, which reports services.ErrYieldInputInvalid.
type ComputeYieldQuery struct {
	productType   int
	materialType  int
	totalMaterial decimal.Decimal
	param1        decimal.Decimal
	param2        decimal.Decimal

	guard guard.ConstructorGuard
}

func NewComputeYieldQuery(productType, materialType int, totalMaterial, param1, param2 decimal.Decimal) ComputeYieldQuery {
	return ComputeYieldQuery{
		productType:   productType,
		materialType:  materialType,
		totalMaterial: totalMaterial,
		param1:        param1,
		param2:        param2,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ComputeYieldQuery) Validate() error {
	return q.guard.Validate(ErrComputeYieldQueryIsNotConstructed)
}

type YieldResponse struct {
	ProductType  int
	MaterialType int
	Units        int64
}
