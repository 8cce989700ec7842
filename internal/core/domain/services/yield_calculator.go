package services

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrYieldInputInvalid is returned for an unknown product or material type,
// or a non-positive material amount or product parameter.
var ErrYieldInputInvalid = errors.New("yield input is invalid")

// DefaultProductCoefficients maps product type to its material-per-unit coefficient.
func DefaultProductCoefficients() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		1: decimal.RequireFromString("1.5"),
		2: decimal.RequireFromString("2.0"),
	}
}

// DefaultMaterialDefectRates maps material type to the fraction lost to defects.
func DefaultMaterialDefectRates() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		1: decimal.RequireFromString("0.10"),
		2: decimal.RequireFromString("0.20"),
	}
}

// YieldCalculator computes
//
//	floor(totalMaterial * (1 - defectRate) / (param1 * param2 * coefficient))
//
// with exact decimal arithmetic, so values like 900/15 floor to 60 and never
// to 59 through binary rounding.
type YieldCalculator struct {
	coefficients map[int]decimal.Decimal
	defectRates  map[int]decimal.Decimal
}

// NewYieldCalculator validates the lookup tables. Coefficients must be
// positive and defect rates must lie in [0, 1).
func NewYieldCalculator(coefficients, defectRates map[int]decimal.Decimal) (YieldCalculator, error) {
	if len(coefficients) == 0 || len(defectRates) == 0 {
		return YieldCalculator{}, errs.NewValueIsRequiredError("yield tables")
	}

	one := decimal.NewFromInt(1)
	for typeID, c := range coefficients {
		if !c.IsPositive() {
			return YieldCalculator{}, errs.NewValueIsInvalidErrorWithCause("product coefficient",
				fmt.Errorf("type %d: %s is not greater than 0", typeID, c))
		}
	}
	for typeID, r := range defectRates {
		if r.IsNegative() || r.GreaterThanOrEqual(one) {
			return YieldCalculator{}, errs.NewValueIsOutOfRangeErrorWithCause("defect rate", r, 0, 1,
				fmt.Errorf("type %d: rate must be below 1", typeID))
		}
	}

	return YieldCalculator{
		coefficients: maps.Clone(coefficients),
		defectRates:  maps.Clone(defectRates),
	}, nil
}

// DefaultYieldCalculator uses the two-entry reference tables.
func DefaultYieldCalculator() YieldCalculator {
	c, err := NewYieldCalculator(DefaultProductCoefficients(), DefaultMaterialDefectRates())
	if err != nil {
		panic(err)
	}
	return c
}

// Compute returns the whole number of product units totalMaterial yields.
//
// Example:
//
//	units, err := calc.Compute(1, 1, decimal.NewFromInt(1000), decimal.NewFromInt(2), decimal.NewFromInt(5))
//	// units == 60
func (c YieldCalculator) Compute(productType, materialType int, totalMaterial, param1, param2 decimal.Decimal) (int64, error) {
	coefficient, ok := c.coefficients[productType]
	if !ok {
		return 0, fmt.Errorf("%w: unknown product type %d", ErrYieldInputInvalid, productType)
	}
	defectRate, ok := c.defectRates[materialType]
	if !ok {
		return 0, fmt.Errorf("%w: unknown material type %d", ErrYieldInputInvalid, materialType)
	}
	if !totalMaterial.IsPositive() || !param1.IsPositive() || !param2.IsPositive() {
		return 0, fmt.Errorf("%w: material amount and parameters must be greater than 0", ErrYieldInputInvalid)
	}

	perUnit := param1.Mul(param2).Mul(coefficient)
	usable := totalMaterial.Mul(decimal.NewFromInt(1).Sub(defectRate))

	units, _ := usable.QuoRem(perUnit, 0)
	return units.IntPart(), nil
}

// ProductTypes lists the recognized product types in ascending order.
func (c YieldCalculator) ProductTypes() []int {
	return slices.Sorted(maps.Keys(c.coefficients))
}

// MaterialTypes lists the recognized material types in ascending order.
func (c YieldCalculator) MaterialTypes() []int {
	return slices.Sorted(maps.Keys(c.defectRates))
}

// ParseRateTable parses "1:1.5,2:2.0" into a type-to-value table.
func ParseRateTable(s string) (map[int]decimal.Decimal, error) {
	table := make(map[int]decimal.Decimal)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, value, found := strings.Cut(entry, ":")
		if !found {
			return nil, errs.NewValueIsInvalidErrorWithCause("rate table", fmt.Errorf("entry %q has no ':'", entry))
		}

		typeID, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("rate table", fmt.Errorf("entry %q: %w", entry, err))
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("rate table", fmt.Errorf("entry %q: %w", entry, err))
		}

		table[typeID] = rate
	}

	if len(table) == 0 {
		return nil, errs.NewValueIsRequiredError("rate table")
	}
	return table, nil
}
