package product

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Component is one line of a product's bill of materials.
type Component struct {
	MaterialID      kernel.UUID
	QuantityPerUnit int
}

// Product is a manufactured catalog item. The workflow never mutates it.
//
// TypeID selects the yield coefficient; Param1 and Param2 are the positive
// shape parameters of the yield formula. Components may be empty, in which
// case production consumes the configured default material.
type Product struct {
	id         kernel.UUID
	name       string
	typeID     int
	param1     decimal.Decimal
	param2     decimal.Decimal
	components []Component

	guard guard.ConstructorGuard
}

// NewProduct creates a catalog product.
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), "Chair", 1,
//	    decimal.NewFromInt(2), decimal.NewFromInt(5),
//	    []product.Component{{MaterialID: oakID, QuantityPerUnit: 4}})
func NewProduct(
	id kernel.UUID,
	name string,
	typeID int,
	param1, param2 decimal.Decimal,
	components []Component,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setTypeID(typeID),
		p.setParams(param1, param2),
		p.setComponents(components),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) TypeID() int {
	return p.typeID
}

func (p *Product) Param1() decimal.Decimal {
	return p.param1
}

func (p *Product) Param2() decimal.Decimal {
	return p.param2
}

// Components returns a copy of the bill of materials.
func (p *Product) Components() []Component {
	out := make([]Component, len(p.components))
	copy(out, p.components)
	return out
}

// MaterialRequirements returns how much of each material producing quantity
// units consumes. Without components, fallbackMaterialID is consumed one
// unit per product unit. The result is sorted by material ID.
func (p *Product) MaterialRequirements(quantity int, fallbackMaterialID kernel.UUID) []Component {
	if len(p.components) == 0 {
		return []Component{{MaterialID: fallbackMaterialID, QuantityPerUnit: quantity}}
	}

	out := make([]Component, 0, len(p.components))
	for _, c := range p.components {
		out = append(out, Component{MaterialID: c.MaterialID, QuantityPerUnit: c.QuantityPerUnit * quantity})
	}
	sortComponents(out)
	return out
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product ID", err)
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setTypeID(typeID int) error {
	if typeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product type", fmt.Errorf("%d is not greater than 0", typeID))
	}
	p.typeID = typeID
	return nil
}

func (p *Product) setParams(param1, param2 decimal.Decimal) error {
	if !param1.IsPositive() || !param2.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("product parameters",
			fmt.Errorf("%s and %s must both be greater than 0", param1, param2))
	}
	p.param1 = param1
	p.param2 = param2
	return nil
}

func (p *Product) setComponents(components []Component) error {
	seen := make(map[kernel.UUID]struct{}, len(components))
	for _, c := range components {
		if err := c.MaterialID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("component material ID", err)
		}
		if c.QuantityPerUnit <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("component quantity",
				fmt.Errorf("%d is not greater than 0", c.QuantityPerUnit))
		}
		if _, ok := seen[c.MaterialID]; ok {
			return errs.NewValueIsInvalidErrorWithCause("components",
				fmt.Errorf("material %s is listed twice", c.MaterialID))
		}
		seen[c.MaterialID] = struct{}{}
	}

	p.components = make([]Component, len(components))
	copy(p.components, components)
	sortComponents(p.components)
	return nil
}

func sortComponents(components []Component) {
	slices.SortFunc(components, func(a, b Component) int {
		return a.MaterialID.Compare(b.MaterialID)
	})
}
