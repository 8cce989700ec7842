package material

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a material has a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMaterialIsNotConstructed is returned when using an improperly initialized Material.
	ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")
)

// Material is a raw material held in the single logical warehouse.
// Its stock changes only through Reserve and Restock, which the inventory
// ledger pairs with a Movement inside one transaction.
//
// Business rules:
//   - Stock is a non-negative integer count of units
//   - MinQuantity is advisory and only drives low-stock alerts
//   - TypeID selects the defect rate used by the yield calculator
//   - SupplierID is optional and cleared when the supplier is deleted
type Material struct {
	id          kernel.UUID
	name        string
	typeID      int
	stock       int
	minQuantity int
	supplierID  *kernel.UUID

	guard guard.ConstructorGuard
}

// Snapshot is the persisted state of a Material.
type Snapshot struct {
	ID          kernel.UUID
	Name        string
	TypeID      int
	Stock       int
	MinQuantity int
	SupplierID  *kernel.UUID
}

// NewMaterial creates a material with the given opening stock.
//
// Example:
//
//	m, err := material.NewMaterial(kernel.NewUUID(), "Oak plank", 1, 500, 100, nil)
func NewMaterial(id kernel.UUID, name string, typeID, stock, minQuantity int, supplierID *kernel.UUID) (*Material, error) {
	return RestoreMaterial(Snapshot{
		ID:          id,
		Name:        name,
		TypeID:      typeID,
		Stock:       stock,
		MinQuantity: minQuantity,
		SupplierID:  supplierID,
	})
}

// RestoreMaterial rebuilds a material from storage.
func RestoreMaterial(s Snapshot) (*Material, error) {
	m := &Material{
		supplierID: s.SupplierID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(s.ID),
		m.setName(s.Name),
		m.setTypeID(s.TypeID),
		m.setStock(s.Stock),
		m.setMinQuantity(s.MinQuantity),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the material was created through a constructor.
func (m *Material) Validate() error {
	if m == nil {
		return ErrMaterialIsNotConstructed
	}
	return m.guard.Validate(ErrMaterialIsNotConstructed)
}

func (m *Material) Snapshot() Snapshot {
	return Snapshot{
		ID:          m.id,
		Name:        m.name,
		TypeID:      m.typeID,
		Stock:       m.stock,
		MinQuantity: m.minQuantity,
		SupplierID:  m.supplierID,
	}
}

func (m *Material) ID() kernel.UUID {
	return m.id
}

func (m *Material) Name() string {
	return m.name
}

func (m *Material) TypeID() int {
	return m.typeID
}

func (m *Material) Stock() int {
	return m.stock
}

func (m *Material) MinQuantity() int {
	return m.minQuantity
}

func (m *Material) SupplierID() *kernel.UUID {
	return m.supplierID
}

// IsBelowMinimum reports whether stock dropped under the advisory threshold.
func (m *Material) IsBelowMinimum() bool {
	return m.stock < m.minQuantity
}

// Reserve deducts quantity from stock.
//
// Returns an InsufficientStockError and leaves stock unchanged when
// quantity exceeds the stock on hand.
func (m *Material) Reserve(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if m.stock < quantity {
		return NewInsufficientStockError(m.id, quantity, m.stock)
	}

	m.stock -= quantity
	return nil
}

// Restock adds quantity to stock.
func (m *Material) Restock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	m.stock += quantity
	return nil
}

func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("material ID", err)
	}
	m.id = id
	return nil
}

func (m *Material) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Material) setTypeID(typeID int) error {
	if typeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("material type", fmt.Errorf("%d is not greater than 0", typeID))
	}
	m.typeID = typeID
	return nil
}

func (m *Material) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	m.stock = stock
	return nil
}

func (m *Material) setMinQuantity(minQuantity int) error {
	if minQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minimum quantity", fmt.Errorf("%d is negative", minQuantity))
	}
	m.minQuantity = minQuantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
