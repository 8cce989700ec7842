package material

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// MovementKind tells whether a movement took stock out or brought it in.
type MovementKind string

const (
	// Outgoing is material consumed by an order entering production.
	Outgoing MovementKind = "outgoing"
	// Incoming is a restock delivery.
	Incoming MovementKind = "incoming"
)

func (k MovementKind) Validate() error {
	switch k {
	case Outgoing, Incoming:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("movement kind", fmt.Errorf("%q is not a valid kind", string(k)))
	}
}

// Movement is one warehouse record. It is written exactly once per stock
// change and never mutated afterwards, so it exposes no setters.
type Movement struct {
	id         kernel.UUID
	materialID *kernel.UUID
	productID  *kernel.UUID
	quantity   int
	kind       MovementKind
	occurredAt time.Time
}

// MovementSnapshot is the persisted state of a Movement.
type MovementSnapshot struct {
	ID         kernel.UUID
	MaterialID *kernel.UUID
	ProductID  *kernel.UUID
	Quantity   int
	Kind       MovementKind
	OccurredAt time.Time
}

// NewOutgoingMovement records material consumed for a product.
func NewOutgoingMovement(id, materialID, productID kernel.UUID, quantity int, at time.Time) (*Movement, error) {
	return RestoreMovement(MovementSnapshot{
		ID:         id,
		MaterialID: &materialID,
		ProductID:  &productID,
		Quantity:   quantity,
		Kind:       Outgoing,
		OccurredAt: at,
	})
}

// NewIncomingMovement records a restock of a material.
func NewIncomingMovement(id, materialID kernel.UUID, quantity int, at time.Time) (*Movement, error) {
	return RestoreMovement(MovementSnapshot{
		ID:         id,
		MaterialID: &materialID,
		Quantity:   quantity,
		Kind:       Incoming,
		OccurredAt: at,
	})
}

// RestoreMovement rebuilds a movement from storage. Material and product
// references are optional; incoming movements carry no product.
func RestoreMovement(s MovementSnapshot) (*Movement, error) {
	var atErr error
	if s.OccurredAt.IsZero() {
		atErr = errs.NewValueIsRequiredError("movement time")
	}

	if err := errors.Join(
		wrapRequired("movement ID", s.ID.Validate()),
		optionalID("material ID", s.MaterialID),
		optionalID("product ID", s.ProductID),
		validateQuantity(s.Quantity),
		s.Kind.Validate(),
		atErr,
	); err != nil {
		return nil, err
	}

	return &Movement{
		id:         s.ID,
		materialID: s.MaterialID,
		productID:  s.ProductID,
		quantity:   s.Quantity,
		kind:       s.Kind,
		occurredAt: s.OccurredAt.UTC(),
	}, nil
}

func (mv *Movement) Snapshot() MovementSnapshot {
	return MovementSnapshot{
		ID:         mv.id,
		MaterialID: mv.materialID,
		ProductID:  mv.productID,
		Quantity:   mv.quantity,
		Kind:       mv.kind,
		OccurredAt: mv.occurredAt,
	}
}

func (mv *Movement) ID() kernel.UUID {
	return mv.id
}

func (mv *Movement) MaterialID() *kernel.UUID {
	return mv.materialID
}

func (mv *Movement) ProductID() *kernel.UUID {
	return mv.productID
}

func (mv *Movement) Quantity() int {
	return mv.quantity
}

func (mv *Movement) Kind() MovementKind {
	return mv.kind
}

func (mv *Movement) OccurredAt() time.Time {
	return mv.occurredAt
}

func optionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return wrapRequired(name, id.Validate())
}

func wrapRequired(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(name, err)
}
