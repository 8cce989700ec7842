package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPrepaymentNotOverdue is returned when the timeout sweep tries to cancel
	// an order whose grace period has not elapsed.
	ErrPrepaymentNotOverdue = errors.New("prepayment is not overdue")
)

// Order is a partner's request to manufacture a quantity of one product.
// It is the aggregate root owning the order status and the lifecycle dates.
//
// Order follows these invariants:
//   - IDs of the order, partner, manager and product are valid
//   - Quantity and cost are positive and immutable
//   - prepaymentDate is nil while created and set once the order is prepaid;
//     an order cancelled from created keeps it nil
//   - completionDate is set if and only if the status is Completed
//   - Completed and Cancelled orders reject every further change
type Order struct {
	id        kernel.UUID
	partnerID kernel.UUID
	managerID kernel.UUID
	productID kernel.UUID

	// quantity is the number of product units ordered
	quantity int

	// cost is entered by the manager; discounts never alter it
	cost decimal.Decimal

	status Status

	createdDate    kernel.Date
	prepaymentDate *kernel.Date
	completionDate *kernel.Date

	// productionDate is the informational target date supplied at creation
	productionDate *kernel.Date

	isConstructed bool
}

// Snapshot is the full persisted state of an Order. Repositories build it
// from storage and hand it to RestoreOrder; Order.Snapshot goes the other way.
type Snapshot struct {
	ID             kernel.UUID
	PartnerID      kernel.UUID
	ManagerID      kernel.UUID
	ProductID      kernel.UUID
	Quantity       int
	Cost           decimal.Decimal
	Status         Status
	CreatedDate    kernel.Date
	PrepaymentDate *kernel.Date
	CompletionDate *kernel.Date
	ProductionDate *kernel.Date
}

// NewOrder creates an order in Created status dated today.
//
// Returns a joined validation error (errs.ErrValueIsInvalid / ErrValueIsRequired)
// when any identifier is missing, quantity is not positive or cost is not positive.
//
// Example:
//
//	today := kernel.Today(clock)
//	o, err := order.NewOrder(kernel.NewUUID(), partnerID, managerID, productID,
//	    100, decimal.NewFromInt(500), nil, today)
func NewOrder(
	id, partnerID, managerID, productID kernel.UUID,
	quantity int,
	cost decimal.Decimal,
	productionDate *kernel.Date,
	today kernel.Date,
) (*Order, error) {
	o := &Order{
		status:         Created,
		productionDate: productionDate,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setIDs(id, partnerID, managerID, productID),
		o.setQuantity(quantity),
		o.setCost(cost),
		o.setCreatedDate(today),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state, checking that the
// stored status and dates agree with each other.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:         s.Status,
		prepaymentDate: s.PrepaymentDate,
		completionDate: s.CompletionDate,
		productionDate: s.ProductionDate,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setIDs(s.ID, s.PartnerID, s.ManagerID, s.ProductID),
		o.setQuantity(s.Quantity),
		o.setCost(s.Cost),
		o.setCreatedDate(s.CreatedDate),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := o.validateDates(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Snapshot exports the current state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		PartnerID:      o.partnerID,
		ManagerID:      o.managerID,
		ProductID:      o.productID,
		Quantity:       o.quantity,
		Cost:           o.cost,
		Status:         o.status,
		CreatedDate:    o.createdDate,
		PrepaymentDate: o.prepaymentDate,
		CompletionDate: o.completionDate,
		ProductionDate: o.productionDate,
	}
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) PartnerID() kernel.UUID {
	return o.partnerID
}

func (o *Order) ManagerID() kernel.UUID {
	return o.managerID
}

func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) Cost() decimal.Decimal {
	return o.cost
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedDate() kernel.Date {
	return o.createdDate
}

// PrepaymentDate returns nil until the order has been prepaid.
func (o *Order) PrepaymentDate() *kernel.Date {
	return o.prepaymentDate
}

// CompletionDate returns nil unless the order is completed.
func (o *Order) CompletionDate() *kernel.Date {
	return o.completionDate
}

// ProductionDate returns the optional target date given at creation.
func (o *Order) ProductionDate() *kernel.Date {
	return o.productionDate
}

// NextStatus returns the status Advance would move to.
func (o *Order) NextStatus() (Status, error) {
	return o.status.Next()
}

// EntersProductionNext reports whether the next forward move is the one that
// consumes raw materials. Callers reserve stock in the same transaction.
func (o *Order) EntersProductionNext() bool {
	return o.status == Prepaid
}

// Advance applies the single next forward transition. See TransitionTo.
func (o *Order) Advance(today kernel.Date) (Status, error) {
	next, err := o.status.Next()
	if err != nil {
		return Unknown, err
	}

	if err = o.TransitionTo(next, today); err != nil {
		return Unknown, err
	}
	return next, nil
}

// TransitionTo moves the order to target if the forward table allows it.
//
// Side effects:
//   - Created -> Prepaid sets the prepayment date to today
//   - Delivered -> Completed sets the completion date to today
//
// Any other (from, to) pair returns a TransitionError and leaves the order untouched.
func (o *Order) TransitionTo(target Status, today kernel.Date) error {
	if err := today.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	switch newStatus {
	case Prepaid:
		o.prepaymentDate = today.Ptr()
	case Completed:
		o.completionDate = today.Ptr()
	default:
	}

	o.status = newStatus
	return nil
}

// Cancel performs a manual cancellation, allowed from Created or Prepaid only.
// Returns a CancellationError otherwise.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// IsPrepaymentOverdue reports whether the order is still waiting for
// prepayment more than grace after its creation day started. The day starts
// at midnight in now's location.
func (o *Order) IsPrepaymentOverdue(now time.Time, grace time.Duration) bool {
	if o.status != Created || o.prepaymentDate != nil {
		return false
	}
	return now.Sub(o.createdDate.StartIn(now.Location())) > grace
}

// CancelForTimeout is the sweep's forced cancellation. It bypasses the manual
// cancellation rule but only ever applies to an overdue Created order.
func (o *Order) CancelForTimeout(now time.Time, grace time.Duration) error {
	if o.status != Created {
		return NewCancellationError(o.status)
	}
	if !o.IsPrepaymentOverdue(now, grace) {
		return ErrPrepaymentNotOverdue
	}

	o.status = Cancelled
	return nil
}

func (o *Order) setIDs(id, partnerID, managerID, productID kernel.UUID) error {
	if err := errors.Join(
		wrapRequired("order ID", id.Validate()),
		wrapRequired("partner ID", partnerID.Validate()),
		wrapRequired("manager ID", managerID.Validate()),
		wrapRequired("product ID", productID.Validate()),
	); err != nil {
		return err
	}

	o.id = id
	o.partnerID = partnerID
	o.managerID = managerID
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setCost(cost decimal.Decimal) error {
	if !cost.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid", fmt.Errorf("%s is not greater than 0", cost))
	}
	o.cost = cost
	return nil
}

func (o *Order) setCreatedDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return wrapRequired("created date", err)
	}
	o.createdDate = date
	return nil
}

func (o *Order) validateDates() error {
	switch {
	case o.status == Created && o.prepaymentDate != nil:
		return errs.NewValueIsInvalidErrorWithCause("prepayment date is invalid",
			errors.New("created order cannot have a prepayment date"))
	case o.status != Created && o.status != Cancelled && o.prepaymentDate == nil:
		return errs.NewValueIsInvalidErrorWithCause("prepayment date is invalid",
			fmt.Errorf("%s order must have a prepayment date", o.status))
	case o.status == Completed && o.completionDate == nil:
		return errs.NewValueIsInvalidErrorWithCause("completion date is invalid",
			errors.New("completed order must have a completion date"))
	case o.status != Completed && o.completionDate != nil:
		return errs.NewValueIsInvalidErrorWithCause("completion date is invalid",
			fmt.Errorf("%s order cannot have a completion date", o.status))
	default:
		return nil
	}
}

func wrapRequired(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(name, err)
}
