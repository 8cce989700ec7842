package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrRecordSaleCommandIsNotConstructed = errors.New(
		"RecordSaleCommand must be created via NewRecordSaleCommand constructor",
	)
)

// RecordSaleCommand appends a sale to a partner's history, which drives the
// partner's discount tier.
type RecordSaleCommand struct {
	saleID    kernel.UUID
	partnerID kernel.UUID
	productID kernel.UUID
	quantity  int
	saleDate  kernel.Date

	guard guard.ConstructorGuard
}

func NewRecordSaleCommand(
	saleID, partnerID, productID kernel.UUID,
	quantity int,
	saleDate kernel.Date,
) (RecordSaleCommand, error) {
	cmd := RecordSaleCommand{
		quantity: quantity,
		saleDate: saleDate,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("sale ID", saleID, &cmd.saleID),
		requireID("partner ID", partnerID, &cmd.partnerID),
		requireID("product ID", productID, &cmd.productID),
	); err != nil {
		return RecordSaleCommand{}, err
	}
	return cmd, nil
}

func (c RecordSaleCommand) Validate() error {
	return c.guard.Validate(ErrRecordSaleCommandIsNotConstructed)
}

func (c RecordSaleCommand) SaleID() kernel.UUID {
	return c.saleID
}

func (c RecordSaleCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c RecordSaleCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c RecordSaleCommand) Quantity() int {
	return c.quantity
}

func (c RecordSaleCommand) SaleDate() kernel.Date {
	return c.saleDate
}
