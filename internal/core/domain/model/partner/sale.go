package partner

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// Sale is one historical sale to a partner. Summed per partner, sale
// quantities feed the discount tiers.
type Sale struct {
	id        kernel.UUID
	partnerID kernel.UUID
	productID kernel.UUID
	quantity  int
	saleDate  kernel.Date
}

// NewSale validates and creates a sale record.
func NewSale(id, partnerID, productID kernel.UUID, quantity int, saleDate kernel.Date) (*Sale, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(
		required("sale ID", id.Validate()),
		required("partner ID", partnerID.Validate()),
		required("product ID", productID.Validate()),
		required("sale date", saleDate.Validate()),
		quantityErr,
	); err != nil {
		return nil, err
	}

	return &Sale{
		id:        id,
		partnerID: partnerID,
		productID: productID,
		quantity:  quantity,
		saleDate:  saleDate,
	}, nil
}

func (s *Sale) ID() kernel.UUID {
	return s.id
}

func (s *Sale) PartnerID() kernel.UUID {
	return s.partnerID
}

func (s *Sale) ProductID() kernel.UUID {
	return s.productID
}

func (s *Sale) Quantity() int {
	return s.quantity
}

func (s *Sale) SaleDate() kernel.Date {
	return s.saleDate
}

func required(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(name, err)
}
