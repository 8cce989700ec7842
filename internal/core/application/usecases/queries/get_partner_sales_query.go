package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetPartnerSalesQueryIsNotConstructed = errors.New(
		"GetPartnerSalesQuery must be created via NewGetPartnerSalesQuery constructor",
	)
)

// GetPartnerSalesQuery lists a partner's sales history, most recent first.
type GetPartnerSalesQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPartnerSalesQuery(partnerID kernel.UUID) (GetPartnerSalesQuery, error) {
	q := GetPartnerSalesQuery{guard: guard.NewConstructorGuard()}

	if err := requireID("partner ID", partnerID, &q.partnerID); err != nil {
		return GetPartnerSalesQuery{}, err
	}
	return q, nil
}

func (q GetPartnerSalesQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerSalesQueryIsNotConstructed)
}

func (q GetPartnerSalesQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// SaleResponse is one row of the sales history. DiscountPercent is the
// partner's current discount, repeated on each row.
type SaleResponse struct {
	SaleID          kernel.UUID
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	SaleDate        kernel.Date
	DiscountPercent int
}
