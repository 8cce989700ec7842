package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetPartnerDiscountQueryIsNotConstructed = errors.New(
		"GetPartnerDiscountQuery must be created via NewGetPartnerDiscountQuery constructor",
	)
)

// GetPartnerDiscountQuery reports the discount a partner has earned through
// the cumulative quantity of its sales. The discount is informational and is
// never applied to order cost.
type GetPartnerDiscountQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPartnerDiscountQuery(partnerID kernel.UUID) (GetPartnerDiscountQuery, error) {
	q := GetPartnerDiscountQuery{guard: guard.NewConstructorGuard()}

	if err := requireID("partner ID", partnerID, &q.partnerID); err != nil {
		return GetPartnerDiscountQuery{}, err
	}
	return q, nil
}

func (q GetPartnerDiscountQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerDiscountQueryIsNotConstructed)
}

func (q GetPartnerDiscountQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

type GetPartnerDiscountQueryResponse struct {
	PartnerID          kernel.UUID
	CumulativeQuantity int64
	DiscountPercent    int
}
