package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/partner"
)

// PartnerRepository gives access to partners and their sales history.
type PartnerRepository interface {
	Add(ctx context.Context, p *partner.Partner) error
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// AddSale records a sale. The partner and product must exist.
	AddSale(ctx context.Context, s *partner.Sale) error

	// CumulativeSaleQuantity sums the quantity of every sale of the partner.
	// A partner without sales yields 0.
	CumulativeSaleQuantity(ctx context.Context, partnerID kernel.UUID) (int64, error)

	// ListSales returns the partner's sales, most recent first.
	ListSales(ctx context.Context, partnerID kernel.UUID) ([]*partner.Sale, error)
}
