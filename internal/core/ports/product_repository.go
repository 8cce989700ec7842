package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/product"
)

// ProductRepository gives read access to the product catalog. Add exists for
// seeding; the workflow itself never writes products.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
