package ports

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate and returns its generated
	// identity.
	Add(ctx context.Context, aggregate *product.Product) (int64, error)

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its identity.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// Delete permanently removes a product and its dependent kitchen-prep
	// variant rows. Returns an ObjectNotFoundError when no such product
	// exists.
	Delete(ctx context.Context, id int64) error

	// SetAllEnabled sets every product's enabled flag to the given value
	// and returns the number of products affected.
	SetAllEnabled(ctx context.Context, enabled bool) (int64, error)
}
