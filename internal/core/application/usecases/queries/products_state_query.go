package queries

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrProductsStateQueryIsNotConstructed = errors.New(
		"ProductsStateQuery must be created via NewProductsStateQuery constructor",
	)
)

// ProductsStateQuery retrieves every product flattened for the admin panel:
// derived variants, max price and the enabled flag.
type ProductsStateQuery struct {
	guard guard.ConstructorGuard
}

// NewProductsStateQuery creates a query to retrieve the full product list
// with derived state.
func NewProductsStateQuery() ProductsStateQuery {
	return ProductsStateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrProductsStateQueryIsNotConstructed if validation fails.
func (q ProductsStateQuery) Validate() error {
	return q.guard.Validate(ErrProductsStateQueryIsNotConstructed)
}

// ProductsStateQueryResponse is one product in the flattened view. Variants
// and MaxPrice are recomputed from the price/packing slots on every read.
type ProductsStateQueryResponse struct {
	ID            int64
	ItemName      string
	Category      string
	Description   string
	ImageSrc      string
	Variants      []product.Variant
	MaxPrice      decimal.Decimal
	ShelfLifeDays int
	LeadTimeDays  int
	IsEnabled     bool
}
