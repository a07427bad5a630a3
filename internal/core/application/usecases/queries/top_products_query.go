package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrTopProductsQueryIsNotConstructed = errors.New(
		"TopProductsQuery must be created via NewTopProductsQuery constructor",
	)
)

// topProductsLimit is the number of products shown on the dashboard.
const topProductsLimit = 5

// TopProductsQuery ranks products by units sold across the entire order
// history. Quantities and revenue are accumulated from every order's item
// lines; there is no date filter and no persisted aggregate, so this is a
// full scan and only viable at small volumes.
type TopProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewTopProductsQuery creates a query to rank products by units sold.
func NewTopProductsQuery() TopProductsQuery {
	return TopProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrTopProductsQueryIsNotConstructed if validation fails.
func (q TopProductsQuery) Validate() error {
	return q.guard.Validate(ErrTopProductsQueryIsNotConstructed)
}

// TopProductsQueryResponse is one ranked product: units sold and the revenue
// those units brought in (quantity times unit price, summed).
type TopProductsQueryResponse struct {
	Name    string
	Sales   int
	Revenue float64
}
