package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves the most recent orders for the admin order list.
// Capped at 500 rows, newest first; there is no pagination beyond the cap.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve the recent-orders list.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse represents one order row in the read model.
type ListOrdersQueryResponse struct {
	ID           int64
	CreatedAt    time.Time
	MobileNumber string
	TotalAmount  decimal.Decimal
	Status       order.Status
	Items        []order.Item
}
