package queries

import (
	"errors"

	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrDashboardSummaryQueryIsNotConstructed = errors.New(
		"DashboardSummaryQuery must be created via NewDashboardSummaryQuery constructor",
	)
)

// DashboardSummaryQuery computes total revenue, order count and distinct
// customer count over orders created on or after the period cutoff.
type DashboardSummaryQuery struct {
	period string

	guard guard.ConstructorGuard
}

// NewDashboardSummaryQuery creates a summary query for the given period
// selector. Unrecognized selectors fall back to the monthly window, so no
// validation is applied to the value itself.
func NewDashboardSummaryQuery(period string) DashboardSummaryQuery {
	return DashboardSummaryQuery{period: period, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrDashboardSummaryQueryIsNotConstructed if validation fails.
func (q DashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrDashboardSummaryQueryIsNotConstructed)
}

// Period returns the period selector.
func (q DashboardSummaryQuery) Period() string {
	return q.period
}

// DashboardSummaryQueryResponse holds the aggregated dashboard numbers.
type DashboardSummaryQueryResponse struct {
	TotalRevenue   decimal.Decimal
	TotalOrders    int64
	TotalCustomers int64
}
