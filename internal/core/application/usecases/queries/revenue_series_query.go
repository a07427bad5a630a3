package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrRevenueSeriesQueryIsNotConstructed = errors.New(
		"RevenueSeriesQuery must be created via NewRevenueSeriesQuery constructor",
	)
)

// RevenueSeriesQuery buckets revenue by a time label derived from the period
// selector. Unlike the summary, the series spans ALL orders with no date
// filter; the dashboard has always shown the full history here.
type RevenueSeriesQuery struct {
	period string

	guard guard.ConstructorGuard
}

// NewRevenueSeriesQuery creates a revenue-series query for the given period
// selector. Unrecognized selectors fall back to year-month bucketing.
func NewRevenueSeriesQuery(period string) RevenueSeriesQuery {
	return RevenueSeriesQuery{period: period, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrRevenueSeriesQueryIsNotConstructed if validation fails.
func (q RevenueSeriesQuery) Validate() error {
	return q.guard.Validate(ErrRevenueSeriesQueryIsNotConstructed)
}

// Period returns the period selector.
func (q RevenueSeriesQuery) Period() string {
	return q.period
}

// RevenueSeriesQueryResponse is one bucket of the revenue series.
// Revenue is a float at this boundary; the chart consumes plain numbers.
type RevenueSeriesQueryResponse struct {
	Name    string
	Revenue float64
}
