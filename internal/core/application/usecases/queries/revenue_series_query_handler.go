package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueSeriesQueryHandler groups all orders by a period-derived time label
// and sums revenue per bucket.
type RevenueSeriesQueryHandler struct {
	db *gorm.DB
}

// NewRevenueSeriesQueryHandler creates a handler for the revenue series.
// Requires a GORM database connection for query execution.
func NewRevenueSeriesQueryHandler(db *gorm.DB) RevenueSeriesQueryHandler {
	return RevenueSeriesQueryHandler{db: db}
}

// Handle executes the bucketed aggregation. Buckets come back ordered by
// label ascending; a NULL sum is coerced to zero.
func (h RevenueSeriesQueryHandler) Handle(
	ctx context.Context,
	query RevenueSeriesQuery,
) ([]RevenueSeriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	series := make([]RevenueSeriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			to_char(created_at, ?) AS name,
			COALESCE(SUM(total_amount), 0)
		FROM orders
		GROUP BY name
		ORDER BY name
	`, periodLabelFormat(query.Period())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket RevenueSeriesQueryResponse
		var revenue decimal.Decimal

		if err = rows.Scan(&bucket.Name, &revenue); err != nil {
			return nil, err
		}

		bucket.Revenue = revenue.InexactFloat64()
		series = append(series, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}
