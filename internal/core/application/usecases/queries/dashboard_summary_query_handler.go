package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardSummaryQueryHandler aggregates revenue, order count and distinct
// customers over the selected period, relative to current UTC time at call.
type DashboardSummaryQueryHandler struct {
	db *gorm.DB
}

// NewDashboardSummaryQueryHandler creates a handler for the dashboard
// summary. Requires a GORM database connection for query execution.
func NewDashboardSummaryQueryHandler(db *gorm.DB) DashboardSummaryQueryHandler {
	return DashboardSummaryQueryHandler{db: db}
}

// Handle executes the aggregation over orders created on or after the
// period cutoff. All three numbers come back in a single statement;
// revenue is zero, not NULL, when no rows match.
func (h DashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query DashboardSummaryQuery,
) (DashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardSummaryQueryResponse{}, err
	}

	cutoff := periodCutoff(time.Now().UTC(), query.Period())

	var resp DashboardSummaryQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0),
			COUNT(id),
			COUNT(DISTINCT mobile_number)
		FROM orders
		WHERE created_at >= ?
	`, cutoff).Row()

	if err := row.Scan(&resp.TotalRevenue, &resp.TotalOrders, &resp.TotalCustomers); err != nil {
		return DashboardSummaryQueryResponse{}, err
	}

	return resp, nil
}
