package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// listOrdersCap bounds the admin order list. There is no pagination; the
// panel only ever shows the newest orders.
const listOrdersCap = 500

// ListOrdersQueryHandler retrieves the most recent orders from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the recent-orders query.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns up to 500 orders, newest first, with
// their item lines decoded from the stored JSON.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at,
			mobile_number,
			total_amount,
			status,
			items
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`, listOrdersCap).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var status int
		var rawItems sql.NullString

		err = rows.Scan(
			&resp.ID,
			&resp.CreatedAt,
			&resp.MobileNumber,
			&resp.TotalAmount,
			&status,
			&rawItems,
		)
		if err != nil {
			return nil, err
		}

		// legacy rows store NULL instead of an item array
		resp.Items = []order.Item{}
		if rawItems.Valid {
			items, parseErr := order.ParseItems(rawItems.String)
			if parseErr != nil {
				return nil, parseErr
			}
			resp.Items = items
		}

		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
