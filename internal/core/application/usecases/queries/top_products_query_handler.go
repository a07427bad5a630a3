package queries

import (
	"context"
	"database/sql"
	"sort"

	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopProductsQueryHandler scans every order's item lines and ranks products
// by total quantity sold.
type TopProductsQueryHandler struct {
	db *gorm.DB
}

// NewTopProductsQueryHandler creates a handler for the top-products ranking.
// Requires a GORM database connection for query execution.
func NewTopProductsQueryHandler(db *gorm.DB) TopProductsQueryHandler {
	return TopProductsQueryHandler{db: db}
}

// accumulated carries the per-product running totals during the scan.
type accumulated struct {
	sales   int
	revenue decimal.Decimal
}

// Handle reads the items column of every order, accumulates per-name
// quantity and revenue, and returns the top 5 by quantity descending.
// Items without a name are skipped. Ties break alphabetically so the
// ranking is stable between calls.
func (h TopProductsQueryHandler) Handle(
	ctx context.Context,
	query TopProductsQuery,
) ([]TopProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT items FROM orders`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]accumulated)

	for rows.Next() {
		var rawItems sql.NullString
		if err = rows.Scan(&rawItems); err != nil {
			return nil, err
		}
		if !rawItems.Valid {
			continue
		}

		items, parseErr := order.ParseItems(rawItems.String)
		if parseErr != nil {
			return nil, parseErr
		}

		for _, item := range items {
			if item.Name == "" {
				continue
			}

			entry := totals[item.Name]
			entry.sales += item.Quantity
			entry.revenue = entry.revenue.Add(
				item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
			)
			totals[item.Name] = entry
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ranking := make([]TopProductsQueryResponse, 0, len(totals))
	for name, entry := range totals {
		ranking = append(ranking, TopProductsQueryResponse{
			Name:    name,
			Sales:   entry.sales,
			Revenue: entry.revenue.InexactFloat64(),
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Sales != ranking[j].Sales {
			return ranking[i].Sales > ranking[j].Sales
		}
		return ranking[i].Name < ranking[j].Name
	})

	if len(ranking) > topProductsLimit {
		ranking = ranking[:topProductsLimit]
	}

	return ranking, nil
}
