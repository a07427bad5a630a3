package queries

import (
	"context"

	"gorm.io/gorm"
)

// CategoryBreakdownQueryHandler counts products per non-empty category.
type CategoryBreakdownQueryHandler struct {
	db *gorm.DB
}

// NewCategoryBreakdownQueryHandler creates a handler for the category
// breakdown. Requires a GORM database connection for query execution.
func NewCategoryBreakdownQueryHandler(db *gorm.DB) CategoryBreakdownQueryHandler {
	return CategoryBreakdownQueryHandler{db: db}
}

// Handle groups products by category and counts each group. Rows with a
// NULL or empty category are excluded.
func (h CategoryBreakdownQueryHandler) Handle(
	ctx context.Context,
	query CategoryBreakdownQuery,
) ([]CategoryBreakdownQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	breakdown := make([]CategoryBreakdownQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			category,
			COUNT(id)
		FROM products
		WHERE category IS NOT NULL AND category <> ''
		GROUP BY category
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry CategoryBreakdownQueryResponse
		if err = rows.Scan(&entry.Name, &entry.Value); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return breakdown, nil
}
