package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrCategoryBreakdownQueryIsNotConstructed = errors.New(
		"CategoryBreakdownQuery must be created via NewCategoryBreakdownQuery constructor",
	)
)

// CategoryBreakdownQuery counts products per category for the dashboard pie
// chart. Products without a category are excluded.
type CategoryBreakdownQuery struct {
	guard guard.ConstructorGuard
}

// NewCategoryBreakdownQuery creates a query to count products per category.
func NewCategoryBreakdownQuery() CategoryBreakdownQuery {
	return CategoryBreakdownQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCategoryBreakdownQueryIsNotConstructed if validation fails.
func (q CategoryBreakdownQuery) Validate() error {
	return q.guard.Validate(ErrCategoryBreakdownQueryIsNotConstructed)
}

// CategoryBreakdownQueryResponse is one category with its product count.
type CategoryBreakdownQueryResponse struct {
	Name  string
	Value int64
}
