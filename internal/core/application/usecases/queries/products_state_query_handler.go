package queries

import (
	"context"

	"storefront/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// ProductsStateQueryHandler retrieves every product with its derived
// variants and max price.
type ProductsStateQueryHandler struct {
	db *gorm.DB
}

// NewProductsStateQueryHandler creates a handler for the products-state
// view. Requires a GORM database connection for query execution.
func NewProductsStateQueryHandler(db *gorm.DB) ProductsStateQueryHandler {
	return ProductsStateQueryHandler{db: db}
}

// Handle reads all products ordered by identity and derives the variant
// list and max price from the price/packing slots of each row.
func (h ProductsStateQueryHandler) Handle(
	ctx context.Context,
	query ProductsStateQuery,
) ([]ProductsStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductsStateQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			category,
			description,
			image_src,
			price01, packing01,
			price02, packing02,
			price03, packing03,
			price04, packing04,
			shelf_life_days,
			lead_time_days,
			is_enabled
		FROM products
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ProductsStateQueryResponse
		var slots [product.SlotCount]product.Slot

		err = rows.Scan(
			&resp.ID,
			&resp.ItemName,
			&resp.Category,
			&resp.Description,
			&resp.ImageSrc,
			&slots[0].Price, &slots[0].Packing,
			&slots[1].Price, &slots[1].Packing,
			&slots[2].Price, &slots[2].Packing,
			&slots[3].Price, &slots[3].Packing,
			&resp.ShelfLifeDays,
			&resp.LeadTimeDays,
			&resp.IsEnabled,
		)
		if err != nil {
			return nil, err
		}

		resp.Variants = product.DeriveVariants(slots)
		resp.MaxPrice = product.MaxVariantPrice(resp.Variants)
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
