package commands

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// AddProductCommandHandler creates a new enabled product.
// Any persistence failure rolls the transaction back; the HTTP adapter logs
// it server-side and surfaces an opaque failure to the caller.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for product creation.
// Requires a ProductUoWFactory for transactional persistence.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle constructs the product aggregate and persists it within one
// transaction. Returns the generated product identity.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := product.NewProduct(
		cmd.ItemName(),
		cmd.Category(),
		cmd.Description(),
		cmd.ImageSrc(),
		cmd.Slots(),
		cmd.ShelfLifeDays(),
		cmd.LeadTimeDays(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productID, err := uow.ProductRepository().Add(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return productID, nil
}
