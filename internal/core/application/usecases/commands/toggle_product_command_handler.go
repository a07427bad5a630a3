package commands

import (
	"context"
)

// ToggleProductCommandHandler flips a product's enabled flag.
// Fails with an ObjectNotFoundError when the product does not exist.
type ToggleProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewToggleProductCommandHandler creates a handler for product toggles.
// Requires a ProductUoWFactory for transactional persistence.
func NewToggleProductCommandHandler(uowFactory ProductUoWFactory) ToggleProductCommandHandler {
	return ToggleProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, flips its enabled flag and persists it within
// one transaction. Returns the new enabled state.
func (h *ToggleProductCommandHandler) Handle(ctx context.Context, cmd ToggleProductCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return false, err
	}

	newStatus := aggregate.Toggle()

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return newStatus, nil
}
