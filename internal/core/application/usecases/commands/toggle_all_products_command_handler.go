package commands

import (
	"context"
)

// ToggleAllProductsCommandHandler sets every product's enabled flag in one
// statement. Atomicity against concurrent writers is whatever the store's
// transaction isolation provides; no application-level locking is taken.
type ToggleAllProductsCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewToggleAllProductsCommandHandler creates a handler for bulk product
// toggles. Requires a ProductUoWFactory for transactional persistence.
func NewToggleAllProductsCommandHandler(uowFactory ProductUoWFactory) ToggleAllProductsCommandHandler {
	return ToggleAllProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the enabled flag on every product and returns the number of
// products affected.
func (h *ToggleAllProductsCommandHandler) Handle(ctx context.Context, cmd ToggleAllProductsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	affected, err := uow.ProductRepository().SetAllEnabled(ctx, cmd.Enable())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}
