package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a partial update to a product. The patch
// is a typed allow-list of attributes; fields outside it cannot be expressed
// and so cannot alter the product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	patch     product.Patch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a partial-update command.
// Validates that the product id is positive; an all-nil patch is allowed and
// results in a no-op write.
func NewUpdateProductCommand(productID int64, patch product.Patch) (UpdateProductCommand, error) {
	updateCommand := UpdateProductCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := updateCommand.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProductCommandIsNotConstructed if validation fails.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identity of the product to patch.
func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

// Patch returns the typed partial update.
func (c UpdateProductCommand) Patch() product.Patch {
	return c.patch
}

func (c *UpdateProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}
