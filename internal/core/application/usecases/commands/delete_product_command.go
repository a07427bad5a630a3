package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// DeleteProductCommand represents a request to permanently remove a product
// together with its dependent kitchen-prep variant rows.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a deletion command.
// Validates that the product id is positive.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	deleteCommand := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteProductCommandIsNotConstructed if validation fails.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identity of the product to delete.
func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}
