package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrToggleProductCommandIsNotConstructed = errors.New(
		"ToggleProductCommand must be created via NewToggleProductCommand constructor",
	)
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
)

// ToggleProductCommand represents a request to flip a product's enabled
// flag.
type ToggleProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewToggleProductCommand creates a command to toggle a product.
// Validates that the product id is positive.
func NewToggleProductCommand(productID int64) (ToggleProductCommand, error) {
	toggleCommand := ToggleProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := toggleCommand.setProductID(productID); err != nil {
		return ToggleProductCommand{}, err
	}

	return toggleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrToggleProductCommandIsNotConstructed if validation fails.
func (c ToggleProductCommand) Validate() error {
	return c.guard.Validate(ErrToggleProductCommandIsNotConstructed)
}

// ProductID returns the identity of the product to toggle.
func (c ToggleProductCommand) ProductID() int64 {
	return c.productID
}

func (c *ToggleProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}
