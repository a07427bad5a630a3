package commands

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrToggleAllProductsCommandIsNotConstructed = errors.New(
		"ToggleAllProductsCommand must be created via NewToggleAllProductsCommand constructor",
	)
)

// ToggleAllProductsCommand represents a request to set every product's
// enabled flag at once. The action selector comes from the API as the binary
// string "0" (disable all) or "1" (enable all).
type ToggleAllProductsCommand struct { //nolint:recvcheck //using for validation
	enable bool

	guard guard.ConstructorGuard
}

// NewToggleAllProductsCommand creates a bulk-toggle command from the action
// selector. Any value other than "0" or "1" is rejected.
func NewToggleAllProductsCommand(action string) (ToggleAllProductsCommand, error) {
	toggleCommand := ToggleAllProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := toggleCommand.setAction(action); err != nil {
		return ToggleAllProductsCommand{}, err
	}

	return toggleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrToggleAllProductsCommandIsNotConstructed if validation fails.
func (c ToggleAllProductsCommand) Validate() error {
	return c.guard.Validate(ErrToggleAllProductsCommandIsNotConstructed)
}

// Enable returns the target enabled state for every product.
func (c ToggleAllProductsCommand) Enable() bool {
	return c.enable
}

func (c *ToggleAllProductsCommand) setAction(action string) error {
	switch action {
	case "0":
		c.enable = false
	case "1":
		c.enable = true
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not \"0\" or \"1\"", action))
	}

	return nil
}
