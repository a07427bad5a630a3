package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
)

// AddProductCommand represents a validated product-creation payload.
// The created product is always enabled.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	itemName      string
	category      string
	description   string
	imageSrc      string
	slots         [product.SlotCount]product.Slot
	shelfLifeDays int
	leadTimeDays  int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a product-creation command. The item name is
// required; all other fields may be empty or zero.
func NewAddProductCommand(
	itemName string,
	category string,
	description string,
	imageSrc string,
	slots [product.SlotCount]product.Slot,
	shelfLifeDays int,
	leadTimeDays int,
) (AddProductCommand, error) {
	if itemName == "" {
		return AddProductCommand{}, errs.NewValueIsRequiredError("item_name")
	}

	return AddProductCommand{
		itemName:      itemName,
		category:      category,
		description:   description,
		imageSrc:      imageSrc,
		slots:         slots,
		shelfLifeDays: shelfLifeDays,
		leadTimeDays:  leadTimeDays,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ItemName returns the display name for the new product.
func (c AddProductCommand) ItemName() string {
	return c.itemName
}

// Category returns the dashboard category for the new product.
func (c AddProductCommand) Category() string {
	return c.category
}

// Description returns the customer-facing text for the new product.
func (c AddProductCommand) Description() string {
	return c.description
}

// ImageSrc returns the image reference for the new product.
func (c AddProductCommand) ImageSrc() string {
	return c.imageSrc
}

// Slots returns the fixed price/packing pairs for the new product.
func (c AddProductCommand) Slots() [product.SlotCount]product.Slot {
	return c.slots
}

// ShelfLifeDays returns the shelf-life duration for the new product.
func (c AddProductCommand) ShelfLifeDays() int {
	return c.shelfLifeDays
}

// LeadTimeDays returns the preparation lead time for the new product.
func (c AddProductCommand) LeadTimeDays() int {
	return c.leadTimeDays
}
