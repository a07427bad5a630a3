package product

import (
	"errors"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
)

// Product represents a sellable catalog item. It carries up to four parallel
// price/packing slots from which the variant list and max price are derived,
// plus shelf-life and lead-time durations and an enabled flag.
type Product struct {
	// id is the database identity, zero until the product is persisted
	id int64

	// itemName is the display name
	itemName string

	// category groups products on the dashboard
	category string

	// description is the customer-facing text
	description string

	// imageSrc references the product image
	imageSrc string

	// slots are the fixed price/packing pairs
	slots [SlotCount]Slot

	// shelfLifeDays is how long the product keeps
	shelfLifeDays int

	// leadTimeDays is the preparation lead time
	leadTimeDays int

	// isEnabled controls storefront visibility
	isEnabled bool

	// isConstructed ensures the product was created via a constructor
	isConstructed bool
}

// NewProduct creates a new enabled Product from a creation payload.
// The item name is required; everything else may be empty or zero.
// The identity stays zero until the repository persists the product.
func NewProduct(
	itemName string,
	category string,
	description string,
	imageSrc string,
	slots [SlotCount]Slot,
	shelfLifeDays int,
	leadTimeDays int,
) (*Product, error) {
	if itemName == "" {
		return nil, errs.NewValueIsRequiredError("item_name")
	}

	return &Product{
		itemName:      itemName,
		category:      category,
		description:   description,
		imageSrc:      imageSrc,
		slots:         slots,
		shelfLifeDays: shelfLifeDays,
		leadTimeDays:  leadTimeDays,
		isEnabled:     true,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id int64,
	itemName string,
	category string,
	description string,
	imageSrc string,
	slots [SlotCount]Slot,
	shelfLifeDays int,
	leadTimeDays int,
	isEnabled bool,
) (*Product, error) {
	if itemName == "" {
		return nil, errs.NewValueIsRequiredError("item_name")
	}

	return &Product{
		id:            id,
		itemName:      itemName,
		category:      category,
		description:   description,
		imageSrc:      imageSrc,
		slots:         slots,
		shelfLifeDays: shelfLifeDays,
		leadTimeDays:  leadTimeDays,
		isEnabled:     isEnabled,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed.
// Returns ErrProductIsNotConstructed otherwise.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's database identity, zero for unsaved products.
func (p *Product) ID() int64 {
	return p.id
}

// ItemName returns the display name.
func (p *Product) ItemName() string {
	return p.itemName
}

// Category returns the dashboard category.
func (p *Product) Category() string {
	return p.category
}

// Description returns the customer-facing text.
func (p *Product) Description() string {
	return p.description
}

// ImageSrc returns the product image reference.
func (p *Product) ImageSrc() string {
	return p.imageSrc
}

// Slots returns the fixed price/packing pairs.
func (p *Product) Slots() [SlotCount]Slot {
	return p.slots
}

// ShelfLifeDays returns the shelf-life duration.
func (p *Product) ShelfLifeDays() int {
	return p.shelfLifeDays
}

// LeadTimeDays returns the preparation lead time.
func (p *Product) LeadTimeDays() int {
	return p.leadTimeDays
}

// IsEnabled reports whether the product is visible on the storefront.
func (p *Product) IsEnabled() bool {
	return p.isEnabled
}

// Variants synthesizes the sellable variants from the occupied slots.
func (p *Product) Variants() []Variant {
	return DeriveVariants(p.slots)
}

// MaxPrice returns the maximum derived-variant price, or zero when the
// product has no occupied slot.
func (p *Product) MaxPrice() decimal.Decimal {
	return MaxVariantPrice(p.Variants())
}

// Toggle flips the enabled flag and returns the new value.
func (p *Product) Toggle() bool {
	p.isEnabled = !p.isEnabled
	return p.isEnabled
}

// Patch is the explicit allow-list of patchable product attributes. A nil
// field leaves the corresponding attribute untouched.
type Patch struct {
	ItemName      *string
	Category      *string
	Description   *string
	ImageSrc      *string
	Prices        [SlotCount]*decimal.Decimal
	Packings      [SlotCount]*string
	ShelfLifeDays *int
	LeadTimeDays  *int
	IsEnabled     *bool
}

// ApplyPatch overwrites the attributes present in the patch. Fields outside
// the allow-list cannot be expressed and therefore cannot alter the product.
// An empty item name in the patch is rejected.
func (p *Product) ApplyPatch(patch Patch) error {
	if patch.ItemName != nil && *patch.ItemName == "" {
		return errs.NewValueIsRequiredError("item_name")
	}

	if patch.ItemName != nil {
		p.itemName = *patch.ItemName
	}
	if patch.Category != nil {
		p.category = *patch.Category
	}
	if patch.Description != nil {
		p.description = *patch.Description
	}
	if patch.ImageSrc != nil {
		p.imageSrc = *patch.ImageSrc
	}
	for i := range SlotCount {
		if patch.Prices[i] != nil {
			p.slots[i].Price = *patch.Prices[i]
		}
		if patch.Packings[i] != nil {
			p.slots[i].Packing = *patch.Packings[i]
		}
	}
	if patch.ShelfLifeDays != nil {
		p.shelfLifeDays = *patch.ShelfLifeDays
	}
	if patch.LeadTimeDays != nil {
		p.leadTimeDays = *patch.LeadTimeDays
	}
	if patch.IsEnabled != nil {
		p.isEnabled = *patch.IsEnabled
	}

	return nil
}
