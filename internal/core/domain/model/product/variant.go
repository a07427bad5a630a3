package product

import "github.com/shopspring/decimal"

// SlotCount is the number of fixed price/packing slot pairs on a product.
const SlotCount = 4

// Slot is one of the product's fixed (price, packing description) pairs.
// A slot with a zero price is considered empty.
type Slot struct {
	Price   decimal.Decimal
	Packing string
}

// Variant is a sellable (packing, price) pair synthesized from the occupied
// slots of a product. Variants are never persisted; they are recomputed on
// every read.
type Variant struct {
	Packing string
	Price   decimal.Decimal
}

// DeriveVariants scans the fixed slots and returns a variant for every slot
// with a non-zero price. Packing may be empty.
func DeriveVariants(slots [SlotCount]Slot) []Variant {
	variants := make([]Variant, 0, SlotCount)
	for _, slot := range slots {
		if slot.Price.IsZero() {
			continue
		}
		variants = append(variants, Variant{Packing: slot.Packing, Price: slot.Price})
	}
	return variants
}

// MaxVariantPrice returns the maximum price among the variants, or zero when
// there are none.
func MaxVariantPrice(variants []Variant) decimal.Decimal {
	maxPrice := decimal.Zero
	for _, v := range variants {
		if v.Price.GreaterThan(maxPrice) {
			maxPrice = v.Price
		}
	}
	return maxPrice
}
