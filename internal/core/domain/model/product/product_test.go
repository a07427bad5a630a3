package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slots(prices ...float64) [product.SlotCount]product.Slot {
	var s [product.SlotCount]product.Slot
	for i, p := range prices {
		s[i] = product.Slot{Price: decimal.NewFromFloat(p), Packing: ""}
	}
	return s
}

func TestNewProduct(t *testing.T) {
	t.Run("creates_enabled_product", func(t *testing.T) {
		p, err := product.NewProduct("Mango Pickle", "Pickles", "", "", slots(120), 180, 2)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.IsEnabled())
		assert.Equal(t, int64(0), p.ID())
	})

	t.Run("requires_item_name", func(t *testing.T) {
		_, err := product.NewProduct("", "Pickles", "", "", slots(), 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestDeriveVariants(t *testing.T) {
	t.Run("includes_only_slots_with_nonzero_price", func(t *testing.T) {
		s := [product.SlotCount]product.Slot{
			{Price: decimal.NewFromInt(120), Packing: "250g"},
			{Price: decimal.Zero, Packing: "500g"},
			{Price: decimal.NewFromInt(420), Packing: "1kg"},
			{},
		}

		variants := product.DeriveVariants(s)

		require.Len(t, variants, 2)
		assert.Equal(t, "250g", variants[0].Packing)
		assert.True(t, variants[0].Price.Equal(decimal.NewFromInt(120)))
		assert.Equal(t, "1kg", variants[1].Packing)
		assert.True(t, variants[1].Price.Equal(decimal.NewFromInt(420)))
	})

	t.Run("empty_packing_is_allowed", func(t *testing.T) {
		variants := product.DeriveVariants(slots(99.5))

		require.Len(t, variants, 1)
		assert.Empty(t, variants[0].Packing)
	})

	t.Run("no_occupied_slots_yields_no_variants", func(t *testing.T) {
		variants := product.DeriveVariants(slots())

		assert.Empty(t, variants)
	})
}

func TestMaxPrice(t *testing.T) {
	t.Run("equals_maximum_variant_price", func(t *testing.T) {
		p, err := product.RestoreProduct(1, "Lemon Pickle", "Pickles", "", "",
			slots(120, 230, 420), 180, 2, true)
		require.NoError(t, err)

		assert.True(t, p.MaxPrice().Equal(decimal.NewFromInt(420)))
	})

	t.Run("is_zero_without_variants", func(t *testing.T) {
		p, err := product.RestoreProduct(1, "Lemon Pickle", "Pickles", "", "",
			slots(), 180, 2, true)
		require.NoError(t, err)

		assert.True(t, p.MaxPrice().IsZero())
	})
}

func TestProduct_Toggle(t *testing.T) {
	p, err := product.RestoreProduct(1, "Ghee", "Dairy", "", "", slots(550), 90, 1, true)
	require.NoError(t, err)

	assert.False(t, p.Toggle())
	assert.False(t, p.IsEnabled())

	// toggling twice returns the product to its original state
	assert.True(t, p.Toggle())
	assert.True(t, p.IsEnabled())
}

func TestProduct_ApplyPatch(t *testing.T) {
	restore := func(t *testing.T) *product.Product {
		t.Helper()
		p, err := product.RestoreProduct(7, "Ghee", "Dairy", "pure", "img.png",
			slots(550), 90, 1, true)
		require.NoError(t, err)
		return p
	}

	t.Run("applies_only_present_fields", func(t *testing.T) {
		p := restore(t)
		name := "Cow Ghee"
		price := decimal.NewFromInt(600)

		patch := product.Patch{ItemName: &name}
		patch.Prices[1] = &price

		require.NoError(t, p.ApplyPatch(patch))
		assert.Equal(t, "Cow Ghee", p.ItemName())
		assert.Equal(t, "Dairy", p.Category())
		assert.True(t, p.Slots()[0].Price.Equal(decimal.NewFromInt(550)))
		assert.True(t, p.Slots()[1].Price.Equal(decimal.NewFromInt(600)))
	})

	t.Run("empty_patch_changes_nothing", func(t *testing.T) {
		p := restore(t)

		require.NoError(t, p.ApplyPatch(product.Patch{}))
		assert.Equal(t, "Ghee", p.ItemName())
		assert.Equal(t, "Dairy", p.Category())
		assert.Equal(t, 90, p.ShelfLifeDays())
		assert.True(t, p.IsEnabled())
	})

	t.Run("rejects_empty_item_name", func(t *testing.T) {
		p := restore(t)
		empty := ""

		err := p.ApplyPatch(product.Patch{ItemName: &empty})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "Ghee", p.ItemName())
	})

	t.Run("can_disable_via_patch", func(t *testing.T) {
		p := restore(t)
		disabled := false

		require.NoError(t, p.ApplyPatch(product.Patch{IsEnabled: &disabled}))
		assert.False(t, p.IsEnabled())
	})
}
