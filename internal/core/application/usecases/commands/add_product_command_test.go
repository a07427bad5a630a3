package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddProductCommand_Success(t *testing.T) {
	slots := [product.SlotCount]product.Slot{
		{Price: decimal.NewFromInt(120), Packing: "250g"},
	}

	cmd, err := commands.NewAddProductCommand(
		"Mango Pickle", "Pickles", "spicy", "img.png", slots, 180, 2)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Mango Pickle", cmd.ItemName())
	assert.Equal(t, "Pickles", cmd.Category())
	assert.Equal(t, "spicy", cmd.Description())
	assert.Equal(t, "img.png", cmd.ImageSrc())
	assert.Equal(t, slots, cmd.Slots())
	assert.Equal(t, 180, cmd.ShelfLifeDays())
	assert.Equal(t, 2, cmd.LeadTimeDays())
}

func TestNewAddProductCommand_MissingItemName(t *testing.T) {
	_, err := commands.NewAddProductCommand(
		"", "Pickles", "", "", [product.SlotCount]product.Slot{}, 0, 0)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddProductCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddProductCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrAddProductCommandIsNotConstructed)
}
