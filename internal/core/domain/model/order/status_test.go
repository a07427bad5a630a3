package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Pending,
		order.Confirmed,
		order.Preparing,
		order.OutForDelivery,
		order.Delivered,
		order.Cancelled,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Out for Delivery", order.OutForDelivery.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_every_valid_name", func(t *testing.T) {
		for _, name := range []string{
			"Pending", "Confirmed", "Preparing", "Out for Delivery", "Delivered", "Cancelled",
		} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shipped"} {
			status, err := order.StatusFromString(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
			assert.Equal(t, order.Unknown, status)
		}
	})
}
