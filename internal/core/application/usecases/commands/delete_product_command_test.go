package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteProductCommand_Success(t *testing.T) {
	cmd, err := commands.NewDeleteProductCommand(7)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.ProductID())
}

func TestNewDeleteProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewDeleteProductCommand(-1)

	require.ErrorIs(t, err, commands.ErrProductIDIsInvalid)
}

func TestDeleteProductCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.DeleteProductCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteProductCommandIsNotConstructed)
}
