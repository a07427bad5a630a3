package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToggleAllProductsCommand_Success(t *testing.T) {
	enable, err := commands.NewToggleAllProductsCommand("1")
	require.NoError(t, err)
	require.NoError(t, enable.Validate())
	assert.True(t, enable.Enable())

	disable, err := commands.NewToggleAllProductsCommand("0")
	require.NoError(t, err)
	require.NoError(t, disable.Validate())
	assert.False(t, disable.Enable())
}

func TestNewToggleAllProductsCommand_InvalidAction(t *testing.T) {
	for _, action := range []string{"", "2", "true", "on"} {
		_, err := commands.NewToggleAllProductsCommand(action)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, action)
	}
}

func TestToggleAllProductsCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ToggleAllProductsCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrToggleAllProductsCommandIsNotConstructed)
}
