package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleAllProductsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewToggleAllProductsCommand("0")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("SetAllEnabled", ctx, false).Return(int64(12), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleAllProductsCommandHandler(factory)
	affected, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), affected)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestToggleAllProductsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ToggleAllProductsCommand // not constructed properly
	factory := new(MockProductUoWFactory)

	handler := commands.NewToggleAllProductsCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrToggleAllProductsCommandIsNotConstructed)
}

func TestToggleAllProductsCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewToggleAllProductsCommand("1")
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	factory := new(MockProductUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("SetAllEnabled", ctx, true).Return(int64(0), errors.New("repository error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewToggleAllProductsCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}
