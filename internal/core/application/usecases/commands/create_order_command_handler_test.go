package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockUoWFactory)
	uow := new(MockUoW)
	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	scheduler := new(MockConfirmationScheduler)

	names := []string{"Burger", "Fries"}

	catalog := []*menu.Item{
		mustItem(1, "Burger", 8.99, true),
		mustItem(2, "Fries", 3.49, true),
	}

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByNames", ctx, names).Return(catalog, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				added := args.Get(1).(*order.Order)
				require.NoError(t, added.AssignID(42))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		scheduler.On("Watch", int64(42)).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(uowFactory, scheduler)

	cmd, err := commands.NewCreateOrderCommand(names)
	require.NoError(t, err)

	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(42), created.ID())
	assert.Equal(t, order.Received, created.Status())
	assert.Equal(t, names, created.Items())

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	scheduler.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CollectsAllUnavailableItems(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockUoWFactory)
	uow := new(MockUoW)
	menuRepo := new(MockMenuRepository)
	scheduler := new(MockConfirmationScheduler)

	// Fries exists but is flagged unavailable; Soda is not in the catalog at
	// all. Both must appear in the rejection, Soda only once despite being
	// requested twice.
	names := []string{"Burger", "Fries", "Soda", "Soda"}

	catalog := []*menu.Item{
		mustItem(1, "Burger", 8.99, true),
		mustItem(2, "Fries", 3.49, false),
	}

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByNames", ctx, names).Return(catalog, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(uowFactory, scheduler)

	cmd, err := commands.NewCreateOrderCommand(names)
	require.NoError(t, err)

	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, commands.ErrItemsUnavailable)

	var unavailable *commands.ItemsUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []string{"Fries", "Soda"}, unavailable.Items)

	scheduler.AssertNotCalled(t, "Watch", mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockUoWFactory)
	uow := new(MockUoW)
	scheduler := new(MockConfirmationScheduler)

	beginErr := errors.New("connection refused")

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(beginErr).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(uowFactory, scheduler)

	cmd, err := commands.NewCreateOrderCommand([]string{"Burger"})
	require.NoError(t, err)

	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, beginErr)

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitErrorSkipsWatcher(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockUoWFactory)
	uow := new(MockUoW)
	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	scheduler := new(MockConfirmationScheduler)

	names := []string{"Burger"}
	catalog := []*menu.Item{mustItem(1, "Burger", 8.99, true)}
	commitErr := errors.New("serialization failure")

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetByNames", ctx, names).Return(catalog, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(commitErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(uowFactory, scheduler)

	cmd, err := commands.NewCreateOrderCommand(names)
	require.NoError(t, err)

	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, commitErr)

	scheduler.AssertNotCalled(t, "Watch", mock.Anything)

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockUoWFactory)
	scheduler := new(MockConfirmationScheduler)

	handler := commands.NewCreateOrderCommandHandler(uowFactory, scheduler)

	created, err := handler.Handle(ctx, commands.CreateOrderCommand{})

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)

	uowFactory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank item name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand([]string{"Burger", "   "})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should copy the item names", func(t *testing.T) {
		names := []string{"Burger", "Fries"}

		cmd, err := commands.NewCreateOrderCommand(names)
		require.NoError(t, err)

		names[0] = "mutated"
		assert.Equal(t, []string{"Burger", "Fries"}, cmd.ItemNames())
	})
}
