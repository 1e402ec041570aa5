package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockOrderUoWFactory)
	uow := new(MockOrderUoW)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockPartnerNotifier)

	existing := mustStoredOrder(7, []string{"Burger"}, order.Preparing)

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(7)).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChange", ctx, int64(7), order.Ready).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderStatusCommandHandler(uowFactory, notifier, false)

	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.Ready)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Ready, updated.Status())

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NotifyFailureKeepsCommit(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockOrderUoWFactory)
	uow := new(MockOrderUoW)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockPartnerNotifier)

	existing := mustStoredOrder(7, []string{"Burger"}, order.Preparing)

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(7)).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChange", ctx, int64(7), order.Ready).
			Return(ports.ErrPartnerUnreachable).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderStatusCommandHandler(uowFactory, notifier, false)

	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.Ready)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	// The local change is committed; the caller gets the updated order plus the
	// sync failure.
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrPartnerUnreachable)
	require.NotNil(t, updated)
	assert.Equal(t, order.Ready, updated.Status())

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockOrderUoWFactory)
	uow := new(MockOrderUoW)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockPartnerNotifier)

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("order", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderStatusCommandHandler(uowFactory, notifier, false)

	cmd, err := commands.NewUpdateOrderStatusCommand(99, order.Ready)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	notifier.AssertNotCalled(t, "NotifyStatusChange", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ForwardOnlyRejectsBackwardMove(t *testing.T) {
	ctx := context.Background()

	uowFactory := new(MockOrderUoWFactory)
	uow := new(MockOrderUoW)
	orderRepo := new(MockOrderRepository)
	notifier := new(MockPartnerNotifier)

	existing := mustStoredOrder(7, []string{"Burger"}, order.Ready)

	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForUpdate", ctx, int64(7)).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderStatusCommandHandler(uowFactory, notifier, true)

	cmd, err := commands.NewUpdateOrderStatusCommand(7, order.Preparing)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Ready, existing.Status())

	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyStatusChange", mock.Anything, mock.Anything, mock.Anything)

	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestNewUpdateOrderStatusCommand_Validation(t *testing.T) {
	t.Run("should reject non-positive order ID", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(0, order.Ready)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(7, order.Status(99))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
