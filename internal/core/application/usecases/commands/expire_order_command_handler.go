package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// ExpireOrderCommandHandler performs the watcher's cancelling terminal action:
// deleting an order whose confirmation window elapsed, guarded by a re-read of
// the order's current status.
//
// The delete is the compensating action keeping the restaurant's and the
// partner's views consistent without a distributed transaction: an order no
// driver ever accepted simply ceases to exist.
type ExpireOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireOrderCommandHandler creates a handler for confirmation expiry.
func NewExpireOrderCommandHandler(uowFactory OrderUoWFactory) ExpireOrderCommandHandler {
	return ExpireOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command.
// Deletes the order only if it is still in received status; an order that
// advanced meanwhile, or is already gone, is left untouched.
func (h ExpireOrderCommandHandler) Handle(ctx context.Context, cmd ExpireOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if existing.Status() != order.Received {
		return nil
	}

	if err = orderRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
