package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// ConfirmOrderCommandHandler performs the watcher's promoting terminal action:
// received -> preparing, guarded by a re-read of the order's current status.
//
// The handler is idempotent and race-safe. The order is re-read under a row
// lock; if it already left received (a manual update raced ahead) or was
// deleted, the confirmation is a no-op and the handler returns nil.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for driver confirmations.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Promotes the order to preparing only if it is still in received status;
// anything else, including a missing record, is treated as already handled.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = existing.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
