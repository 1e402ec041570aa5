package commands

import (
	"context"
	"time"
)

// ExpireStaleOrdersCommandHandler deletes every order still in received status
// whose confirmation window elapsed. It shares the per-order expiry's
// semantics but scans the store instead of tracking a single order, so it
// also catches orders whose watcher did not survive a process restart.
//
// Running it concurrently with live watchers is safe: both paths only delete
// orders they find unchanged in received status.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	window     time.Duration
}

// NewExpireStaleOrdersCommandHandler creates a handler for the stale-order
// sweep. The window is the same injectable confirmation window the watchers
// use.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	window time.Duration,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		window:     window,
	}
}

// Handle processes the sweep command.
// Collects received orders created before now minus the window and deletes
// them within a single transaction.
func (h ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) error {
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

	cutoff := time.Now().Add(-h.window)
	stale, err := orderRepo.GetAllReceivedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleOrder := range stale {
		if err = orderRepo.Delete(ctx, staleOrder.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
