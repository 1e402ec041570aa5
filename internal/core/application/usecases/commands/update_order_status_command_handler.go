package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies manual status transitions and
// propagates them to the delivery partner.
//
// The local store is the source of truth: the status change commits first and
// the partner is informed best-effort afterwards. A notification failure is
// surfaced to the caller wrapped in ports.ErrPartnerUnreachable, but the
// committed change is never rolled back.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, notifier, false)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Ready)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrPartnerUnreachable) {
//	    // updated is committed locally; report the sync failure
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	notifier    ports.PartnerNotifier
	forwardOnly bool
}

// NewUpdateOrderStatusCommandHandler creates a handler for manual status updates.
// When forwardOnly is true, transitions must move strictly forward along the
// workflow path; otherwise only set membership is enforced.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.PartnerNotifier,
	forwardOnly bool,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		notifier:    notifier,
		forwardOnly: forwardOnly,
	}
}

// Handle processes the status update command.
// Reads the order under a row lock so the update serializes against a racing
// confirmation watcher, applies the transition, commits, then notifies the
// partner. Returns the updated order even when notification fails.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.NewStatus(), h.forwardOnly); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyStatusChange(ctx, existing.ID(), existing.Status()); err != nil {
		return existing, fmt.Errorf("status committed locally, partner notification failed: %w", err)
	}

	return existing, nil
}
