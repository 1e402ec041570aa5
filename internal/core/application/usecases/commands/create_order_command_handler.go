package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// ErrItemsUnavailable is the sentinel wrapped by ItemsUnavailableError.
var ErrItemsUnavailable = errors.New("items are not available")

// ItemsUnavailableError reports every requested item that is unknown to the
// catalog or currently flagged unavailable. All items are checked before the
// rejection is returned, so the caller sees the complete set of problems in
// one response.
type ItemsUnavailableError struct {
	Items []string
}

// NewItemsUnavailableError creates an ItemsUnavailableError naming every
// offending item.
func NewItemsUnavailableError(items []string) *ItemsUnavailableError {
	return &ItemsUnavailableError{Items: items}
}

func (e *ItemsUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemsUnavailable, strings.Join(e.Items, ", "))
}

func (e *ItemsUnavailableError) Unwrap() error {
	return ErrItemsUnavailable
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates every requested item against the menu catalog, persists the order
// in received status, and schedules exactly one driver-confirmation watcher
// for the new order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, watcherPool)
//	cmd, _ := NewCreateOrderCommand([]string{"Burger", "Fries"})
//
//	created, err := handler.Handle(ctx, cmd)
//	var unavailable *ItemsUnavailableError
//	if errors.As(err, &unavailable) {
//	    // reject listing unavailable.Items
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	scheduler  ConfirmationScheduler
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence and a
// ConfirmationScheduler that will track driver confirmation for the order.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	scheduler ConfirmationScheduler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
	}
}

// Handle processes the order creation command.
// Checks all requested items against the catalog (collect-all, not fail-fast),
// persists the order in received status, and after a successful commit starts
// the confirmation watcher. The caller gets the created order immediately and
// never waits for driver confirmation.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	names := cmd.ItemNames()

	catalog, err := uow.MenuRepository().GetByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	orderable := make(map[string]bool, len(catalog))
	for _, item := range catalog {
		orderable[item.Name()] = item.IsOrderable()
	}

	var unavailable []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if orderable[name] || seen[name] {
			continue
		}
		seen[name] = true
		unavailable = append(unavailable, name)
	}
	if len(unavailable) > 0 {
		return nil, NewItemsUnavailableError(unavailable)
	}

	newOrder, err := order.NewOrder(names, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.scheduler.Watch(newOrder.ID())

	return newOrder, nil
}
