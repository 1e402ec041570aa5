package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order that
	// already carries a store-assigned identity.
	ErrIDAlreadyAssigned = errors.New("order ID has already been assigned")
)

// Order represents a restaurant order. It is the aggregate root that manages
// the order lifecycle from creation through driver confirmation to completion.
//
// Order follows these invariants:
//   - Identity is assigned exactly once by the store and is immutable afterwards
//   - Items are set at creation, non-empty, and immutable
//   - Status is a member of the valid set and is the only mutable field
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; Items returns a copy
// so callers always hold a snapshot, never a live reference.
type Order struct {
	// id is the store-assigned, monotonically increasing identifier.
	// Zero until the order has been persisted.
	id int64

	// items is the ordered sequence of menu item names.
	items []string

	// status is the current state in the order lifecycle.
	status Status

	// createdAt is the creation timestamp.
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates a new Order in Received status with validation.
// Items must be non-empty and contain no blank names; the slice is copied so
// later mutation by the caller cannot affect the aggregate. The identifier is
// left unassigned until the store persists the order.
func NewOrder(items []string, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        Received,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := order.setItems(items); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it requires an assigned identity and accepts any valid
// status, so records read back from the store round-trip exactly.
func RestoreOrder(id int64, items []string, status Status, createdAt time.Time) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.AssignID(id),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero values or direct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier, or zero if it has not been persisted yet.
func (o *Order) ID() int64 {
	return o.id
}

// Items returns a copy of the ordered item names.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID sets the store-assigned identity. It may be called exactly once,
// with a positive identifier; the store calls it after inserting the record.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order ID",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}

	o.id = id
	return nil
}

// ChangeStatus mutates the order's status after a manual update request.
//
// The new status must be a member of the valid set. When forwardOnly is true,
// the transition must additionally move strictly forward along the workflow
// path (e.g. completed -> received is rejected).
func (o *Order) ChangeStatus(next Status, forwardOnly bool) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if forwardOnly && !o.status.CanAdvanceTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", o.status.String(), next.String()),
		)
	}

	o.status = next
	return nil
}

// Confirm promotes the order from Received to Preparing after a driver has
// been confirmed. Fails if the order has already left the Received status;
// callers that want no-op semantics must check Status first.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setItems validates and stores the item names.
// This is a private method used only during construction.
func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	copied := make([]string, len(items))
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item name at position %d is blank", i),
			)
		}
		copied[i] = item
	}

	o.items = copied
	return nil
}

// setStatus validates and stores the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
