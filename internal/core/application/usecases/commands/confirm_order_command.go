package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a driver confirmation for an order: the
// watcher observed an available driver before the confirmation deadline.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
func NewConfirmOrderCommand(orderID int64) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order ID",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
