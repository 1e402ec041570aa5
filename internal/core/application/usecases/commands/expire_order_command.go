package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrExpireOrderCommandIsNotConstructed = errors.New(
	"ExpireOrderCommand must be created via NewExpireOrderCommand constructor",
)

// ExpireOrderCommand represents an elapsed confirmation deadline for an
// order: no driver was confirmed within the window, so the order should be
// cancelled if it is still waiting.
type ExpireOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewExpireOrderCommand creates a command to expire an order.
func NewExpireOrderCommand(orderID int64) (ExpireOrderCommand, error) {
	expireCommand := ExpireOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setOrderID(orderID); err != nil {
		return ExpireOrderCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOrderCommand) Validate() error {
	return c.guard.Validate(ErrExpireOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to expire.
func (c ExpireOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *ExpireOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order ID",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
