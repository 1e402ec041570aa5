package commands

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for a sequence
// of menu items, referenced by name.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]string{"Burger", "Fries"})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	itemNames []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates that at least one item is requested and that no name is blank.
func NewCreateOrderCommand(itemNames []string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderCommand.setItemNames(itemNames); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ItemNames returns a copy of the requested item names.
func (c CreateOrderCommand) ItemNames() []string {
	names := make([]string, len(c.itemNames))
	copy(names, c.itemNames)
	return names
}

func (c *CreateOrderCommand) setItemNames(itemNames []string) error {
	if len(itemNames) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	copied := make([]string, len(itemNames))
	for i, name := range itemNames {
		if strings.TrimSpace(name) == "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item name at position %d is blank", i),
			)
		}
		copied[i] = name
	}

	c.itemNames = copied
	return nil
}
