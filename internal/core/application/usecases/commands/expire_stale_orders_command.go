package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a sweep for orders that stayed in
// received status past the confirmation window. The sweep is the backstop for
// watchers lost with the process (e.g. a restart).
type ExpireStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a sweep command.
func NewExpireStaleOrdersCommand() ExpireStaleOrdersCommand {
	return ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}
