package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the full menu catalog, including items currently
// flagged unavailable, so callers can render the whole card.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the menu catalog.
// This is a parameterless query that fetches every item.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is the read model for a single menu item.
type GetMenuQueryResponse struct {
	ID        int64
	Name      string
	Price     float64
	Available bool
}
