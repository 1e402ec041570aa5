package ports

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for the menu catalog.
// The core only reads the catalog during order validation; writes exist for
// catalog seeding and administration.
type MenuRepository interface {
	// Add persists a new menu item and assigns its store identity.
	Add(ctx context.Context, item *menu.Item) error

	// GetByNames retrieves the catalog entries matching the given names.
	// Names absent from the catalog are simply missing from the result;
	// callers treat an unknown name the same as an unavailable item.
	GetByNames(ctx context.Context, names []string) ([]*menu.Item, error)

	// Count returns the number of catalog entries. Used to decide whether
	// first-run seeding is needed.
	Count(ctx context.Context) (int64, error)
}
