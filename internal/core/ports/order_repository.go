// Package ports defines the contracts between the core and infrastructure:
// repositories, the unit of work, and the outbound collaborator interfaces
// (delivery partner notification and driver availability). These interfaces
// enable dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its store identity.
	// The order must be valid and must not carry an identity yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order with its row locked for the duration of
	// the surrounding transaction. Used for the watcher's check-then-act so a
	// concurrent manual update cannot race the still-received check.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order record entirely. This is the compensating
	// cancellation applied when driver confirmation does not happen in time.
	Delete(ctx context.Context, id int64) error

	// GetAllReceivedBefore retrieves orders still in Received status created
	// before the cutoff. Used by the stale-order sweeper.
	GetAllReceivedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
