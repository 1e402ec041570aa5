// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is a bigserial, so identifiers are assigned by the store and
// increase monotonically with insertion order. Items are stored as a jsonb
// array of names.
type OrderDTO struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	Items     []string `gorm:"serializer:json;type:jsonb;not null"`
	Status    int      `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID is preserved so the insert picks up the sequence value.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		Items:     aggregate.Items(),
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, dto.Items, order.Status(dto.Status), dto.CreatedAt)
}
