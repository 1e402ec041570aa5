// Package menurepo provides data transfer objects and mapping functions for
// menu catalog persistence.
package menurepo

import (
	"restaurant/internal/core/domain/model/menu"
)

// ItemDTO represents the database structure for persisting menu items.
// Names are unique: the ordering boundary identifies items by name.
type ItemDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"uniqueIndex;not null"`
	Price     float64
	Available bool
}

// TableName specifies the database table name for menu items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item entity to its database representation.
func fromDomain(item *menu.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price(),
		Available: item.IsOrderable(),
	}
}

// toDomain converts a database DTO to a menu item entity.
func toDomain(dto ItemDTO) (*menu.Item, error) {
	return menu.RestoreItem(dto.ID, dto.Name, dto.Price, dto.Available)
}
