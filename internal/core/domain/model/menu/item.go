package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item represents a menu entry: a named dish with a price and an availability
// flag. The availability flag is the single source of truth for whether the
// item can appear on new orders.
//
// Items are identified by name at the ordering boundary; the numeric identity
// exists only for persistence.
type Item struct {
	id        int64
	name      string
	price     float64
	available bool

	isConstructed bool
}

// NewItem creates a menu item with validation. Name must be non-blank and
// price must be positive. The item starts without a store identity.
func NewItem(name string, price float64, available bool) (*Item, error) {
	item := &Item{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a menu item from persistence.
func RestoreItem(id int64, name string, price float64, available bool) (*Item, error) {
	item, err := NewItem(name, price, available)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"item ID",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	item.id = id

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's store identity, or zero if not persisted yet.
func (i *Item) ID() int64 {
	return i.id
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's price.
func (i *Item) Price() float64 {
	return i.price
}

// IsOrderable reports whether the item may appear on new orders.
func (i *Item) IsOrderable() bool {
	return i.available
}

// AssignID sets the store-assigned identity after insertion.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidError("item ID is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item ID",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}

	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%g is not greater than 0", price),
		)
	}
	i.price = price
	return nil
}
