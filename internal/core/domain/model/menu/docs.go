// Package menu provides the menu Item entity: the catalog side of order
// validation. Orders reference items by name; an item with its available flag
// cleared (or a name absent from the catalog entirely) is not orderable.
package menu
