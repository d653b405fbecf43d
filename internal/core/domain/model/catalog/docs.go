// Package catalog models the menu: categories and the menu items offered in them.
//
// The catalog is read-only from the point of view of order placement. An order only
// takes a price snapshot of a menu item and checks that the item is orderable.
//
// Key business rules:
//   - Category names are unique and at most 100 characters
//   - Menu item names are unique within a category and at most 150 characters
//   - Prices are non-negative integer cents
//   - A menu item is orderable only when it is both active and available
//   - Deleting a category keeps its menu items and clears their category reference
package catalog
