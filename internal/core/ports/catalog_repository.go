// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for categories and menu items.
type CatalogRepository interface {
	// AddCategory persists a new category. A duplicate name yields errs.ConflictError.
	AddCategory(ctx context.Context, category *catalog.Category) error

	// GetCategory returns errs.ObjectNotFoundError when the category does not exist.
	GetCategory(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// DeleteCategory removes a category. Its menu items survive with no category.
	DeleteCategory(ctx context.Context, id kernel.UUID) error

	// AddMenuItem persists a new menu item. A duplicate (category, name) yields errs.ConflictError.
	AddMenuItem(ctx context.Context, item *catalog.MenuItem) error

	// UpdateMenuItem persists all mutable attributes of an existing menu item.
	UpdateMenuItem(ctx context.Context, item *catalog.MenuItem) error

	// GetMenuItem returns errs.ObjectNotFoundError when the menu item does not exist.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// DeleteMenuItem removes a menu item. It fails with errs.ConflictError while any
	// order line references the item.
	DeleteMenuItem(ctx context.Context, id kernel.UUID) error
}
