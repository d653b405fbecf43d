package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListAvailableMenuItemsQueryIsNotConstructed = errors.New(
		"ListAvailableMenuItemsQuery must be created via NewListAvailableMenuItemsQuery constructor",
	)
)

// ListAvailableMenuItemsQuery retrieves the items a customer can order right now,
// optionally narrowed to one category. An unknown category yields an empty list.
type ListAvailableMenuItemsQuery struct {
	categoryID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAvailableMenuItemsQuery creates the listing query. categoryID may be nil.
func NewListAvailableMenuItemsQuery(categoryID *kernel.UUID) (ListAvailableMenuItemsQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return ListAvailableMenuItemsQuery{}, err
		}
	}

	return ListAvailableMenuItemsQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableMenuItemsQueryIsNotConstructed)
}

// CategoryID returns the category filter, or nil for all categories.
func (q ListAvailableMenuItemsQuery) CategoryID() *kernel.UUID {
	return q.categoryID
}

// ListAvailableMenuItemsQueryResponse is the menu item read model.
// CategoryID is nil for uncategorised items.
type ListAvailableMenuItemsQueryResponse struct {
	ID          kernel.UUID
	CategoryID  *kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	ImageURL    string
}
