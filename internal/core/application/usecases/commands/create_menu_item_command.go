package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds an orderable item to the menu, optionally inside a category.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	categoryID *kernel.UUID
	details    catalog.MenuItemDetails
	price      kernel.Money
	available  bool

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand validates identifiers and the price.
// categoryID may be nil for an uncategorised item.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID,
	categoryID *kernel.UUID,
	details catalog.MenuItemDetails,
	priceCents int64,
	available bool,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		details:   details,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	price, priceErr := kernel.NewMoney(priceCents)
	if priceErr != nil {
		priceErr = errs.NewValueIsOutOfRangeError("price_cents", priceCents, 0, "unbounded")
	}
	cmd.price = price

	if err := errors.Join(
		menuItemID.Validate(),
		validateOptionalID(categoryID),
		priceErr,
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	cmd.menuItemID = menuItemID
	cmd.categoryID = categoryID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID          { return c.menuItemID }
func (c CreateMenuItemCommand) CategoryID() *kernel.UUID         { return c.categoryID }
func (c CreateMenuItemCommand) Details() catalog.MenuItemDetails { return c.details }
func (c CreateMenuItemCommand) Price() kernel.Money              { return c.price }
func (c CreateMenuItemCommand) Available() bool                  { return c.available }

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
