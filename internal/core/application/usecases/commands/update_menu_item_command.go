package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// MenuItemChanges lists the attributes to modify; nil fields are left untouched.
type MenuItemChanges struct {
	PriceCents *int64
	Available  *bool
	Active     *bool
}

// UpdateMenuItemCommand changes price, availability or the active flag of a menu item.
// Price changes only affect orders placed afterwards.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	price      *kernel.Money
	available  *bool
	active     *bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand requires at least one change and a non-negative price.
func NewUpdateMenuItemCommand(menuItemID kernel.UUID, changes MenuItemChanges) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		available: changes.Available,
		active:    changes.Active,
		guard:     guard.NewConstructorGuard(),
	}

	var changeErr error
	if changes.PriceCents == nil && changes.Available == nil && changes.Active == nil {
		changeErr = errs.NewValueIsRequiredError("price_cents, is_available or is_active")
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setPrice(changes.PriceCents),
		changeErr,
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c UpdateMenuItemCommand) Price() *kernel.Money    { return c.price }
func (c UpdateMenuItemCommand) Available() *bool        { return c.available }
func (c UpdateMenuItemCommand) Active() *bool           { return c.active }

func (c *UpdateMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *UpdateMenuItemCommand) setPrice(cents *int64) error {
	if cents == nil {
		return nil
	}
	price, err := kernel.NewMoney(*cents)
	if err != nil {
		return errs.NewValueIsOutOfRangeError("price_cents", *cents, 0, "unbounded")
	}
	c.price = &price
	return nil
}
