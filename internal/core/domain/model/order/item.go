package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 100
)

// Item is an order line. unitPrice is the menu item price at placement time.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
	createdAt  time.Time
}

// RestoreItem rebuilds a line item loaded from persistence.
// A line whose total does not fit in int64 cents is rejected with errs.ValueIsOutOfRangeError.
func RestoreItem(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, createdAt time.Time) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	lineTotal, err := unitPrice.Times(quantity)
	if err != nil {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause("line total", unitPrice.Cents(), 0, "int64 cents", err)
	}

	return &Item{
		id:         id,
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		lineTotal:  lineTotal,
		createdAt:  createdAt,
	}, nil
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) MenuItemID() kernel.UUID { return i.menuItemID }
func (i *Item) Quantity() int           { return i.quantity }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }

// LineTotal returns quantity × unit price.
func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

func validateQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	return nil
}
