package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine is one requested line of a new order.
type OrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// PlaceOrderCommand represents a customer placing an order. Shape-level checks
// (contact data, line count, quantities, duplicate menu items, fee) happen in the
// constructor; menu item availability is checked by the handler.
//
// Example:
//
//	profile, _ := customer.NewProfile("ann@example.com", "Ann", "", "1 Main St")
//	cmd, err := NewPlaceOrderCommand(profile, []OrderLine{{MenuItemID: id, Quantity: 3}}, "", 200, "")
//	if err != nil {
//	    return err
//	}
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	profile          customer.Profile
	lines            []OrderLine
	instructions     string
	deliveryFeeCents int64
	paymentMethod    order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the request and reports every invalid field at once.
// paymentMethod may be empty, meaning CARD.
func NewPlaceOrderCommand(
	profile customer.Profile,
	lines []OrderLine,
	instructions string,
	deliveryFeeCents int64,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfile(profile),
		cmd.setLines(lines),
		cmd.setDeliveryFee(deliveryFeeCents),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Profile() customer.Profile          { return c.profile }
func (c PlaceOrderCommand) Instructions() string               { return c.instructions }
func (c PlaceOrderCommand) DeliveryFeeCents() int64            { return c.deliveryFeeCents }
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

// Lines returns a copy of the requested lines in request order.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setProfile(profile customer.Profile) error {
	if err := profile.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.profile = profile
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var lineErrs []error
	seen := make(map[kernel.UUID]int, len(lines))
	for i, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].menu_item_id", i), err))
			continue
		}
		if line.Quantity < order.MinQuantity || line.Quantity > order.MaxQuantity {
			lineErrs = append(lineErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i), line.Quantity, order.MinQuantity, order.MaxQuantity,
			))
		}
		if first, dup := seen[line.MenuItemID]; dup {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].menu_item_id", i),
				fmt.Errorf("menu item %s is already requested in items[%d]", line.MenuItemID, first),
			))
			continue
		}
		seen[line.MenuItemID] = i
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setDeliveryFee(cents int64) error {
	if _, err := kernel.NewMoney(cents); err != nil {
		return errs.NewValueIsOutOfRangeErrorWithCause("delivery_fee_cents", cents, 0, "unbounded", err)
	}
	c.deliveryFeeCents = cents
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method string) error {
	m, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}
	c.paymentMethod = m
	return nil
}
