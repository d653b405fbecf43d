package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand moves an order, identified by its number, to a new status.
// The status code must be one of the enumerated wire codes, e.g. "CONFIRMED".
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	number order.Number
	status order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand parses and validates the order number and status code.
func NewTransitionOrderStatusCommand(number, status string) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setStatus(status),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// Number returns the order number.
func (c TransitionOrderStatusCommand) Number() order.Number {
	return c.number
}

// Status returns the requested status.
func (c TransitionOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *TransitionOrderStatusCommand) setNumber(number string) error {
	n, err := order.NewNumber(number)
	if err != nil {
		return err
	}
	c.number = n
	return nil
}

func (c *TransitionOrderStatusCommand) setStatus(status string) error {
	s, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
