package commands

import (
	"errors"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrDeactivateCustomerCommandIsNotConstructed = errors.New(
	"DeactivateCustomerCommand must be created via NewDeactivateCustomerCommand constructor",
)

// DeactivateCustomerCommand marks a customer inactive. Customers are never deleted.
type DeactivateCustomerCommand struct {
	email string

	guard guard.ConstructorGuard
}

func NewDeactivateCustomerCommand(email string) (DeactivateCustomerCommand, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return DeactivateCustomerCommand{}, errs.NewValueIsRequiredError("email")
	}
	return DeactivateCustomerCommand{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateCustomerCommandIsNotConstructed)
}

func (c DeactivateCustomerCommand) Email() string {
	return c.email
}
