package customer

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a person who places orders. Email is the natural key.
type Customer struct {
	id       kernel.UUID
	email    string
	fullName string
	phone    string
	address  string
	active   bool

	isConstructed bool
}

// NewCustomer creates an active customer from a validated profile.
func NewCustomer(id kernel.UUID, profile Profile) (*Customer, error) {
	if err := errors.Join(id.Validate(), profile.Validate()); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		email:         profile.Email(),
		fullName:      profile.FullName(),
		phone:         profile.Phone(),
		address:       profile.Address(),
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreCustomer rebuilds a customer loaded from persistence. Stored values are trusted.
func RestoreCustomer(id kernel.UUID, email, fullName, phone, address string, active bool) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		email:         email,
		fullName:      fullName,
		phone:         phone,
		address:       address,
		active:        active,
		isConstructed: true,
	}, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID        { return c.id }
func (c *Customer) Email() string          { return c.email }
func (c *Customer) FullName() string       { return c.fullName }
func (c *Customer) Phone() string          { return c.phone }
func (c *Customer) DefaultAddress() string { return c.address }
func (c *Customer) IsActive() bool         { return c.active }

// Merge copies non-empty profile fields that differ from the stored ones.
// Email is never changed. It reports whether anything was modified.
func (c *Customer) Merge(profile Profile) bool {
	changed := false

	if v := profile.FullName(); v != "" && v != c.fullName {
		c.fullName = v
		changed = true
	}
	if v := profile.Phone(); v != "" && v != c.phone {
		c.phone = v
		changed = true
	}
	if v := profile.Address(); v != "" && v != c.address {
		c.address = v
		changed = true
	}

	return changed
}

// Deactivate marks the customer inactive. Existing orders keep referencing it.
func (c *Customer) Deactivate() {
	c.active = false
}
