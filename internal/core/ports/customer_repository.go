package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers, keyed by email.
type CustomerRepository interface {
	// AddIfAbsent inserts the customer unless one with the same email already exists.
	// It reports whether a row was inserted and never fails on an email conflict.
	AddIfAbsent(ctx context.Context, aggregate *customer.Customer) (bool, error)

	// Update persists profile fields and the active flag of an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// GetByEmail matches email exactly (case-sensitive).
	// Returns errs.ObjectNotFoundError when no customer has that email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
