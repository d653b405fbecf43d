package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always written together with its items, payment and pending status events.
type OrderRepository interface {
	// Add persists a new order aggregate with its items, payment and pending events.
	// A duplicate order number yields errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, totals and timestamps of an existing order and appends
	// its pending status events.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves the complete aggregate by its order number.
	// Returns errs.ObjectNotFoundError when no order has that number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// ExistsByNumber reports whether an order with the given number is stored.
	ExistsByNumber(ctx context.Context, number order.Number) (bool, error)
}
