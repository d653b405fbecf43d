package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListOrderEventsQueryIsNotConstructed = errors.New(
		"ListOrderEventsQuery must be created via NewListOrderEventsQuery constructor",
	)
)

// ListOrderEventsQuery retrieves the status audit trail of an order, newest first.
type ListOrderEventsQuery struct {
	number order.Number

	guard guard.ConstructorGuard
}

// NewListOrderEventsQuery validates the order number format.
func NewListOrderEventsQuery(number string) (ListOrderEventsQuery, error) {
	n, err := order.NewNumber(number)
	if err != nil {
		return ListOrderEventsQuery{}, err
	}
	return ListOrderEventsQuery{number: n, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderEventsQueryIsNotConstructed)
}

// Number returns the requested order number.
func (q ListOrderEventsQuery) Number() order.Number {
	return q.number
}

// ListOrderEventsQueryResponse is one audit entry.
type ListOrderEventsQueryResponse struct {
	From order.Status
	To   order.Status
	At   time.Time
}
