package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
)

// GetOrderByNumberQuery retrieves one order with its customer, lines and payment.
//
// Example:
//
//	query, err := NewGetOrderByNumberQuery("AB12CD34EF")
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
type GetOrderByNumberQuery struct {
	number order.Number

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery validates the order number format.
func NewGetOrderByNumberQuery(number string) (GetOrderByNumberQuery, error) {
	n, err := order.NewNumber(number)
	if err != nil {
		return GetOrderByNumberQuery{}, err
	}
	return GetOrderByNumberQuery{number: n, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the requested order number.
func (q GetOrderByNumberQuery) Number() order.Number {
	return q.number
}

// GetOrderByNumberQueryResponse is the order detail read model.
type GetOrderByNumberQueryResponse struct {
	ID            kernel.UUID
	Number        string
	Status        order.Status
	CustomerEmail string
	CustomerName  string
	Instructions  string
	Subtotal      kernel.Money
	Tax           kernel.Money
	DeliveryFee   kernel.Money
	Total         kernel.Money
	ETA           *time.Time
	Items         []OrderItemResponse
	Payment       *PaymentResponse
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItemResponse is one order line with the menu item's current name.
type OrderItemResponse struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	Quantity     int
	UnitPrice    kernel.Money
	LineTotal    kernel.Money
}

// PaymentResponse is the payment stub of an order.
type PaymentResponse struct {
	Method       order.PaymentMethod
	Status       order.PaymentStatus
	Amount       kernel.Money
	Currency     string
	ProcessorRef string
}
