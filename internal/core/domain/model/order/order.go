package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrPaymentAlreadyInitiated is returned when InitiatePayment is called twice.
	ErrPaymentAlreadyInitiated = errors.New("payment is already initiated for this order")
)

// TaxPolicy computes the tax owed on an order subtotal.
type TaxPolicy interface {
	Tax(subtotal kernel.Money) kernel.Money
}

// Order represents a customer order. It is the aggregate root owning the line items,
// the payment stub and the status audit trail.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number and customer reference
//   - Status is always one of the enumerated statuses
//   - Line items reference distinct menu items with quantities in [1, 100]
//   - total = subtotal + tax + deliveryFee once RecalculateTotals has run
//   - Effective status changes are recorded as pending StatusEvents until persisted
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the customer facing order reference
	number Number

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// instructions is free text from the customer
	instructions string

	// items are the order lines, in placement order
	items []*Item

	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money

	// eta is the optional estimated completion time
	eta *time.Time

	// payment is the stub created at placement (nil until InitiatePayment)
	payment *Payment

	// pendingEvents are status events not yet written to the audit trail
	pendingEvents []StatusEvent

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new PENDING Order with no lines. It records the creation
// event (PENDING → PENDING) as the first pending status event.
//
// Parameters:
//   - id: Unique identifier for the order
//   - number: Generated order number
//   - customerID: The customer placing the order
//   - instructions: Optional free text
//   - deliveryFee: Flat fee added to the total
//   - now: Creation time, used for timestamps and the creation event
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Joined validation errors otherwise
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	instructions string,
	deliveryFee kernel.Money,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		customerID.Validate(),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		status:        Pending,
		instructions:  instructions,
		deliveryFee:   deliveryFee,
		total:         deliveryFee,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	o.pendingEvents = append(o.pendingEvents, StatusEvent{From: Pending, To: Pending, At: now})

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID           kernel.UUID
	Number       Number
	CustomerID   kernel.UUID
	Status       Status
	Instructions string
	Items        []*Item
	Subtotal     kernel.Money
	Tax          kernel.Money
	DeliveryFee  kernel.Money
	Total        kernel.Money
	ETA          *time.Time
	Payment      *Payment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestoreOrder rebuilds an order loaded from persistence. Stored totals are kept
// as they are; no events are pending on a restored order.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.Number.Validate(),
		s.CustomerID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            s.ID,
		number:        s.Number,
		customerID:    s.CustomerID,
		status:        s.Status,
		instructions:  s.Instructions,
		items:         s.Items,
		subtotal:      s.Subtotal,
		tax:           s.Tax,
		deliveryFee:   s.DeliveryFee,
		total:         s.Total,
		eta:           s.ETA,
		payment:       s.Payment,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) Number() Number            { return o.number }
func (o *Order) CustomerID() kernel.UUID   { return o.customerID }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Instructions() string      { return o.instructions }
func (o *Order) Subtotal() kernel.Money    { return o.subtotal }
func (o *Order) Tax() kernel.Money         { return o.tax }
func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }
func (o *Order) Total() kernel.Money       { return o.total }
func (o *Order) ETA() *time.Time           { return o.eta }
func (o *Order) Payment() *Payment         { return o.payment }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

// Items returns a copy of the line slice.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a line capturing unitPrice as the price snapshot.
//
// This method enforces the following business rules:
//   - quantity must be within [MinQuantity, MaxQuantity]
//   - the order may hold at most one line per menu item
//
// Totals are not updated; call RecalculateTotals after the last line is added.
func (o *Order) AddItem(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, now time.Time) error {
	for _, existing := range o.items {
		if existing.menuItemID.IsEqual(menuItemID) {
			return errs.NewValueIsInvalidErrorWithCause(
				"menu item id",
				fmt.Errorf("%s appears in more than one line", menuItemID),
			)
		}
	}

	item, err := RestoreItem(id, menuItemID, quantity, unitPrice, now)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RecalculateTotals recomputes subtotal, tax and total from the current lines.
// It depends only on the lines, the delivery fee and the policy, so repeated calls
// yield identical results.
//
// When a sum exceeds the int64 cents range it returns errs.ValueIsOutOfRangeError
// and leaves the previous totals in place.
func (o *Order) RecalculateTotals(policy TaxPolicy) error {
	subtotal := kernel.Zero()
	for _, item := range o.items {
		next, err := subtotal.Add(item.LineTotal())
		if err != nil {
			return errs.NewValueIsOutOfRangeErrorWithCause("subtotal", subtotal.Cents(), 0, "int64 cents", err)
		}
		subtotal = next
	}

	tax := policy.Tax(subtotal)
	total, err := subtotal.Add(tax)
	if err == nil {
		total, err = total.Add(o.deliveryFee)
	}
	if err != nil {
		return errs.NewValueIsOutOfRangeErrorWithCause("total", subtotal.Cents(), 0, "int64 cents", err)
	}

	o.subtotal = subtotal
	o.tax = tax
	o.total = total
	return nil
}

// InitiatePayment creates the payment stub for the current total in INITIATED status.
// It must be called after RecalculateTotals and only once per order.
func (o *Order) InitiatePayment(id kernel.UUID, method PaymentMethod, currency string, now time.Time) error {
	if o.payment != nil {
		return ErrPaymentAlreadyInitiated
	}
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	payment, err := RestorePayment(id, method, o.total, currency, PaymentStatusInitiated, "", now)
	if err != nil {
		return err
	}

	o.payment = payment
	return nil
}

// TransitionTo moves the order to status.
//
// Any enumerated status is accepted from any other status. Setting the current
// status again changes nothing and records no event.
//
// Returns:
//   - (true, nil) when the status changed and an event was recorded
//   - (false, nil) when status equals the current status
//   - (false, error) when status is not a valid enumerated value
func (o *Order) TransitionTo(status Status, at time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if status == o.status {
		return false, nil
	}

	o.pendingEvents = append(o.pendingEvents, StatusEvent{From: o.status, To: status, At: at})
	o.status = status
	o.updatedAt = at
	return true, nil
}

// PendingEvents returns status events recorded since the order was created or
// restored and not yet cleared.
func (o *Order) PendingEvents() []StatusEvent {
	events := make([]StatusEvent, len(o.pendingEvents))
	copy(events, o.pendingEvents)
	return events
}

// ClearPendingEvents is called by the repository once events are stored.
func (o *Order) ClearPendingEvents() {
	o.pendingEvents = nil
}
