// Package order contains the Order aggregate and its owned entities.
//
// An Order owns its line items, its payment stub and its status audit trail. All of
// them are created and mutated together through the aggregate root so the monetary
// invariants always hold:
//
//	subtotal = Σ item.quantity × item.unit_price
//	total    = subtotal + tax + delivery_fee
//
// Key business rules:
//   - A new order starts in PENDING and records a PENDING → PENDING creation event
//   - Line quantities are within [1, 100]; one line per menu item
//   - Unit prices are snapshots taken at placement and never follow catalog changes
//   - Totals are recomputed explicitly with RecalculateTotals after line mutations
//   - Amounts that overflow int64 cents are rejected, never wrapped
//   - Any status may follow any other; setting the current status again is a no-op
//   - Every effective status change appends exactly one StatusEvent
//
// Usage:
//
//	o, err := order.NewOrder(kernel.NewUUID(), number, customerID, "no onions", fee, now)
//	if err != nil {
//	    return err
//	}
//	if err := o.AddItem(kernel.NewUUID(), menuItem.ID(), 3, menuItem.Price(), now); err != nil {
//	    return err
//	}
//	if err := o.RecalculateTotals(taxPolicy); err != nil {
//	    return err
//	}
//	changed, err := o.TransitionTo(order.Confirmed, now)
package order
