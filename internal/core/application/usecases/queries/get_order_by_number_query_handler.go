package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler reads the order detail view.
// Returns errs.ObjectNotFoundError when the number is unknown.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order detail reads.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the order detail read. Lines are returned in placement order.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (*GetOrderByNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	details, err := h.readOrder(db, query.Number())
	if err != nil {
		return nil, err
	}

	if details.Items, err = h.readItems(db, details.ID); err != nil {
		return nil, err
	}

	if details.Payment, err = h.readPayment(db, details.ID); err != nil {
		return nil, err
	}

	return details, nil
}

func (h GetOrderByNumberQueryHandler) readOrder(db *gorm.DB, number order.Number) (*GetOrderByNumberQueryResponse, error) {
	var details GetOrderByNumberQueryResponse
	var id uuid.UUID
	var status string
	var subtotal, tax, fee, total int64
	var eta sql.NullTime

	err := db.Raw(`
		SELECT
			o.id,
			o.order_number,
			o.status,
			c.email,
			c.full_name,
			o.special_instructions,
			o.subtotal_cents,
			o.tax_cents,
			o.delivery_fee_cents,
			o.total_cents,
			o.eta,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.order_number = ?
	`, number.String()).Row().Scan(
		&id,
		&details.Number,
		&status,
		&details.CustomerEmail,
		&details.CustomerName,
		&details.Instructions,
		&subtotal,
		&tax,
		&fee,
		&total,
		&eta,
		&details.CreatedAt,
		&details.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", number.String())
	}
	if err != nil {
		return nil, err
	}

	if details.ID, err = kernel.UUIDFrom(id); err != nil {
		return nil, err
	}
	if details.Status, err = order.ParseStatus(status); err != nil {
		return nil, err
	}
	if eta.Valid {
		details.ETA = &eta.Time
	}

	amounts := []struct {
		cents int64
		dst   *kernel.Money
	}{
		{subtotal, &details.Subtotal},
		{tax, &details.Tax},
		{fee, &details.DeliveryFee},
		{total, &details.Total},
	}
	for _, a := range amounts {
		if *a.dst, err = kernel.NewMoney(a.cents); err != nil {
			return nil, err
		}
	}

	return &details, nil
}

func (h GetOrderByNumberQueryHandler) readItems(db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := db.Raw(`
		SELECT
			i.id,
			i.menu_item_id,
			m.name,
			i.quantity,
			i.unit_price_cents
		FROM order_items i
		JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ?
		ORDER BY i.line_no
	`, orderID.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, menuItemID uuid.UUID
		var unitPriceCents int64

		err = rows.Scan(
			&id,
			&menuItemID,
			&item.MenuItemName,
			&item.Quantity,
			&unitPriceCents,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFrom(menuItemID); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPriceCents); err != nil {
			return nil, err
		}
		if item.LineTotal, err = item.UnitPrice.Times(item.Quantity); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (h GetOrderByNumberQueryHandler) readPayment(db *gorm.DB, orderID kernel.UUID) (*PaymentResponse, error) {
	var payment PaymentResponse
	var method, status string
	var amountCents int64

	err := db.Raw(`
		SELECT
			method,
			status,
			amount_cents,
			currency,
			processor_ref
		FROM payments
		WHERE order_id = ?
	`, orderID.Value()).Row().Scan(
		&method,
		&status,
		&amountCents,
		&payment.Currency,
		&payment.ProcessorRef,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // an order without a payment stub has no payment view
	}
	if err != nil {
		return nil, err
	}

	payment.Method = order.PaymentMethod(method)
	payment.Status = order.PaymentStatus(status)
	if payment.Amount, err = kernel.NewMoney(amountCents); err != nil {
		return nil, err
	}

	return &payment, nil
}
