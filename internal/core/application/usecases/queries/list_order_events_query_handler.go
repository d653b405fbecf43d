package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrderEventsQueryHandler reads the audit trail of one order.
// Events sharing a timestamp are ordered by insertion, latest first.
type ListOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewListOrderEventsQueryHandler creates a handler for audit trail reads.
func NewListOrderEventsQueryHandler(db *gorm.DB) ListOrderEventsQueryHandler {
	return ListOrderEventsQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order number is unknown.
func (h ListOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderEventsQuery,
) ([]ListOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var orderID uuid.UUID
	err := db.Raw(`SELECT id FROM orders WHERE order_number = ?`, query.Number().String()).Row().Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.Number().String())
	}
	if err != nil {
		return nil, err
	}

	events := make([]ListOrderEventsQueryResponse, 0)

	rows, err := db.Raw(`
		SELECT
			from_status,
			to_status,
			at
		FROM order_status_events
		WHERE order_id = ?
		ORDER BY at DESC, id DESC
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event ListOrderEventsQueryResponse
		var from, to string

		if err = rows.Scan(&from, &to, &event.At); err != nil {
			return nil, err
		}

		if event.From, err = order.ParseStatus(from); err != nil {
			return nil, err
		}
		if event.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
