// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between the aggregate (order, items, payment, status events) and its tables.
package orderrepo

import (
	"time"

	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the orders table. Items, payment and events are owned rows
// removed together with the order; the customer reference blocks customer deletion.
type OrderDTO struct {
	ID                  uuid.UUID                `gorm:"type:uuid;primaryKey"`
	OrderNumber         string                   `gorm:"size:20;not null;uniqueIndex"`
	CustomerID          uuid.UUID                `gorm:"type:uuid;not null;index"`
	Customer            customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Status              string                   `gorm:"size:20;not null;index"`
	SpecialInstructions string                   `gorm:"type:text;not null"`
	SubtotalCents       int64                    `gorm:"not null;check:chk_orders_subtotal_cents,subtotal_cents >= 0"`
	TaxCents            int64                    `gorm:"not null;check:chk_orders_tax_cents,tax_cents >= 0"`
	DeliveryFeeCents    int64                    `gorm:"not null;check:chk_orders_delivery_fee_cents,delivery_fee_cents >= 0"`
	TotalCents          int64                    `gorm:"not null;check:chk_orders_total_cents,total_cents >= 0"`
	ETA                 *time.Time
	Items               []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment             *PaymentDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events              []StatusEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time        `gorm:"index"`
	UpdatedAt           time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents an order line. LineNo keeps the placement order.
type OrderItemDTO struct {
	ID             uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_menu_item,priority:1"`
	MenuItemID     uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_menu_item,priority:2"`
	MenuItem       catalogrepo.MenuItemDTO `gorm:"foreignKey:MenuItemID;constraint:OnDelete:RESTRICT"`
	LineNo         int                     `gorm:"not null"`
	Quantity       int                     `gorm:"not null;check:chk_order_items_quantity,quantity BETWEEN 1 AND 100"`
	UnitPriceCents int64                   `gorm:"not null;check:chk_order_items_unit_price_cents,unit_price_cents >= 0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// PaymentDTO represents the payment stub, one per order.
type PaymentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Method       string    `gorm:"size:20;not null"`
	AmountCents  int64     `gorm:"not null;check:chk_payments_amount_cents,amount_cents >= 0"`
	Currency     string    `gorm:"size:10;not null"`
	Status       string    `gorm:"size:20;not null;index"`
	ProcessorRef string    `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PaymentDTO) TableName() string {
	return "payments"
}

// StatusEventDTO is an append-only audit row. The serial ID orders events that share a timestamp.
type StatusEventDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_order_status_events_order_at,priority:1"`
	FromStatus string    `gorm:"size:20;not null"`
	ToStatus   string    `gorm:"size:20;not null"`
	At         time.Time `gorm:"not null;index:idx_order_status_events_order_at,priority:2"`
	CreatedAt  time.Time
}

func (StatusEventDTO) TableName() string {
	return "order_status_events"
}

// fromDomain converts the aggregate root columns. Items, payment and events are
// converted separately so they can be written explicitly.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  o.ID().Value(),
		OrderNumber:         o.Number().String(),
		CustomerID:          o.CustomerID().Value(),
		Status:              o.Status().String(),
		SpecialInstructions: o.Instructions(),
		SubtotalCents:       o.Subtotal().Cents(),
		TaxCents:            o.Tax().Cents(),
		DeliveryFeeCents:    o.DeliveryFee().Cents(),
		TotalCents:          o.Total().Cents(),
		ETA:                 o.ETA(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
}

func itemsFromDomain(o *order.Order) []OrderItemDTO {
	items := o.Items()
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, OrderItemDTO{
			ID:             item.ID().Value(),
			OrderID:        o.ID().Value(),
			MenuItemID:     item.MenuItemID().Value(),
			LineNo:         i + 1,
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
			CreatedAt:      item.CreatedAt(),
			UpdatedAt:      item.CreatedAt(),
		})
	}
	return dtos
}

func paymentFromDomain(o *order.Order) *PaymentDTO {
	p := o.Payment()
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		ID:           p.ID().Value(),
		OrderID:      o.ID().Value(),
		Method:       string(p.Method()),
		AmountCents:  p.Amount().Cents(),
		Currency:     p.Currency(),
		Status:       string(p.Status()),
		ProcessorRef: p.ProcessorRef(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.CreatedAt(),
	}
}

func eventsFromDomain(o *order.Order) []StatusEventDTO {
	events := o.PendingEvents()
	dtos := make([]StatusEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, StatusEventDTO{
			OrderID:    o.ID().Value(),
			FromStatus: e.From.String(),
			ToStatus:   e.To.String(),
			At:         e.At,
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate from an order row with preloaded items and payment.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	number, err := order.NewNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var payment *order.Payment
	if dto.Payment != nil {
		if payment, err = paymentToDomain(*dto.Payment); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		Number:       number,
		CustomerID:   customerID,
		Status:       status,
		Instructions: dto.SpecialInstructions,
		Items:        items,
		Subtotal:     mustMoney(dto.SubtotalCents),
		Tax:          mustMoney(dto.TaxCents),
		DeliveryFee:  mustMoney(dto.DeliveryFeeCents),
		Total:        mustMoney(dto.TotalCents),
		ETA:          dto.ETA,
		Payment:      payment,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFrom(dto.MenuItemID)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, menuItemID, dto.Quantity, mustMoney(dto.UnitPriceCents), dto.CreatedAt)
}

func paymentToDomain(dto PaymentDTO) (*order.Payment, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return order.RestorePayment(
		id,
		order.PaymentMethod(dto.Method),
		mustMoney(dto.AmountCents),
		dto.Currency,
		order.PaymentStatus(dto.Status),
		dto.ProcessorRef,
		dto.CreatedAt,
	)
}

// mustMoney trusts stored amounts; the check constraints keep them non-negative.
func mustMoney(cents int64) kernel.Money {
	m, err := kernel.NewMoney(cents)
	if err != nil {
		return kernel.Zero()
	}
	return m
}
