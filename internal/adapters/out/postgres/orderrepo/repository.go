package orderrepo

import (
	"context"

	"foodorder/internal/adapters/out/postgres/dberrors"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its items, payment and pending status events.
// Owned rows are inserted table by table, never through association upserts.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberrors.Translate(err, "order number", dto.OrderNumber)
	}

	if items := itemsFromDomain(aggregate); len(items) > 0 {
		if err := db.Omit(clause.Associations).Create(&items).Error; err != nil {
			return dberrors.Translate(err, "order item", dto.OrderNumber)
		}
	}

	if payment := paymentFromDomain(aggregate); payment != nil {
		if err := db.Create(payment).Error; err != nil {
			return dberrors.Translate(err, "payment", dto.OrderNumber)
		}
	}

	if err := r.appendEvents(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves status, totals and timestamps and appends pending status events.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)
	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":             dto.Status,
		"subtotal_cents":     dto.SubtotalCents,
		"tax_cents":          dto.TaxCents,
		"delivery_fee_cents": dto.DeliveryFeeCents,
		"total_cents":        dto.TotalCents,
		"eta":                dto.ETA,
		"updated_at":         dto.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.OrderNumber)
	}

	if err := r.appendEvents(db, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves the aggregate with items in placement order and its payment.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_no") }).
		Preload("Payment").
		First(&dto, "order_number = ?", number.String()).Error
	if err != nil {
		return nil, dberrors.NotFound(err, "order", number.String())
	}

	return toDomain(dto)
}

// ExistsByNumber reports whether the order number is taken.
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, number order.Number) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("order_number = ?", number.String()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormOrderRepository) appendEvents(db *gorm.DB, aggregate *order.Order) error {
	events := eventsFromDomain(aggregate)
	if len(events) == 0 {
		return nil
	}
	return db.Create(&events).Error
}
