package customerrepo

import (
	"context"

	"foodorder/internal/adapters/out/postgres/dberrors"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a customer repository on db, which may be a transaction.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// AddIfAbsent inserts with ON CONFLICT (email) DO NOTHING, so concurrent placements
// for the same new email never fail; the loser simply inserts nothing.
func (r *GormCustomerRepository) AddIfAbsent(ctx context.Context, aggregate *customer.Customer) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, dberrors.Translate(result.Error, "email", dto.Email)
	}

	return result.RowsAffected == 1, nil
}

// Update saves profile fields and the active flag.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("full_name", "phone", "default_address", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.Email)
	}
	return nil
}

// GetByEmail retrieves a customer by exact email.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		return nil, dberrors.NotFound(err, "customer", email)
	}

	return toDomain(dto)
}
