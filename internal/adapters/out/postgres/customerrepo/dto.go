// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"time"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of the customers table.
type CustomerDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"size:254;not null;uniqueIndex"`
	FullName       string    `gorm:"size:120;not null"`
	Phone          string    `gorm:"size:20;not null"`
	DefaultAddress string    `gorm:"type:text;not null"`
	IsActive       bool      `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:             c.ID().Value(),
		Email:          c.Email(),
		FullName:       c.FullName(),
		Phone:          c.Phone(),
		DefaultAddress: c.DefaultAddress(),
		IsActive:       c.IsActive(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(id, dto.Email, dto.FullName, dto.Phone, dto.DefaultAddress, dto.IsActive)
}
