// Package catalogrepo persists categories and menu items with GORM.
package catalogrepo

import (
	"time"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO is the row of the categories table.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex;index:idx_categories_position_name,priority:2"`
	Description string    `gorm:"type:text;not null"`
	Position    int       `gorm:"not null;index:idx_categories_position_name,priority:1"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO is the row of the menu_items table. Deleting a category clears CategoryID.
type MenuItemDTO struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CategoryID  *uuid.UUID   `gorm:"type:uuid;uniqueIndex:idx_menu_items_category_name,priority:1"`
	Category    *CategoryDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Name        string       `gorm:"size:150;not null;index;uniqueIndex:idx_menu_items_category_name,priority:2"`
	Description string       `gorm:"type:text;not null"`
	PriceCents  int64        `gorm:"not null;check:chk_menu_items_price_cents,price_cents >= 0"`
	ImageURL    string       `gorm:"size:500;not null"`
	IsAvailable bool         `gorm:"not null;index"`
	IsActive    bool         `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID().Value(),
		Name:        c.Name(),
		Description: c.Description(),
		Position:    c.Position(),
		IsActive:    c.IsActive(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreCategory(id, dto.Name, dto.Description, dto.Position, dto.IsActive)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	var categoryID *uuid.UUID
	if id := m.CategoryID(); id != nil {
		raw := id.Value()
		categoryID = &raw
	}

	return MenuItemDTO{
		ID:          m.ID().Value(),
		CategoryID:  categoryID,
		Name:        m.Name(),
		Description: m.Description(),
		PriceCents:  m.Price().Cents(),
		ImageURL:    m.ImageURL(),
		IsAvailable: m.IsAvailable(),
		IsActive:    m.IsActive(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFrom(*dto.CategoryID)
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryID = &cID
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(id, categoryID, catalog.MenuItemDetails{
		Name:        dto.Name,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
	}, price, dto.IsAvailable, dto.IsActive)
}
