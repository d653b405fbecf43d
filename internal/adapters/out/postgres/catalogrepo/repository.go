package catalogrepo

import (
	"context"

	"foodorder/internal/adapters/out/postgres/dberrors"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderItemsTable holds the order lines that reference menu items.
const orderItemsTable = "order_items"

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a catalog repository on db, which may be a transaction.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddCategory saves a new category.
func (r *GormCatalogRepository) AddCategory(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return dberrors.Translate(err, "category name", dto.Name)
}

// GetCategory retrieves a category by ID.
func (r *GormCatalogRepository) GetCategory(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		return nil, dberrors.NotFound(err, "category", id.String())
	}

	return categoryToDomain(dto)
}

// DeleteCategory hard deletes a category. The foreign key clears menu_items.category_id.
func (r *GormCatalogRepository) DeleteCategory(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}
	return nil
}

// AddMenuItem saves a new menu item.
func (r *GormCatalogRepository) AddMenuItem(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error
	return dberrors.Translate(err, "menu item name", dto.Name)
}

// UpdateMenuItem writes every mutable column, including false and zero values.
func (r *GormCatalogRepository) UpdateMenuItem(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Select("category_id", "name", "description", "price_cents", "image_url", "is_available", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return dberrors.Translate(result.Error, "menu item name", dto.Name)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}
	return nil
}

// GetMenuItem retrieves a menu item by ID.
func (r *GormCatalogRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		return nil, dberrors.NotFound(err, "menu item", id.String())
	}

	return menuItemToDomain(dto)
}

// DeleteMenuItem hard deletes a menu item unless an order line references it.
// References are counted first. The RESTRICT foreign key still rejects lines
// inserted concurrently.
func (r *GormCatalogRepository) DeleteMenuItem(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var references int64
	err := r.db.WithContext(ctx).
		Table(orderItemsTable).
		Where("menu_item_id = ?", id.Value()).
		Count(&references).Error
	if err != nil {
		return err
	}
	if references > 0 {
		return errs.NewConflictError("menu item referenced by orders", id.String())
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return dberrors.Translate(result.Error, "menu item referenced by orders", id.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}
	return nil
}
