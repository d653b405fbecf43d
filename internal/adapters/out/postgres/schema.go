package postgres

import (
	"fmt"

	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/customerrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MenuItemDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.StatusEventDTO{},
	}
}

// Migrate creates or updates all tables, indexes and constraints.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// TableNames lists the tables created by Migrate, children first.
func TableNames() []string {
	return []string{
		"order_status_events",
		"payments",
		"order_items",
		"orders",
		"customers",
		"menu_items",
		"categories",
	}
}
