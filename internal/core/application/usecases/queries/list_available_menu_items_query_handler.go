package queries

import (
	"context"
	"strings"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableMenuItemsQueryHandler reads active, available menu items ordered by
// category position, then item name. Uncategorised items come last.
type ListAvailableMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableMenuItemsQueryHandler creates a handler for menu listing.
func NewListAvailableMenuItemsQueryHandler(db *gorm.DB) ListAvailableMenuItemsQueryHandler {
	return ListAvailableMenuItemsQueryHandler{db: db}
}

// Handle executes the menu listing.
func (h ListAvailableMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableMenuItemsQuery,
) ([]ListAvailableMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			m.id,
			m.category_id,
			m.name,
			m.description,
			m.price_cents,
			m.image_url
		FROM menu_items m
		LEFT JOIN categories c ON c.id = m.category_id
		WHERE m.is_active = ? AND m.is_available = ?`)
	args := []any{true, true}

	if categoryID := query.CategoryID(); categoryID != nil {
		sql.WriteString(` AND m.category_id = ?`)
		args = append(args, categoryID.Value())
	}
	sql.WriteString(`
		ORDER BY c.position IS NULL, c.position, m.name`)

	items := make([]ListAvailableMenuItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListAvailableMenuItemsQueryResponse
		var id uuid.UUID
		var categoryID uuid.NullUUID
		var priceCents int64

		err = rows.Scan(
			&id,
			&categoryID,
			&item.Name,
			&item.Description,
			&priceCents,
			&item.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			category, idErr := kernel.UUIDFrom(categoryID.UUID)
			if idErr != nil {
				return nil, idErr
			}
			item.CategoryID = &category
		}
		if item.Price, err = kernel.NewMoney(priceCents); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
