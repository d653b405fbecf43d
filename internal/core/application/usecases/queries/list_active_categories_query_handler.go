package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListActiveCategoriesQueryHandler reads active categories ordered by position, then name.
type ListActiveCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListActiveCategoriesQueryHandler creates a handler for category listing.
func NewListActiveCategoriesQueryHandler(db *gorm.DB) ListActiveCategoriesQueryHandler {
	return ListActiveCategoriesQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when no category is active.
func (h ListActiveCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListActiveCategoriesQuery,
) ([]ListActiveCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]ListActiveCategoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			position
		FROM categories
		WHERE is_active = ?
		ORDER BY position, name
	`, true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category ListActiveCategoriesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&category.Name,
			&category.Description,
			&category.Position,
		)
		if err != nil {
			return nil, err
		}

		if category.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
