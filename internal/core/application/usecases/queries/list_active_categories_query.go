// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrListActiveCategoriesQueryIsNotConstructed = errors.New(
		"ListActiveCategoriesQuery must be created via NewListActiveCategoriesQuery constructor",
	)
)

// ListActiveCategoriesQuery retrieves the categories shown on the menu.
//
// Example:
//
//	query := NewListActiveCategoriesQuery()
//	handler := NewListActiveCategoriesQueryHandler(db)
//
//	categories, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list categories: %w", err)
//	}
type ListActiveCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListActiveCategoriesQuery creates a parameterless category listing query.
func NewListActiveCategoriesQuery() ListActiveCategoriesQuery {
	return ListActiveCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListActiveCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListActiveCategoriesQueryIsNotConstructed)
}

// ListActiveCategoriesQueryResponse is the category read model.
type ListActiveCategoriesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Position    int
}
