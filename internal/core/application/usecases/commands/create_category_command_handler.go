package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/catalog"
)

// CreateCategoryCommandHandler stores a new active category.
// A duplicate name fails with errs.ConflictError.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) *CreateCategoryCommandHandler {
	return &CreateCategoryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_category_handler"),
	}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := catalog.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), cmd.Position())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CatalogRepository().AddCategory(ctx, category); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "category created", "category_id", category.ID().String(), "name", category.Name())
	return nil
}
