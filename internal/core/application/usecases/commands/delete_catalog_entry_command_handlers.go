package commands

import (
	"context"
	"log/slog"
)

// DeleteCategoryCommandHandler hard deletes a category.
// Returns errs.ObjectNotFoundError when the category does not exist.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) *DeleteCategoryCommandHandler {
	return &DeleteCategoryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_category_handler"),
	}
}

func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CatalogRepository().DeleteCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "category deleted", "category_id", cmd.CategoryID().String())
	return nil
}

// DeleteMenuItemCommandHandler hard deletes a menu item.
//
// Errors:
//   - errs.ObjectNotFoundError when the menu item does not exist
//   - errs.ConflictError while any order line references the item
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) *DeleteMenuItemCommandHandler {
	return &DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_menu_item_handler"),
	}
}

func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CatalogRepository().DeleteMenuItem(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "menu item deleted", "menu_item_id", cmd.MenuItemID().String())
	return nil
}
