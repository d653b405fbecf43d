package commands

import (
	"context"
	"log/slog"

	"foodorder/internal/core/domain/model/catalog"
)

// CreateMenuItemCommandHandler stores a new active menu item.
//
// Errors:
//   - errs.ObjectNotFoundError when the category does not exist
//   - errs.ConflictError when the category already has an item with that name
type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) *CreateMenuItemCommandHandler {
	return &CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_menu_item_handler"),
	}
}

// Handle processes the menu item creation command.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewMenuItem(cmd.MenuItemID(), cmd.CategoryID(), cmd.Details(), cmd.Price(), cmd.Available())
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

	repo := uow.CatalogRepository()
	if categoryID := cmd.CategoryID(); categoryID != nil {
		if _, err = repo.GetCategory(ctx, *categoryID); err != nil {
			return err
		}
	}

	if err = repo.AddMenuItem(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "menu item created",
		"menu_item_id", item.ID().String(),
		"name", item.Name(),
		"price_cents", item.Price().Cents(),
	)
	return nil
}
