package commands

import (
	"context"
	"log/slog"
)

// UpdateMenuItemCommandHandler applies partial changes to a menu item.
// Returns errs.ObjectNotFoundError when the menu item does not exist.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
	logger     *slog.Logger
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory, logger *slog.Logger) *UpdateMenuItemCommandHandler {
	return &UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_menu_item_handler"),
	}
}

// Handle processes the menu item update command.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	repo := uow.CatalogRepository()
	item, err := repo.GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if price := cmd.Price(); price != nil {
		item.ChangePrice(*price)
	}
	if available := cmd.Available(); available != nil {
		item.SetAvailable(*available)
	}
	if active := cmd.Active(); active != nil {
		item.SetActive(*active)
	}

	if err = repo.UpdateMenuItem(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "menu item updated",
		"menu_item_id", item.ID().String(),
		"price_cents", item.Price().Cents(),
		"available", item.IsAvailable(),
		"active", item.IsActive(),
	)
	return nil
}
