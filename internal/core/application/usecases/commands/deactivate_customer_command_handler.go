package commands

import (
	"context"
	"log/slog"
)

// DeactivateCustomerCommandHandler sets a customer's active flag to false.
// Deactivating an inactive customer succeeds without writing.
type DeactivateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	logger     *slog.Logger
}

func NewDeactivateCustomerCommandHandler(uowFactory CustomerUoWFactory, logger *slog.Logger) *DeactivateCustomerCommandHandler {
	return &DeactivateCustomerCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "deactivate_customer_handler"),
	}
}

// Handle returns errs.ObjectNotFoundError when no customer has the email.
func (h *DeactivateCustomerCommandHandler) Handle(ctx context.Context, cmd DeactivateCustomerCommand) error {
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

	repo := uow.CustomerRepository()
	c, err := repo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if !c.IsActive() {
		return nil
	}

	c.Deactivate()
	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "customer deactivated", "customer_email", c.Email())
	return nil
}
