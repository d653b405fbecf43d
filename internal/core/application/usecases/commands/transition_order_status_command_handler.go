package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler changes an order's status and appends the
// audit event in the same transaction. Requesting the current status is a no-op:
// nothing is written and the order is returned unchanged.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewTransitionOrderStatusCommandHandler creates a handler for status transitions.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) *TransitionOrderStatusCommandHandler {
	return &TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "transition_order_status_handler"),
		now:        time.Now,
	}
}

// Handle applies the transition and returns the order in its resulting state.
// Returns errs.ObjectNotFoundError when the order number is unknown.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	target, err := orders.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	from := target.Status()
	changed, err := target.TransitionTo(cmd.Status(), h.now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		return target, nil
	}

	if err = orders.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_number", target.Number().String(),
		"from", from.String(),
		"to", target.Status().String(),
	)

	return target, nil
}
