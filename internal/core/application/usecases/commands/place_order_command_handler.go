package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// MaxOrderNumberAttempts bounds the search for an unused order number.
const MaxOrderNumberAttempts = 5

// OrderNumberSource produces candidate order numbers.
type OrderNumberSource interface {
	Next() (order.Number, error)
}

// PlaceOrderCommandHandler creates an order aggregate inside one transaction:
// customer upsert, line validation against the catalog, order number allocation,
// totals, payment stub and the creation event. Nothing is persisted on failure.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, taxPolicy, numbers, "USD", logger)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(placed.Number(), placed.Total())
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	taxPolicy  order.TaxPolicy
	numbers    OrderNumberSource
	currency   string
	logger     *slog.Logger
	now        func() time.Time
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// currency is recorded on the payment stub.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	taxPolicy order.TaxPolicy,
	numbers OrderNumberSource,
	currency string,
	logger *slog.Logger,
) *PlaceOrderCommandHandler {
	return &PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		taxPolicy:  taxPolicy,
		numbers:    numbers,
		currency:   currency,
		logger:     logger.With("component", "place_order_handler"),
		now:        time.Now,
	}
}

// Handle places the order and returns the fully populated aggregate.
//
// Errors:
//   - validation errors for unknown, inactive or unavailable menu items
//   - errs.ConflictError when no unused order number was found
//   - storage errors otherwise
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	customers := uow.CustomerRepository()
	menu := uow.CatalogRepository()
	orders := uow.OrderRepository()
	now := h.now().UTC()

	buyer, err := h.resolveCustomer(ctx, customers, cmd.Profile())
	if err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	prices, err := h.priceLines(ctx, menu, lines)
	if err != nil {
		return nil, err
	}

	number, err := h.allocateNumber(ctx, orders)
	if err != nil {
		return nil, err
	}

	fee, err := kernel.NewMoney(cmd.DeliveryFeeCents())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(kernel.NewUUID(), number, buyer.ID(), cmd.Instructions(), fee, now)
	if err != nil {
		return nil, err
	}

	for i, line := range lines {
		if err = placed.AddItem(kernel.NewUUID(), line.MenuItemID, line.Quantity, prices[i], now); err != nil {
			return nil, err
		}
	}

	if err = placed.RecalculateTotals(h.taxPolicy); err != nil {
		return nil, err
	}

	if err = placed.InitiatePayment(kernel.NewUUID(), cmd.PaymentMethod(), h.currency, now); err != nil {
		return nil, err
	}

	if err = orders.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order placed",
		"order_number", placed.Number().String(),
		"customer_email", buyer.Email(),
		"items", len(lines),
		"total_cents", placed.Total().Cents(),
	)

	return placed, nil
}

// resolveCustomer finds the customer by email or creates it, then merges the
// supplied profile. A concurrent insert of the same email is tolerated by re-reading.
func (h *PlaceOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	profile customer.Profile,
) (*customer.Customer, error) {
	existing, err := repo.GetByEmail(ctx, profile.Email())
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectNotFound):
		created, createErr := customer.NewCustomer(kernel.NewUUID(), profile)
		if createErr != nil {
			return nil, createErr
		}

		inserted, addErr := repo.AddIfAbsent(ctx, created)
		if addErr != nil {
			return nil, addErr
		}
		if inserted {
			h.logger.DebugContext(ctx, "customer created", "customer_email", created.Email())
			return created, nil
		}

		if existing, err = repo.GetByEmail(ctx, profile.Email()); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if existing.Merge(profile) {
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
	}

	return existing, nil
}

// priceLines returns the current price of every line's menu item, failing with the
// joined validation errors of all lines that cannot be ordered.
func (h *PlaceOrderCommandHandler) priceLines(
	ctx context.Context,
	menu ports.CatalogRepository,
	lines []OrderLine,
) ([]kernel.Money, error) {
	prices := make([]kernel.Money, len(lines))
	var lineErrs []error

	for i, line := range lines {
		field := fmt.Sprintf("items[%d].menu_item_id", i)

		item, err := menu.GetMenuItem(ctx, line.MenuItemID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(field, err))
			continue
		}
		if err != nil {
			return nil, err
		}

		if !item.IsOrderable() {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				field,
				fmt.Errorf("menu item %q is not available", item.Name()),
			))
			continue
		}

		prices[i] = item.Price()
	}

	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}
	return prices, nil
}

func (h *PlaceOrderCommandHandler) allocateNumber(ctx context.Context, orders ports.OrderRepository) (order.Number, error) {
	for range MaxOrderNumberAttempts {
		number, err := h.numbers.Next()
		if err != nil {
			return order.Number{}, err
		}

		taken, err := orders.ExistsByNumber(ctx, number)
		if err != nil {
			return order.Number{}, err
		}
		if !taken {
			return number, nil
		}

		h.logger.WarnContext(ctx, "order number collision", "order_number", number.String())
	}

	return order.Number{}, errs.NewConflictError(
		"order number",
		fmt.Sprintf("no unused number after %d attempts", MaxOrderNumberAttempts),
	)
}
