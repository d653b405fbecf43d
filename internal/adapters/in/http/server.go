package http

import (
	"log/slog"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use case handlers served over HTTP.
type Handlers struct {
	// Command handlers
	PlaceOrder         *commands.PlaceOrderCommandHandler
	TransitionStatus   *commands.TransitionOrderStatusCommandHandler
	CreateCategory     *commands.CreateCategoryCommandHandler
	DeleteCategory     *commands.DeleteCategoryCommandHandler
	CreateMenuItem     *commands.CreateMenuItemCommandHandler
	UpdateMenuItem     *commands.UpdateMenuItemCommandHandler
	DeleteMenuItem     *commands.DeleteMenuItemCommandHandler
	DeactivateCustomer *commands.DeactivateCustomerCommandHandler

	// Query handlers
	ListCategories  queries.ListActiveCategoriesQueryHandler
	ListMenuItems   queries.ListAvailableMenuItemsQueryHandler
	GetOrder        queries.GetOrderByNumberQueryHandler
	ListOrderEvents queries.ListOrderEventsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.handlers.ListCategories.Handle(ctx.Request().Context(), queries.NewListActiveCategoriesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Category, len(categories))
	for i, category := range categories {
		response[i] = servers.Category{
			Id:          category.ID.Value(),
			Name:        category.Name,
			Description: category.Description,
			Position:    category.Position,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var body servers.CreateCategoryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	description := deref(body.Description)
	position := deref(body.Position)
	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), body.Name, description, position)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Category{
		Id:          cmd.CategoryID().Value(),
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Position:    cmd.Position(),
	})
}

// DeleteCategory handles DELETE /api/v1/categories/{categoryId}.
func (s *Server) DeleteCategory(ctx echo.Context, categoryId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(categoryId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteCategoryCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListMenuItems handles GET /api/v1/menu-items.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	var categoryID *kernel.UUID
	if params.CategoryId != nil {
		id, err := kernel.UUIDFrom(*params.CategoryId)
		if err != nil {
			return s.fail(ctx, err)
		}
		categoryID = &id
	}

	query, err := queries.NewListAvailableMenuItemsQuery(categoryID)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.handlers.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			Id:          item.ID.Value(),
			CategoryId:  optionalUUID(item.CategoryID),
			Name:        item.Name,
			Description: item.Description,
			PriceCents:  item.Price.Cents(),
			ImageUrl:    item.ImageURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu-items. Items are available unless
// is_available is false.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body servers.CreateMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var categoryID *kernel.UUID
	if body.CategoryId != nil {
		id, err := kernel.UUIDFrom(*body.CategoryId)
		if err != nil {
			return s.fail(ctx, err)
		}
		categoryID = &id
	}

	available := true
	if body.IsAvailable != nil {
		available = *body.IsAvailable
	}

	details := catalog.MenuItemDetails{
		Name:        body.Name,
		Description: deref(body.Description),
		ImageURL:    deref(body.ImageUrl),
	}
	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), categoryID, details, body.PriceCents, available)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.MenuItem{
		Id:          cmd.MenuItemID().Value(),
		CategoryId:  optionalUUID(cmd.CategoryID()),
		Name:        cmd.Details().Name,
		Description: cmd.Details().Description,
		PriceCents:  cmd.Price().Cents(),
		ImageUrl:    cmd.Details().ImageURL,
	})
}

// UpdateMenuItem handles PATCH /api/v1/menu-items/{menuItemId}.
func (s *Server) UpdateMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	var body servers.UpdateMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFrom(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, commands.MenuItemChanges{
		PriceCents: body.PriceCents,
		Available:  body.IsAvailable,
		Active:     body.IsActive,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/{menuItemId}.
func (s *Server) DeleteMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	id, err := kernel.UUIDFrom(menuItemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders and answers with the stored order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	profile, err := customer.NewProfile(
		body.Customer.Email,
		body.Customer.FullName,
		deref(body.Customer.Phone),
		deref(body.Customer.Address),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, err := kernel.UUIDFrom(item.MenuItemId)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines = append(lines, commands.OrderLine{MenuItemID: menuItemID, Quantity: item.Quantity})
	}

	var method string
	if body.PaymentMethod != nil {
		method = string(*body.PaymentMethod)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		profile,
		lines,
		deref(body.SpecialInstructions),
		deref(body.DeliveryFeeCents),
		method,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	placed, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, placed.Number().String())
}

// GetOrder handles GET /api/v1/orders/{orderNumber}.
func (s *Server) GetOrder(ctx echo.Context, orderNumber servers.OrderNumber) error {
	return s.respondWithOrder(ctx, http.StatusOK, orderNumber)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderNumber}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderNumber servers.OrderNumber) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderNumber, string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.handlers.TransitionStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, updated.Number().String())
}

// ListOrderEvents handles GET /api/v1/orders/{orderNumber}/events.
func (s *Server) ListOrderEvents(ctx echo.Context, orderNumber servers.OrderNumber) error {
	query, err := queries.NewListOrderEventsQuery(orderNumber)
	if err != nil {
		return s.fail(ctx, err)
	}

	events, err := s.handlers.ListOrderEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.StatusEvent, len(events))
	for i, event := range events {
		response[i] = servers.StatusEvent{
			FromStatus: servers.OrderStatus(event.From.String()),
			ToStatus:   servers.OrderStatus(event.To.String()),
			At:         event.At,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeactivateCustomer handles DELETE /api/v1/customers/{email}.
func (s *Server) DeactivateCustomer(ctx echo.Context, email string) error {
	cmd, err := commands.NewDeactivateCustomerCommand(email)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeactivateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, number string) error {
	query, err := queries.NewGetOrderByNumberQuery(number)
	if err != nil {
		return s.fail(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(status, toOrderResponse(detail))
}
