package cmd

import (
	"log/slog"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	taxPolicy  services.FlatTaxPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	taxPolicy, err := services.NewFlatTaxPolicy(config.TaxRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		taxPolicy:  taxPolicy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(
		f,
		c.taxPolicy,
		services.NewOrderNumberGenerator(),
		c.config.DefaultCurrency,
		c.logger,
	)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() *commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() *commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() *commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() *commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() *commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() *commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeactivateCustomerCommandHandler() *commands.DeactivateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateCustomerCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateListActiveCategoriesQueryHandler() queries.ListActiveCategoriesQueryHandler {
	return queries.NewListActiveCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAvailableMenuItemsQueryHandler() queries.ListAvailableMenuItemsQueryHandler {
	return queries.NewListAvailableMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrderEventsQueryHandler() queries.ListOrderEventsQueryHandler {
	return queries.NewListOrderEventsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		TransitionStatus:   c.CreateTransitionOrderStatusCommandHandler(),
		CreateCategory:     c.CreateCreateCategoryCommandHandler(),
		DeleteCategory:     c.CreateDeleteCategoryCommandHandler(),
		CreateMenuItem:     c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:     c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:     c.CreateDeleteMenuItemCommandHandler(),
		DeactivateCustomer: c.CreateDeactivateCustomerCommandHandler(),
		ListCategories:     c.CreateListActiveCategoriesQueryHandler(),
		ListMenuItems:      c.CreateListAvailableMenuItemsQueryHandler(),
		GetOrder:           c.CreateGetOrderByNumberQueryHandler(),
		ListOrderEvents:    c.CreateListOrderEventsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
