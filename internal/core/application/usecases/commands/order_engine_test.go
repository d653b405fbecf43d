package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/memdb"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type uowFunc func() commands.UoW

func (f uowFunc) Create() commands.UoW { return f() }

type orderUoWFunc func() commands.OrderUoW

func (f orderUoWFunc) Create() commands.OrderUoW { return f() }

type catalogUoWFunc func() commands.CatalogUoW

func (f catalogUoWFunc) Create() commands.CatalogUoW { return f() }

// engine runs the real handlers against an in-memory database.
type engine struct {
	db             *gorm.DB
	place          *commands.PlaceOrderCommandHandler
	transition     *commands.TransitionOrderStatusCommandHandler
	createCategory *commands.CreateCategoryCommandHandler
	createItem     *commands.CreateMenuItemCommandHandler
	updateItem     *commands.UpdateMenuItemCommandHandler
	deleteCategory *commands.DeleteCategoryCommandHandler
	deleteItem     *commands.DeleteMenuItemCommandHandler
}

func newEngine(t *testing.T) *engine {
	t.Helper()

	db := memdb.Open(t)
	uows := postgres.NewGormUnitOfWorkFactory(db)
	policy, err := services.NewFlatTaxPolicy(services.DefaultTaxRate)
	require.NoError(t, err)

	full := uowFunc(func() commands.UoW { return uows.Create() })
	orders := orderUoWFunc(func() commands.OrderUoW { return uows.Create() })
	menu := catalogUoWFunc(func() commands.CatalogUoW { return uows.Create() })

	return &engine{
		db:             db,
		place:          commands.NewPlaceOrderCommandHandler(full, policy, services.NewOrderNumberGenerator(), "USD", discardLogger),
		transition:     commands.NewTransitionOrderStatusCommandHandler(orders, discardLogger),
		createCategory: commands.NewCreateCategoryCommandHandler(menu, discardLogger),
		createItem:     commands.NewCreateMenuItemCommandHandler(menu, discardLogger),
		updateItem:     commands.NewUpdateMenuItemCommandHandler(menu, discardLogger),
		deleteCategory: commands.NewDeleteCategoryCommandHandler(menu, discardLogger),
		deleteItem:     commands.NewDeleteMenuItemCommandHandler(menu, discardLogger),
	}
}

func (e *engine) category(t *testing.T, name string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(id, name, "", 0)
	require.NoError(t, err)
	require.NoError(t, e.createCategory.Handle(t.Context(), cmd))
	return id
}

func (e *engine) item(t *testing.T, categoryID *kernel.UUID, name string, cents int64, available bool) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(id, categoryID, catalog.MenuItemDetails{Name: name}, cents, available)
	require.NoError(t, err)
	require.NoError(t, e.createItem.Handle(t.Context(), cmd))
	return id
}

func (e *engine) placeFor(t *testing.T, profile customer.Profile, lines ...commands.OrderLine) (*order.Order, error) {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(profile, lines, "", 200, "")
	require.NoError(t, err)
	return e.place.Handle(t.Context(), cmd)
}

func (e *engine) moveTo(t *testing.T, number order.Number, status string) *order.Order {
	t.Helper()
	cmd, err := commands.NewTransitionOrderStatusCommand(number.String(), status)
	require.NoError(t, err)
	o, err := e.transition.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (e *engine) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Table(table).Count(&n).Error)
	return n
}

func (e *engine) reload(t *testing.T, number order.Number) *order.Order {
	t.Helper()
	o, err := postgres.NewGormUnitOfWorkFactory(e.db).Create().OrderRepository().GetByNumber(t.Context(), number)
	require.NoError(t, err)
	return o
}

func TestOrderEngine_PlaceOrderPersistsTheAggregate(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)

	placed, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 3})

	require.NoError(t, err)
	assert.Empty(t, placed.PendingEvents())

	stored := e.reload(t, placed.Number())
	assert.Equal(t, order.Pending, stored.Status())
	assert.Equal(t, int64(3600), stored.Subtotal().Cents())
	assert.Equal(t, int64(288), stored.Tax().Cents())
	assert.Equal(t, int64(200), stored.DeliveryFee().Cents())
	assert.Equal(t, int64(4088), stored.Total().Cents())
	require.Len(t, stored.Items(), 1)
	assert.Equal(t, 3, stored.Items()[0].Quantity())
	assert.Equal(t, int64(1200), stored.Items()[0].UnitPrice().Cents())
	require.NotNil(t, stored.Payment())
	assert.Equal(t, order.PaymentStatusInitiated, stored.Payment().Status())
	assert.Equal(t, int64(4088), stored.Payment().Amount().Cents())
	assert.Equal(t, int64(1), e.count(t, "order_status_events"))
	assert.Equal(t, int64(1), e.count(t, "customers"))
}

func TestOrderEngine_UnavailableItemLeavesNoRows(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	soup := e.item(t, nil, "Soup", 500, false)

	_, err := e.placeFor(t, validProfile(t),
		commands.OrderLine{MenuItemID: noodles, Quantity: 1},
		commands.OrderLine{MenuItemID: soup, Quantity: 1},
	)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	for _, table := range []string{"orders", "order_items", "payments", "order_status_events", "customers"} {
		assert.Zero(t, e.count(t, table), table)
	}
}

func TestOrderEngine_UnknownItemLeavesNoRows(t *testing.T) {
	e := newEngine(t)

	_, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: kernel.NewUUID(), Quantity: 1})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Zero(t, e.count(t, "orders"))
	assert.Zero(t, e.count(t, "customers"))
}

func TestOrderEngine_DeactivatedItemCannotBeOrdered(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	inactive := false
	cmd, err := commands.NewUpdateMenuItemCommand(noodles, commands.MenuItemChanges{Active: &inactive})
	require.NoError(t, err)
	require.NoError(t, e.updateItem.Handle(t.Context(), cmd))

	_, err = e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 1})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Zero(t, e.count(t, "orders"))
}

func TestOrderEngine_PriceChangeDoesNotAffectPlacedOrders(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	placed, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 1})
	require.NoError(t, err)

	price := int64(1500)
	cmd, err := commands.NewUpdateMenuItemCommand(noodles, commands.MenuItemChanges{PriceCents: &price})
	require.NoError(t, err)
	require.NoError(t, e.updateItem.Handle(t.Context(), cmd))

	stored := e.reload(t, placed.Number())
	assert.Equal(t, int64(1200), stored.Items()[0].UnitPrice().Cents())
	assert.Equal(t, placed.Total(), stored.Total())
}

func TestOrderEngine_OrderNumbersAreDistinct(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)

	seen := make(map[string]struct{})
	for range 10 {
		placed, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 1})
		require.NoError(t, err)
		assert.Len(t, placed.Number().String(), services.OrderNumberLength)
		seen[placed.Number().String()] = struct{}{}
	}

	assert.Len(t, seen, 10)
	assert.Equal(t, int64(10), e.count(t, "orders"))
	assert.Equal(t, int64(1), e.count(t, "customers"))
}

func TestOrderEngine_TransitionsAppendEvents(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	placed, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 1})
	require.NoError(t, err)

	confirmed := e.moveTo(t, placed.Number(), "CONFIRMED")
	preparing := e.moveTo(t, placed.Number(), "PREPARING")

	assert.Equal(t, order.Confirmed, confirmed.Status())
	assert.Equal(t, order.Preparing, preparing.Status())
	assert.Equal(t, order.Preparing, e.reload(t, placed.Number()).Status())
	assert.Equal(t, int64(3), e.count(t, "order_status_events"))
}

func TestOrderEngine_SameStatusWritesNothing(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	placed, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 1})
	require.NoError(t, err)
	e.moveTo(t, placed.Number(), "READY")
	before := e.reload(t, placed.Number()).UpdatedAt()

	time.Sleep(5 * time.Millisecond)
	e.moveTo(t, placed.Number(), "READY")

	assert.True(t, before.Equal(e.reload(t, placed.Number()).UpdatedAt()))
	assert.Equal(t, int64(2), e.count(t, "order_status_events"))
}

func TestOrderEngine_TransitionUnknownOrder(t *testing.T) {
	e := newEngine(t)
	cmd, err := commands.NewTransitionOrderStatusCommand("NOSUCHORDER", "CONFIRMED")
	require.NoError(t, err)

	_, err = e.transition.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderEngine_CustomerIsUpsertedByEmail(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	first, err := customer.NewProfile("bo@example.com", "Bo", "", "Old Rd 1")
	require.NoError(t, err)
	second, err := customer.NewProfile("bo@example.com", "Bo Chen", "+44 20 7946 0000", "")
	require.NoError(t, err)

	a, err := e.placeFor(t, first, commands.OrderLine{MenuItemID: noodles, Quantity: 1})
	require.NoError(t, err)
	b, err := e.placeFor(t, second, commands.OrderLine{MenuItemID: noodles, Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, a.CustomerID(), b.CustomerID())
	assert.Equal(t, int64(1), e.count(t, "customers"))

	stored, err := postgres.NewGormUnitOfWorkFactory(e.db).Create().CustomerRepository().GetByEmail(t.Context(), "bo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Bo Chen", stored.FullName())
	assert.Equal(t, "+44 20 7946 0000", stored.Phone())
	assert.Equal(t, "Old Rd 1", stored.DefaultAddress())
}

func TestOrderEngine_ReferencedMenuItemCannotBeDeleted(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	_, err := e.placeFor(t, validProfile(t), commands.OrderLine{MenuItemID: noodles, Quantity: 1})
	require.NoError(t, err)
	cmd, err := commands.NewDeleteMenuItemCommand(noodles)
	require.NoError(t, err)

	err = e.deleteItem.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "menu item referenced by orders", conflict.ParamName)
	assert.Equal(t, noodles.String(), conflict.Value)
	assert.Equal(t, int64(1), e.count(t, "menu_items"))
}

func TestOrderEngine_UnreferencedMenuItemIsDeleted(t *testing.T) {
	e := newEngine(t)
	noodles := e.item(t, nil, "Pad Thai", 1200, true)
	cmd, err := commands.NewDeleteMenuItemCommand(noodles)
	require.NoError(t, err)

	require.NoError(t, e.deleteItem.Handle(t.Context(), cmd))
	assert.Zero(t, e.count(t, "menu_items"))

	err = e.deleteItem.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderEngine_DeletingCategoryKeepsItsItems(t *testing.T) {
	e := newEngine(t)
	noodlesID := e.category(t, "Noodles")
	item := e.item(t, &noodlesID, "Pad Thai", 1200, true)
	cmd, err := commands.NewDeleteCategoryCommand(noodlesID)
	require.NoError(t, err)

	require.NoError(t, e.deleteCategory.Handle(t.Context(), cmd))

	stored, err := postgres.NewGormUnitOfWorkFactory(e.db).Create().CatalogRepository().GetMenuItem(t.Context(), item)
	require.NoError(t, err)
	assert.Nil(t, stored.CategoryID())
	assert.Zero(t, e.count(t, "categories"))
}

func TestOrderEngine_DuplicateCategoryNameConflicts(t *testing.T) {
	e := newEngine(t)
	e.category(t, "Noodles")
	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), "Noodles", "", 1)
	require.NoError(t, err)

	err = e.createCategory.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
}
