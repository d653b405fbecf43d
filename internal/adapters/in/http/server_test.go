package http_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/memdb"
	"foodorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staffToken = "staff-secret"

type api struct {
	t *testing.T
	e *echo.Echo
}

func newAPI(t *testing.T, token string) *api {
	t.Helper()

	config, err := cmd.LoadConfig(func(string) (string, bool) { return "", false })
	require.NoError(t, err)
	config.AdminAPIToken = token

	logger := slog.New(slog.DiscardHandler)
	root, err := cmd.NewCompositionRoot(config, memdb.Open(t), logger)
	require.NoError(t, err)

	e, err := httpin.NewRouter(root.CreateHTTPServer(), httpin.RouterConfig{
		AdminToken: token,
		Logger:     logger,
	})
	require.NoError(t, err)

	return &api{t: t, e: e}
}

func (a *api) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *api) createCategory(name string, position int) servers.Category {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": name, "position": position}, staffToken)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Category](a.t, rec)
}

func (a *api) createMenuItem(body map[string]any) servers.MenuItem {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/menu-items", body, staffToken)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.MenuItem](a.t, rec)
}

func (a *api) placeOrder(items ...map[string]any) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.do(http.MethodPost, "/api/v1/orders", map[string]any{
		"customer": map[string]any{
			"email":     "ann@example.com",
			"full_name": "Ann Lee",
			"phone":     "+1 555 0100",
		},
		"items":                items,
		"special_instructions": "ring twice",
	}, "")
}

func line(item servers.MenuItem, quantity int) map[string]any {
	return map[string]any{"menu_item_id": item.Id.String(), "quantity": quantity}
}

func TestHealth(t *testing.T) {
	a := newAPI(t, staffToken)

	rec := a.do(http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestSwaggerDocument(t *testing.T) {
	a := newAPI(t, staffToken)

	rec := a.do(http.MethodGet, "/swagger/doc.json", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/orders")
}

func TestStaffEndpoints_RequireToken(t *testing.T) {
	a := newAPI(t, staffToken)
	body := map[string]any{"name": "Mains"}

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodPost, "/api/v1/categories", body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodPost, "/api/v1/categories", body, "wrong").Code)
	assert.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/categories", body, staffToken).Code)

	// public reads need no token
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/api/v1/categories", nil, "").Code)
}

func TestStaffEndpoints_OpenWithoutConfiguredToken(t *testing.T) {
	a := newAPI(t, "")

	rec := a.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Mains"}, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCatalog_ListingAndFiltering(t *testing.T) {
	a := newAPI(t, staffToken)
	drinks := a.createCategory("Drinks", 2)
	mains := a.createCategory("Mains", 1)
	a.createMenuItem(map[string]any{"name": "Curry", "price_cents": 1100, "category_id": mains.Id.String()})
	a.createMenuItem(map[string]any{"name": "Lemonade", "price_cents": 300, "category_id": drinks.Id.String()})
	a.createMenuItem(map[string]any{"name": "Sold out", "price_cents": 500, "is_available": false})

	categories := decode[[]servers.Category](t, a.do(http.MethodGet, "/api/v1/categories", nil, ""))
	require.Len(t, categories, 2)
	assert.Equal(t, "Mains", categories[0].Name)
	assert.Equal(t, "Drinks", categories[1].Name)

	all := decode[[]servers.MenuItem](t, a.do(http.MethodGet, "/api/v1/menu-items", nil, ""))
	require.Len(t, all, 2)
	assert.Equal(t, "Curry", all[0].Name)
	assert.Equal(t, "Lemonade", all[1].Name)

	filtered := decode[[]servers.MenuItem](t, a.do(http.MethodGet, "/api/v1/menu-items?category_id="+drinks.Id.String(), nil, ""))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Lemonade", filtered[0].Name)
	assert.Equal(t, int64(300), filtered[0].PriceCents)
}

func TestCatalog_Errors(t *testing.T) {
	a := newAPI(t, staffToken)
	a.createCategory("Mains", 1)

	t.Run("duplicate category", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Mains"}, staffToken)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/menu-items", map[string]any{"name": "Free", "price_cents": -1}, staffToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/menu-items", map[string]any{
			"name":        "Stray",
			"price_cents": 100,
			"category_id": "6f1c1f0e-4a4b-4a55-9d5e-1d2b3c4d5e6f",
		}, staffToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id in path", func(t *testing.T) {
		rec := a.do(http.MethodDelete, "/api/v1/menu-items/not-a-uuid", nil, staffToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty patch", func(t *testing.T) {
		rec := a.do(http.MethodPatch, "/api/v1/menu-items/6f1c1f0e-4a4b-4a55-9d5e-1d2b3c4d5e6f", map[string]any{}, staffToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown category delete", func(t *testing.T) {
		rec := a.do(http.MethodDelete, "/api/v1/categories/6f1c1f0e-4a4b-4a55-9d5e-1d2b3c4d5e6f", nil, staffToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrders_Lifecycle(t *testing.T) {
	a := newAPI(t, staffToken)
	padThai := a.createMenuItem(map[string]any{"name": "Pad Thai", "price_cents": 1250})
	lemonade := a.createMenuItem(map[string]any{"name": "Lemonade", "price_cents": 300})

	rec := a.placeOrder(line(padThai, 2), line(lemonade, 1))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placed := decode[servers.Order](t, rec)

	assert.Len(t, placed.OrderNumber, 10)
	assert.Equal(t, servers.PENDING, placed.Status)
	assert.Equal(t, "ann@example.com", placed.CustomerEmail)
	assert.Equal(t, "Ann Lee", placed.CustomerName)
	assert.Equal(t, "ring twice", placed.SpecialInstructions)
	assert.Equal(t, int64(2800), placed.SubtotalCents)
	assert.Equal(t, int64(224), placed.TaxCents)
	assert.Equal(t, int64(0), placed.DeliveryFeeCents)
	assert.Equal(t, int64(3024), placed.TotalCents)
	assert.Nil(t, placed.Eta)
	require.Len(t, placed.Items, 2)
	assert.Equal(t, "Pad Thai", placed.Items[0].MenuItemName)
	assert.Equal(t, int64(2500), placed.Items[0].LineTotalCents)
	require.NotNil(t, placed.Payment)
	assert.Equal(t, "CARD", placed.Payment.Method)
	assert.Equal(t, "INITIATED", placed.Payment.Status)
	assert.Equal(t, int64(3024), placed.Payment.AmountCents)
	assert.Equal(t, "USD", placed.Payment.Currency)

	orderPath := "/api/v1/orders/" + placed.OrderNumber

	fetched := decode[servers.Order](t, a.do(http.MethodGet, orderPath, nil, ""))
	assert.Equal(t, placed.OrderNumber, fetched.OrderNumber)
	assert.Equal(t, placed.TotalCents, fetched.TotalCents)

	// staff only
	rec = a.do(http.MethodPatch, orderPath+"/status", map[string]any{"status": "CONFIRMED"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPatch, orderPath+"/status", map[string]any{"status": "CONFIRMED"}, staffToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.CONFIRMED, decode[servers.Order](t, rec).Status)

	// repeating the current status records nothing
	rec = a.do(http.MethodPatch, orderPath+"/status", map[string]any{"status": "CONFIRMED"}, staffToken)
	require.Equal(t, http.StatusOK, rec.Code)

	events := decode[[]servers.StatusEvent](t, a.do(http.MethodGet, orderPath+"/events", nil, ""))
	require.Len(t, events, 2)
	assert.Equal(t, servers.PENDING, events[0].FromStatus)
	assert.Equal(t, servers.CONFIRMED, events[0].ToStatus)
	assert.Equal(t, servers.PENDING, events[1].FromStatus)
	assert.Equal(t, servers.PENDING, events[1].ToStatus)
}

func TestOrders_RejectedRequests(t *testing.T) {
	a := newAPI(t, staffToken)
	soup := a.createMenuItem(map[string]any{"name": "Soup", "price_cents": 500})
	soldOut := a.createMenuItem(map[string]any{"name": "Sold out", "price_cents": 500, "is_available": false})
	platter := a.createMenuItem(map[string]any{"name": "Truffle platter", "price_cents": int64(1) << 62})

	tests := []struct {
		name string
		rec  func() *httptest.ResponseRecorder
		code int
	}{
		{"no items", func() *httptest.ResponseRecorder { return a.placeOrder() }, http.StatusBadRequest},
		{"quantity above limit", func() *httptest.ResponseRecorder { return a.placeOrder(line(soup, 101)) }, http.StatusBadRequest},
		{"unavailable item", func() *httptest.ResponseRecorder { return a.placeOrder(line(soldOut, 1)) }, http.StatusBadRequest},
		{"nil menu item id", func() *httptest.ResponseRecorder {
			return a.placeOrder(map[string]any{"menu_item_id": "00000000-0000-0000-0000-000000000000", "quantity": 1})
		}, http.StatusBadRequest},
		{"total beyond cents range", func() *httptest.ResponseRecorder { return a.placeOrder(line(platter, 2)) }, http.StatusBadRequest},
		{"duplicate item", func() *httptest.ResponseRecorder {
			return a.placeOrder(line(soup, 1), line(soup, 2))
		}, http.StatusBadRequest},
		{"unknown order", func() *httptest.ResponseRecorder {
			return a.do(http.MethodGet, "/api/v1/orders/NOSUCHORDER", nil, "")
		}, http.StatusNotFound},
		{"malformed order number", func() *httptest.ResponseRecorder {
			return a.do(http.MethodGet, "/api/v1/orders/abc-def", nil, "")
		}, http.StatusBadRequest},
		{"unknown status", func() *httptest.ResponseRecorder {
			return a.do(http.MethodPatch, "/api/v1/orders/NOSUCHORDER/status", map[string]any{"status": "LOST"}, staffToken)
		}, http.StatusBadRequest},
		{"events of unknown order", func() *httptest.ResponseRecorder {
			return a.do(http.MethodGet, "/api/v1/orders/NOSUCHORDER/events", nil, "")
		}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec()

			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			errBody := decode[servers.Error](t, rec)
			assert.Equal(t, tt.code, errBody.Code)
			assert.NotEmpty(t, errBody.Message)
		})
	}
}

func TestMenuItems_PriceSnapshotAndReferencedDelete(t *testing.T) {
	a := newAPI(t, staffToken)
	curry := a.createMenuItem(map[string]any{"name": "Curry", "price_cents": 1000})
	placed := decode[servers.Order](t, a.placeOrder(line(curry, 1)))

	rec := a.do(http.MethodPatch, "/api/v1/menu-items/"+curry.Id.String(), map[string]any{"price_cents": 1500}, staffToken)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	fetched := decode[servers.Order](t, a.do(http.MethodGet, "/api/v1/orders/"+placed.OrderNumber, nil, ""))
	assert.Equal(t, int64(1000), fetched.Items[0].UnitPriceCents)

	rec = a.do(http.MethodDelete, "/api/v1/menu-items/"+curry.Id.String(), nil, staffToken)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCustomers_Deactivate(t *testing.T) {
	a := newAPI(t, staffToken)
	soup := a.createMenuItem(map[string]any{"name": "Soup", "price_cents": 500})
	require.Equal(t, http.StatusCreated, a.placeOrder(line(soup, 1)).Code)

	assert.Equal(t, http.StatusNoContent, a.do(http.MethodDelete, "/api/v1/customers/ann@example.com", nil, staffToken).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/api/v1/customers/bo@example.com", nil, staffToken).Code)
}
