package catalog_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("should create active category with trimmed name", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := catalog.NewCategory(id, "  Pizzas ", "Wood fired", 2)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Pizzas", c.Name())
		assert.Equal(t, "Wood fired", c.Description())
		assert.Equal(t, 2, c.Position())
		assert.True(t, c.IsActive())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := catalog.NewCategory(kernel.NewUUID(), "   ", "", 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject overlong name", func(t *testing.T) {
		_, err := catalog.NewCategory(kernel.NewUUID(), strings.Repeat("a", 101), "", 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := catalog.NewCategory(kernel.UUID{}, "", "", -1)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should restore inactive category", func(t *testing.T) {
		c, err := catalog.RestoreCategory(kernel.NewUUID(), "Drinks", "", 0, false)

		require.NoError(t, err)
		assert.False(t, c.IsActive())
		c.Activate()
		assert.True(t, c.IsActive())
	})
}

func TestCategory_Validate(t *testing.T) {
	var c *catalog.Category

	assert.ErrorIs(t, c.Validate(), catalog.ErrCategoryIsNotConstructed)
	assert.ErrorIs(t, (&catalog.Category{}).Validate(), catalog.ErrCategoryIsNotConstructed)
}

func TestNewMenuItem(t *testing.T) {
	categoryID := kernel.NewUUID()
	price, _ := kernel.NewMoney(1200)

	t.Run("should create orderable item", func(t *testing.T) {
		m, err := catalog.NewMenuItem(kernel.NewUUID(), &categoryID, catalog.MenuItemDetails{
			Name:     "Margherita",
			ImageURL: "https://cdn.example.com/margherita.png",
		}, price, true)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "Margherita", m.Name())
		assert.True(t, m.CategoryID().IsEqual(categoryID))
		assert.Equal(t, int64(1200), m.Price().Cents())
		assert.True(t, m.IsOrderable())
	})

	t.Run("should allow uncategorised item", func(t *testing.T) {
		m, err := catalog.NewMenuItem(kernel.NewUUID(), nil, catalog.MenuItemDetails{Name: "Water"}, kernel.Zero(), true)

		require.NoError(t, err)
		assert.Nil(t, m.CategoryID())
	})

	t.Run("should reject relative image url", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), nil, catalog.MenuItemDetails{
			Name:     "Soup",
			ImageURL: "/img/soup.png",
		}, price, true)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "image url")
	})

	t.Run("should reject overlong name", func(t *testing.T) {
		_, err := catalog.NewMenuItem(kernel.NewUUID(), nil, catalog.MenuItemDetails{
			Name: strings.Repeat("b", 151),
		}, price, true)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMenuItem_IsOrderable(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		active    bool
		want      bool
	}{
		{"active and available", true, true, true},
		{"active but unavailable", false, true, false},
		{"available but inactive", true, false, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := catalog.RestoreMenuItem(
				kernel.NewUUID(), nil, catalog.MenuItemDetails{Name: "Item"}, kernel.Zero(), tt.available, tt.active,
			)
			require.NoError(t, err)

			assert.Equal(t, tt.want, m.IsOrderable())
		})
	}
}

func TestMenuItem_ChangePrice(t *testing.T) {
	m, err := catalog.NewMenuItem(kernel.NewUUID(), nil, catalog.MenuItemDetails{Name: "Fries"}, kernel.Zero(), true)
	require.NoError(t, err)
	newPrice, _ := kernel.NewMoney(450)

	m.ChangePrice(newPrice)
	m.SetAvailable(false)

	assert.Equal(t, int64(450), m.Price().Cents())
	assert.False(t, m.IsOrderable())
}
