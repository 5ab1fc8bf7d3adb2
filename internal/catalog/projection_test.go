package catalog

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(name, code, category, status string) model.Product {
	return model.Product{
		Name:        name,
		BillingCode: code,
		Category:    category,
		Status:      status,
	}
}

func TestProject(t *testing.T) {
	t.Run("filters by name as case-insensitive substring", func(t *testing.T) {
		products := []model.Product{
			product("Foco LED", "F-01", "A", model.StatusAvailable),
			product("Cinta", "C-01", "B", model.StatusAvailable),
		}

		groups := Project(products, []string{"A", "B"}, "led", false)

		require.Len(t, groups, 1)
		assert.Equal(t, "A", groups[0].Category)
		require.Len(t, groups[0].Products, 1)
		assert.Equal(t, "Foco LED", groups[0].Products[0].Name)
	})

	t.Run("matches billing code and category too", func(t *testing.T) {
		products := []model.Product{
			product("Foco", "LED-99", "A", model.StatusAvailable),
			product("Perfil", "P-01", "Cintas LED", model.StatusAvailable),
			product("Otro", "O-01", "B", model.StatusAvailable),
		}

		groups := Project(products, nil, "led", false)

		require.Len(t, groups, 2)
		assert.Equal(t, "A", groups[0].Category)
		assert.Equal(t, "Cintas LED", groups[1].Category)
	})

	t.Run("drops unavailable products unless included", func(t *testing.T) {
		products := []model.Product{
			product("Visible", "V-01", "A", model.StatusAvailable),
			product("Oculto", "H-01", "A", model.StatusUnavailable),
		}

		public := Project(products, []string{"A"}, "", false)
		require.Len(t, public, 1)
		assert.Len(t, public[0].Products, 1)

		admin := Project(products, []string{"A"}, "", true)
		require.Len(t, admin, 1)
		assert.Len(t, admin[0].Products, 2)
	})

	t.Run("orders groups by the persisted order", func(t *testing.T) {
		products := []model.Product{
			product("p1", "1", "B", model.StatusAvailable),
			product("p2", "2", "A", model.StatusAvailable),
		}

		groups := Project(products, []string{"A", "B"}, "", false)

		require.Len(t, groups, 2)
		assert.Equal(t, "A", groups[0].Category)
		assert.Equal(t, "B", groups[1].Category)
	})

	t.Run("unknown categories fall back to the end in first-encountered order", func(t *testing.T) {
		products := []model.Product{
			product("p1", "1", "A", model.StatusAvailable),
			product("p2", "2", "B", model.StatusAvailable),
			product("p3", "3", "C", model.StatusAvailable),
		}

		groups := Project(products, []string{"B"}, "", false)

		require.Len(t, groups, 3)
		assert.Equal(t, "B", groups[0].Category)
		assert.Equal(t, "A", groups[1].Category)
		assert.Equal(t, "C", groups[2].Category)
	})

	t.Run("categories without surviving products are omitted", func(t *testing.T) {
		products := []model.Product{
			product("p1", "1", "A", model.StatusUnavailable),
			product("p2", "2", "B", model.StatusAvailable),
		}

		groups := Project(products, []string{"A", "B"}, "", false)

		require.Len(t, groups, 1)
		assert.Equal(t, "B", groups[0].Category)
	})

	t.Run("preserves product insertion order within a group", func(t *testing.T) {
		products := []model.Product{
			product("first", "1", "A", model.StatusAvailable),
			product("second", "2", "A", model.StatusAvailable),
		}

		groups := Project(products, []string{"A"}, "", false)

		require.Len(t, groups, 1)
		assert.Equal(t, "first", groups[0].Products[0].Name)
		assert.Equal(t, "second", groups[0].Products[1].Name)
	})

	t.Run("empty products yield an empty result", func(t *testing.T) {
		groups := Project(nil, []string{"A"}, "", false)

		assert.Empty(t, groups)
	})

	t.Run("pure: repeated calls are deep-equal and inputs are untouched", func(t *testing.T) {
		products := []model.Product{
			product("p1", "1", "B", model.StatusAvailable),
			product("p2", "2", "A", model.StatusAvailable),
		}
		order := []string{"A"}

		first := Project(products, order, "", false)
		second := Project(products, order, "", false)

		assert.Equal(t, first, second)
		assert.Equal(t, []string{"A"}, order)
		assert.Equal(t, "p1", products[0].Name)
		assert.Equal(t, "B", products[0].Category)
	})
}

func TestCategories(t *testing.T) {
	products := []model.Product{
		product("p1", "1", "B", model.StatusAvailable),
		product("p2", "2", "A", model.StatusAvailable),
		product("p3", "3", "B", model.StatusAvailable),
	}

	assert.Equal(t, []string{"B", "A"}, Categories(products))
	assert.Empty(t, Categories(nil))
}
