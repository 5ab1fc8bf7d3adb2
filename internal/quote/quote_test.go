package quote

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, price float64) model.Product {
	p := model.Product{
		Name:           name,
		BillingCode:    "SKU-" + name,
		PriceBeforeTax: price,
	}
	p.ID = uuid.New()
	return p
}

func TestCartAddItem(t *testing.T) {
	t.Run("adding the same product twice merges into one line", func(t *testing.T) {
		p := testProduct("Foco", 1000)
		cart := &Cart{}

		cart.AddItem(p)
		cart.AddItem(p)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("first-addition order is preserved", func(t *testing.T) {
		a := testProduct("A", 10)
		b := testProduct("B", 20)
		cart := &Cart{}

		cart.AddItem(a)
		cart.AddItem(b)
		cart.AddItem(a)

		require.Len(t, cart.Items, 2)
		assert.Equal(t, "A", cart.Items[0].Name)
		assert.Equal(t, "B", cart.Items[1].Name)
	})
}

func TestCartRemoveItem(t *testing.T) {
	a := testProduct("A", 10)
	b := testProduct("B", 20)
	cart := &Cart{}
	cart.AddItem(a)
	cart.AddItem(b)

	cart.RemoveItem(a.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "B", cart.Items[0].Name)

	// Removing an absent id is a no-op
	cart.RemoveItem(uuid.New())
	assert.Len(t, cart.Items, 1)
}

func TestCartSetQuantity(t *testing.T) {
	p := testProduct("A", 10)
	cart := &Cart{}
	cart.AddItem(p)

	cart.SetQuantity(p.ID, 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Zero and negative quantities are ignored
	cart.SetQuantity(p.ID, 0)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	cart.SetQuantity(p.ID, -3)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestComputeTotals(t *testing.T) {
	t.Run("markup and tax", func(t *testing.T) {
		p := testProduct("Reflector", 100000)
		cart := &Cart{}
		cart.AddItem(p)
		cart.SetQuantity(p.ID, 2)

		totals := cart.ComputeTotals(10)

		assert.InDelta(t, 110000, UnitPrice(p.PriceBeforeTax, 10), 0.001)
		assert.InDelta(t, 220000, totals.Subtotal, 0.001)
		assert.InDelta(t, 41800, totals.Tax, 0.001)
		assert.InDelta(t, 261800, totals.Total, 0.001)
	})

	t.Run("zero markup leaves base prices", func(t *testing.T) {
		p := testProduct("Cinta", 2500)
		cart := &Cart{}
		cart.AddItem(p)

		totals := cart.ComputeTotals(0)

		assert.InDelta(t, 2500, totals.Subtotal, 0.001)
		assert.InDelta(t, 2500*TaxRate, totals.Tax, 0.001)
	})

	t.Run("empty cart totals are zero", func(t *testing.T) {
		totals := (&Cart{}).ComputeTotals(15)

		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.Tax)
		assert.Zero(t, totals.Total)
	})
}

func TestFormatCOP(t *testing.T) {
	assert.Equal(t, "$1.234.567", FormatCOP(1234567))
	assert.Equal(t, "$110.000", FormatCOP(UnitPrice(100000, 10)))
	assert.Equal(t, "$0", FormatCOP(0))
	// Rounds to whole pesos at presentation time
	assert.Equal(t, "$100", FormatCOP(99.7))
}
