package service

import (
	"testing"

	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedProduct(name, code string, price float64) model.Product {
	p := availableProduct(name, code, "Cintas")
	p.PriceBeforeTax = price
	return p
}

func TestQuoteComputeTotals(t *testing.T) {
	t.Run("resolves prices server-side and totals the cart", func(t *testing.T) {
		p := pricedProduct("Reflector", "R-01", 100000)
		repo := &fakeProductRepo{products: []model.Product{p}}
		svc := NewQuoteService(repo)

		summary, err := svc.ComputeTotals(&QuoteRequest{
			Lines:         []QuoteLine{{ProductID: p.ID, Quantity: 2}},
			MarkupPercent: 10,
		})

		require.NoError(t, err)
		require.Len(t, summary.Items, 1)
		assert.Equal(t, 2, summary.Items[0].Quantity)
		assert.InDelta(t, 110000, summary.Items[0].UnitPrice, 0.001)
		assert.InDelta(t, 220000, summary.Totals.Subtotal, 0.001)
		assert.InDelta(t, 41800, summary.Totals.Tax, 0.001)
		assert.InDelta(t, 261800, summary.Totals.Total, 0.001)
	})

	t.Run("unavailable products are rejected", func(t *testing.T) {
		p := pricedProduct("Oculto", "O-01", 5000)
		p.Status = model.StatusUnavailable
		repo := &fakeProductRepo{products: []model.Product{p}}
		svc := NewQuoteService(repo)

		_, err := svc.ComputeTotals(&QuoteRequest{
			Lines: []QuoteLine{{ProductID: p.ID, Quantity: 1}},
		})

		assert.Error(t, err)
	})

	t.Run("unknown product id is an error", func(t *testing.T) {
		svc := NewQuoteService(&fakeProductRepo{})

		_, err := svc.ComputeTotals(&QuoteRequest{
			Lines: []QuoteLine{{ProductID: uuid.New(), Quantity: 1}},
		})

		assert.Error(t, err)
	})

	t.Run("empty line list fails validation", func(t *testing.T) {
		svc := NewQuoteService(&fakeProductRepo{})

		_, err := svc.ComputeTotals(&QuoteRequest{})

		assert.Error(t, err)
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		p := pricedProduct("Cinta", "C-01", 2500)
		repo := &fakeProductRepo{products: []model.Product{p}}
		svc := NewQuoteService(repo)

		summary, err := svc.ComputeTotals(&QuoteRequest{
			Lines: []QuoteLine{{ProductID: p.ID}},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Items[0].Quantity)
	})
}

func TestQuoteGeneratePDF(t *testing.T) {
	p := pricedProduct("Bala LED 7W", "B-07", 35000)
	repo := &fakeProductRepo{products: []model.Product{p}}
	svc := NewQuoteService(repo)

	data, filename, err := svc.GeneratePDF(&QuotePDFRequest{
		QuoteRequest: QuoteRequest{
			Lines:         []QuoteLine{{ProductID: p.ID, Quantity: 3}},
			MarkupPercent: 5,
		},
		From: "Asesor",
		To:   "Cliente Uno",
	})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Contains(t, filename, "Cotizacion_Sielu_Cliente_Uno_")
}

func TestQuoteSearchProducts(t *testing.T) {
	available := pricedProduct("Foco LED", "F-01", 10000)
	hidden := pricedProduct("Foco Viejo", "F-02", 9000)
	hidden.Status = model.StatusUnavailable
	repo := &fakeProductRepo{products: []model.Product{available, hidden}}
	svc := NewQuoteService(repo)

	t.Run("matches only available products", func(t *testing.T) {
		results, err := svc.SearchProducts("foco")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Foco LED", results[0].Name)
	})

	t.Run("empty term returns nothing", func(t *testing.T) {
		results, err := svc.SearchProducts("")

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
