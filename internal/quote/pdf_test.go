package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFilename(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sanitizes recipient whitespace", func(t *testing.T) {
		doc := Document{To: "Constructora  El Dorado", Date: date}

		assert.Equal(t, "Cotizacion_Sielu_Constructora_El_Dorado_15-03-2026.pdf", doc.Filename())
	})

	t.Run("defaults recipient when empty", func(t *testing.T) {
		doc := Document{Date: date}

		assert.Equal(t, "Cotizacion_Sielu_Cliente_15-03-2026.pdf", doc.Filename())
	})
}

func TestDocumentRender(t *testing.T) {
	t.Run("renders a PDF for a non-empty cart", func(t *testing.T) {
		cart := Cart{}
		cart.AddItem(testProduct("Bala LED 7W", 35000))
		doc := Document{
			From:          "Asesor",
			To:            "Cliente",
			Date:          time.Now(),
			MarkupPercent: 10,
			Cart:          cart,
		}

		data, err := doc.Render()

		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF", string(data[:4]))
	})

	t.Run("empty cart is an error", func(t *testing.T) {
		doc := Document{Date: time.Now()}

		_, err := doc.Render()

		assert.Error(t, err)
	})

	t.Run("renders accented product names", func(t *testing.T) {
		cart := Cart{}
		cart.AddItem(testProduct("Panel 60x60 Luz Cálida", 120000))
		doc := Document{Date: time.Now(), Cart: cart}

		data, err := doc.Render()

		require.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
