// Package quote implements the quotation cart: line management, markup and
// tax arithmetic, and the exported PDF document. All monetary math runs at
// full float64 precision; rounding happens only when a value is formatted.
package quote

import (
	"github.com/google/uuid"

	"go-catalog-api/internal/model"
)

// TaxRate is the fixed IVA applied to every quotation.
const TaxRate = 0.19

// Item is one cart line referencing a product.
type Item struct {
	ProductID   uuid.UUID `json:"product_id"`
	BillingCode string    `json:"codigo"`
	Name        string    `json:"nombre"`
	BasePrice   float64   `json:"precio_base"`
	Quantity    int       `json:"cantidad"`
}

// Cart is an ephemeral, session-local selection of products with quantities.
type Cart struct {
	Items []Item `json:"items"`
}

// Totals holds the computed quotation amounts.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"iva"`
	Total    float64 `json:"total"`
}

// AddItem adds a product to the cart. If a line for the same product already
// exists its quantity is incremented instead; first-addition order is kept.
func (c *Cart) AddItem(p model.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID:   p.ID,
		BillingCode: p.BillingCode,
		Name:        p.Name,
		BasePrice:   p.PriceBeforeTax,
		Quantity:    1,
	})
}

// RemoveItem drops the line for the given product; no-op if absent.
func (c *Cart) RemoveItem(id uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites a line's quantity. Quantities below 1 are ignored.
func (c *Cart) SetQuantity(id uuid.UUID, qty int) {
	if qty <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == id {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// UnitPrice applies the markup percentage to a base price.
func UnitPrice(basePrice, markupPercent float64) float64 {
	return basePrice * (1 + markupPercent/100)
}

// LineTotal is the marked-up price times quantity for one cart line.
func (it Item) LineTotal(markupPercent float64) float64 {
	return UnitPrice(it.BasePrice, markupPercent) * float64(it.Quantity)
}

// ComputeTotals sums the cart at the given markup and applies the fixed tax
// rate. Intermediate sums keep full precision so rounding never compounds
// across lines.
func (c *Cart) ComputeTotals(markupPercent float64) Totals {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.LineTotal(markupPercent)
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
