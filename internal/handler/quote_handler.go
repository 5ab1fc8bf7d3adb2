package handler

import (
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type QuoteHandler struct {
	service service.QuoteService
}

func NewQuoteHandler(s service.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: s}
}

// SearchProducts backs the quote builder autocomplete.
// GET /api/v1/quotes/search?q=
func (h *QuoteHandler) SearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("q"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to search products"})
	}
	return c.JSON(products)
}

// ComputeTotals resolves the cart server-side and returns line prices plus
// subtotal, IVA and total.
// POST /api/v1/quotes/totals
func (h *QuoteHandler) ComputeTotals(c *fiber.Ctx) error {
	var req service.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	summary, err := h.service.ComputeTotals(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// ExportPDF renders the quotation document and streams it as a download.
// POST /api/v1/quotes/pdf
func (h *QuoteHandler) ExportPDF(c *fiber.Ctx) error {
	var req service.QuotePDFRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	data, filename, err := h.service.GeneratePDF(&req)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
