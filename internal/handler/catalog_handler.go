package handler

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

// GetCatalog returns the public projection: available products only, grouped
// and ordered by the persisted category order.
// GET /api/v1/catalog?q=
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	view, err := h.service.GetCatalog(c.Query("q"), false)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load catalog"})
	}
	return c.JSON(view)
}

// GetAdminCatalog returns the full projection including unavailable products
// for the admin table.
// GET /api/v1/admin/catalog?q=
func (h *CatalogHandler) GetAdminCatalog(c *fiber.Ctx) error {
	view, err := h.service.GetCatalog(c.Query("q"), true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load catalog"})
	}
	return c.JSON(view)
}

// GetProducts returns the raw product list (admin edit form lookups).
// GET /api/v1/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product, getUserID(c), getUserName(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// PUT /api/v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(productID, &product, getUserID(c), getUserName(c))
	if err != nil {
		if err == service.ErrProductNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// DELETE /api/v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(productID, getUserID(c), getUserName(c)); err != nil {
		if err == service.ErrProductNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// PATCH /api/v1/products/:id/availability
func (h *CatalogHandler) ToggleAvailability(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	updated, err := h.service.ToggleAvailability(productID, getUserID(c), getUserName(c))
	if err != nil {
		if err == service.ErrProductNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Availability updated", "data": updated})
}

// GET /api/v1/categories/order
func (h *CatalogHandler) GetCategoryOrder(c *fiber.Ctx) error {
	order, err := h.service.GetCategoryOrder()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load category order"})
	}
	return c.JSON(fiber.Map{"order": order})
}

// MoveCategoryRequest carries the swap direction: -1 moves up, 1 moves down.
type MoveCategoryRequest struct {
	Direction int `json:"direction"`
}

// POST /api/v1/categories/:name/move
func (h *CatalogHandler) MoveCategory(c *fiber.Ctx) error {
	category := c.Params("name")
	if category == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Category name is required"})
	}

	var req MoveCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Direction != -1 && req.Direction != 1 {
		return c.Status(400).JSON(fiber.Map{"error": "direction must be -1 or 1"})
	}

	order, err := h.service.MoveCategory(category, req.Direction)
	if err != nil {
		// The swap already happened in memory; report the write failure but
		// hand back the order the admin is now looking at.
		return c.Status(500).JSON(fiber.Map{
			"error": "Failed to persist category order",
			"order": order,
		})
	}

	return c.JSON(fiber.Map{"message": "Category moved", "order": order})
}
