package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/russellpeiris/mocked/internal/apperr"
	applog "github.com/russellpeiris/mocked/internal/log"
	"github.com/russellpeiris/mocked/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type productBody struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
}

// POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var body productBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, "product.create", apperr.Validation("invalid product payload"))
	}
	p, err := h.Catalog.CreateProduct(services.NewProduct{
		Name:        body.Name,
		Price:       body.Price,
		Description: body.Description,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
	})
	if err != nil {
		return fail(c, "product.create", err)
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return ok(c, fiber.StatusCreated, "Product created successfully", p)
}

// GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		return fail(c, "product.list", err)
	}
	return ok(c, fiber.StatusOK, "Products retrieved successfully", products)
}
