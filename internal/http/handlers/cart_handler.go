package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	applog "github.com/russellpeiris/mocked/internal/log"
	"github.com/russellpeiris/mocked/internal/services"
	"github.com/russellpeiris/mocked/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartAddBody struct {
	Email     string `json:"email"`
	ProductID string `json:"product"`
	Qty       int    `json:"qty"`
}

// POST /cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var body cartAddBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, "cart.add", apperr.Validation("email and product are required"))
	}
	email, okE := validate.Email(body.Email)
	pid, okP := validate.ID(body.ProductID)
	if !okE || !okP {
		applog.Security(c, "validation.fail", map[string]any{"field": "cart"})
		return fail(c, "cart.add", apperr.Validation("email and product are required"))
	}

	if err := h.Cart.Add(email, domain.ProductID(pid), body.Qty); err != nil {
		return fail(c, "cart.add", err)
	}
	cv, err := h.Cart.View(email)
	if err != nil {
		return fail(c, "cart.add", err)
	}
	return ok(c, fiber.StatusCreated, "Product added to cart successfully", cv)
}

// GET /cart?email=
func (h *CartHandler) View(c *fiber.Ctx) error {
	email, okE := validate.Email(c.Query("email"))
	if !okE {
		return fail(c, "cart.view", apperr.Validation("email is required"))
	}
	cv, err := h.Cart.View(email)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return ok(c, fiber.StatusOK, "Cart fetched successfully", cv)
}
