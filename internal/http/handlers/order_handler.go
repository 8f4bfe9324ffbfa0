package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	applog "github.com/russellpeiris/mocked/internal/log"
	"github.com/russellpeiris/mocked/internal/services"
	"github.com/russellpeiris/mocked/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type placeBody struct {
	Email string `json:"email"`
}

// Place handles POST /orders and POST /place-order. The email may arrive in
// the body or, as the older client did, as a query parameter.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var body placeBody
	_ = c.BodyParser(&body)
	raw := body.Email
	if raw == "" {
		raw = c.Query("email")
	}
	email, okE := validate.Email(raw)
	if !okE {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return fail(c, "order.place", apperr.Validation("email is required"))
	}

	placed, err := h.Orders.Place(email)
	if err != nil {
		applog.Security(c, "order.place.fail", map[string]any{"email": email})
		return fail(c, "order.place", err)
	}
	if placed.ClearErr != nil {
		// the order is durable; a stuck cart is an operational problem, not a
		// placement failure
		applog.Error(c, "order.cart_clear.fail", placed.ClearErr,
			map[string]any{"order_id": placed.Order.ID})
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": placed.Order.ID,
		"total":    placed.Order.TotalAmount.String(),
	})
	return ok(c, fiber.StatusCreated, "Order placed successfully", placed.Order)
}

// GET /orders?email=
func (h *OrderHandler) History(c *fiber.Ctx) error {
	email, okE := validate.Email(c.Query("email"))
	if !okE {
		return fail(c, "order.history", apperr.Validation("email is required"))
	}
	orders, err := h.Orders.History(email)
	if err != nil {
		return fail(c, "order.history", err)
	}
	return ok(c, fiber.StatusOK, "Orders retrieved successfully", orders)
}

// POST /request-cancel-order?orderId=
func (h *OrderHandler) RequestCancel(c *fiber.Ctx) error {
	oid, okID := validate.ID(c.Query("orderId"))
	if !okID {
		return fail(c, "order.cancel", apperr.Validation("orderId is required"))
	}
	if err := h.Orders.RequestCancel(domain.OrderID(oid)); err != nil {
		return fail(c, "order.cancel", err)
	}
	applog.Audit(c, "order.cancel.request", map[string]any{"order_id": oid})
	return ok(c, fiber.StatusOK, "Order cancellation requested", nil)
}
