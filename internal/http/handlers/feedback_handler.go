package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/services"
	"github.com/russellpeiris/mocked/internal/validate"
)

type FeedbackHandler struct {
	Feedback *services.FeedbackService
}

type feedbackBody struct {
	Email     string `json:"email"`
	ProductID string `json:"productId"`
	Comment   string `json:"comment"`
	Rating    int    `json:"rating"`
}

// POST /product-feedback
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var body feedbackBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, "feedback.submit", apperr.Validation("email and productId are required"))
	}
	email, okE := validate.Email(body.Email)
	pid, okP := validate.ID(body.ProductID)
	if !okE || !okP {
		return fail(c, "feedback.submit", apperr.Validation("email and productId are required"))
	}

	f, err := h.Feedback.Submit(email, domain.ProductID(pid), body.Comment, body.Rating)
	if err != nil {
		return fail(c, "feedback.submit", err)
	}
	return ok(c, fiber.StatusCreated, "Feedback added successfully", f)
}

// GET /product-feedback?productId=&email=
func (h *FeedbackHandler) Get(c *fiber.Ctx) error {
	pid, okP := validate.ID(c.Query("productId"))
	email, okE := validate.Email(c.Query("email"))
	if !okP || !okE {
		return fail(c, "feedback.get", apperr.Validation("productId and email are required"))
	}
	f, err := h.Feedback.ForProductAndEmail(domain.ProductID(pid), email)
	if err != nil {
		return fail(c, "feedback.get", err)
	}
	return ok(c, fiber.StatusOK, "Feedback retrieved successfully", f)
}
