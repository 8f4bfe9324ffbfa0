package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/russellpeiris/mocked/internal/apperr"
	applog "github.com/russellpeiris/mocked/internal/log"
	"github.com/russellpeiris/mocked/internal/services"
	"github.com/russellpeiris/mocked/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Password string `json:"password"`
	UserRole string `json:"userRole"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body registerBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, "auth.register", apperr.Validation("All fields are required."))
	}
	if body.Name == "" || body.Email == "" || body.Address == "" ||
		body.City == "" || body.Region == "" || body.Password == "" {
		return fail(c, "auth.register", apperr.Validation("All fields are required."))
	}
	email, okE := validate.Email(body.Email)
	if !okE {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return fail(c, "auth.register", apperr.Validation("invalid email"))
	}

	u, err := h.Auth.Register(services.Registration{
		Name:     body.Name,
		Email:    email,
		Address:  body.Address,
		City:     body.City,
		Region:   body.Region,
		Password: body.Password,
		Role:     body.UserRole,
	})
	if err != nil {
		return fail(c, "auth.register", err)
	}
	applog.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return ok(c, fiber.StatusCreated, "User created successfully", u)
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return fail(c, "auth.login", apperr.Validation("email and password are required"))
	}
	if body.Email == "" || body.Password == "" {
		return fail(c, "auth.login", apperr.Validation("email and password are required"))
	}

	u, err := h.Auth.Login(body.Email, body.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email})
		return fail(c, "auth.login", err)
	}
	applog.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return ok(c, fiber.StatusOK, "user logged in successfully", u)
}
