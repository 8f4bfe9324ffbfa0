package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/russellpeiris/mocked/internal/apperr"
	applog "github.com/russellpeiris/mocked/internal/log"
)

// ok writes the success envelope every endpoint uses.
func ok(c *fiber.Ctx, status int, message string, data any) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// fail maps an application error to its status and an opaque body. Internal
// causes are logged, never echoed.
func fail(c *fiber.Ctx, action string, err error) error {
	code := apperr.CodeOf(err)
	msg := "Server error, please try again later."
	var ae *apperr.Error
	if errors.As(err, &ae) {
		msg = ae.Msg
	}
	if code == apperr.CodeInternal {
		applog.Error(c, action, err, nil)
	}
	return c.Status(apperr.Status(code)).JSON(fiber.Map{"message": msg, "code": code})
}
