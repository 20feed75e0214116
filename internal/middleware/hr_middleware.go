package middleware

import (
	"github.com/gofiber/fiber/v2"

	"trackforce/internal/models"
)

// RequireHR ensures the caller carries an hr or admin role. It runs after
// RequireAuth and reads the role stored in the request context.
func RequireHR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || (role != models.RoleHR && role != models.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. HR only."})
		}
		return c.Next()
	}
}
