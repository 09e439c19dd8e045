package middleware

import (
	"github.com/gofiber/fiber/v2"

	"careon/api-gateway/internal/authtoken"
)

// AdminRequired gates a route on a valid admin session cookie. It answers a
// generic 401 regardless of which check failed.
func AdminRequired(tokens *authtoken.Scheme, adminUsername string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(authtoken.CookieName)
		if token == "" || !tokens.Verify(token, adminUsername) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized",
			})
		}
		return c.Next()
	}
}
