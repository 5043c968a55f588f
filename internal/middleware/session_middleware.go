package middleware

import (
	"lunaris/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthCookie is the name of the HTTP-only cookie carrying the admin
// session token.
const AuthCookie = "auth-token"

// AuthRequired is a Fiber middleware that verifies the signed session
// cookie before letting a request reach the admin handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AuthCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired session",
			})
		}

		// Stash identity for the admin handlers.
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("role", claims["role"])

		return c.Next()
	}
}
