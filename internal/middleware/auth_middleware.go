package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/service"
)

// RequireAdmin guards the admin panel routes. The token is looked up in
// the auth cookie first, then the Authorization header, then the token
// query parameter for the SSE endpoint where EventSource cannot set
// headers.
func RequireAdmin(adminService *service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("auth_token")

		if tokenString == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" && strings.HasSuffix(c.Path(), "/events") {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		claims, err := adminService.ValidateJWT(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		if username, ok := claims["username"].(string); ok {
			c.Locals("username", username)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}

		return c.Next()
	}
}
