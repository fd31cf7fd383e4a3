package middleware

import (
	"strings"

	"go-inventory-genie/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Context keys populated by RequireAuth.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
)

// RequireAuth validates the bearer token and sets the caller's
// identity in the request context. Verification is stateless: the
// signature and expiry are checked, nothing hits the store. Every
// protected handler trusts the user id set here and never one supplied
// by the client.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)

		return c.Next()
	}
}
