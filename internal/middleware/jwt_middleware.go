package middleware

import (
	"strings"

	"poshstore/internal/models"
	"poshstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token. On
// success it stores the caller's identity and role in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		role, _ := claims["role"].(string)
		c.Locals("user_id", claims["user_id"])
		c.Locals("email", claims["email"])
		c.Locals("role", role)
		c.Locals("is_operator", role == models.RoleAdmin || role == models.RoleSuperAdmin)

		return c.Next()
	}
}

// OperatorRequired rejects callers without an administrative role. It must
// run after AuthRequired.
func OperatorRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if operator, ok := c.Locals("is_operator").(bool); !ok || !operator {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's ID from the request context.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// IsOperator reports whether the authenticated caller holds an
// administrative role.
func IsOperator(c *fiber.Ctx) bool {
	operator, _ := c.Locals("is_operator").(bool)
	return operator
}
