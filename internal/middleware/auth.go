package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivio/PlanAppBack/pkg/utils"
)

// Keys under which AuthRequired stores the verified identity on the request
// context. Handlers read the role to gate the plan review workflow.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthRequired guards the coaching endpoints. Intake and portal routes stay
// public, so only the plan workflow carries a bearer token.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, token, found := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or malformed bearer token",
			})
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}
