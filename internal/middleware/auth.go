package middleware

import (
	"strings"

	"github.com/Jenicoon/fitcoach-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// MemberIdentity resolves the member id from a bearer token when one is
// presented. Requests without an Authorization header pass through
// untouched; endpoints accept an explicit memberId in their payloads and
// only fall back to the token identity.
func MemberIdentity(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("member_id", claims.MemberID)
		return c.Next()
	}
}
