package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/pkg/jwt"
)

// RequireAuth validates the bearer token and stores the authenticated user id
// in the request context. Verification is pure: no revocation list and no
// database round-trip.
func RequireAuth(tokens *jwt.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.ErrMissingCredentials
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return apperr.ErrInvalidToken
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			return err
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
