package middleware

import (
	"strings"

	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
)

// Principal is the authenticated caller resolved from the access token
type Principal struct {
	UserID   uint
	Username string
	TokenID  string
}

type principalKey struct{}

func AuthMiddleware(tokens *utils.TokenService) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Authentication credentials were not provided",
			})
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Invalid authorization header format",
			})
		}

		claims, err := tokens.ValidateToken(parts[1], utils.TokenTypeAccess)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Invalid or expired token",
			})
		}

		c.Locals(principalKey{}, &Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			TokenID:  claims.TokenID,
		})

		return c.Next()
	}
}

// CurrentPrincipal returns the caller stored by AuthMiddleware, or nil
func CurrentPrincipal(c fiber.Ctx) *Principal {
	principal, _ := c.Locals(principalKey{}).(*Principal)
	return principal
}
