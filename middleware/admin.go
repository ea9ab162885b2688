package middleware

import (
	"pharmacy-pos-backend/models"
	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminMiddleware lets through callers whose active account passes
// utils.IsAdmin. It must run after AuthMiddleware.
func AdminMiddleware(db *gorm.DB) fiber.Handler {
	return func(c fiber.Ctx) error {
		principal := CurrentPrincipal(c)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Authentication credentials were not provided",
			})
		}

		var user models.User
		err := db.First(&user, principal.UserID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).WithField("user_id", principal.UserID).Error("Failed to load caller")
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Failed to check permissions",
			})
		}
		if err != nil || !user.IsActive || !utils.IsAdmin(user.IsStaff, user.IsSuperuser, user.Username) {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Success: false,
				Error:   "Insufficient permissions",
			})
		}

		return c.Next()
	}
}
