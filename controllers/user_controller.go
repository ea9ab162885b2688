package controllers

import (
	"strings"

	"pharmacy-pos-backend/database"
	"pharmacy-pos-backend/metrics"
	"pharmacy-pos-backend/middleware"
	"pharmacy-pos-backend/models"

	"github.com/gofiber/fiber/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserController serves account administration; routes are admin only
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var userOrdering = []string{"id DESC"}

// GetUsers lists accounts, newest first
// @Summary Get Users
// @Tags Users
// @Produce json
// @Param search query string false "Case-insensitive username or email search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.UserResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/users/ [get]
func (uc *UserController) GetUsers(c fiber.Ctx) error {
	page, limit, paginated := pageParams(c)

	query := uc.DB.Model(&models.User{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var users []models.User
	total, err := findPage(query, "", userOrdering, &users, page, limit, paginated)
	if err != nil {
		return internalError(c, "Failed to retrieve users", err)
	}

	userList := make([]models.UserResponse, len(users))
	for i, user := range users {
		userList[i] = *user.ToResponse()
	}

	return listResponse(c, userList, "Users", page, limit, total, paginated)
}

// GetUser retrieves a single account
// @Summary Get User
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/users/{id}/ [get]
func (uc *UserController) GetUser(c fiber.Ctx) error {
	var user models.User
	if err := findByID(c, uc.DB, &user); err != nil {
		return lookupError(c, "User", err)
	}
	return c.Status(fiber.StatusOK).JSON(user.ToResponse())
}

// DeleteUser removes an account with its stores, their sales and payments, and its login history
// @Summary Delete User
// @Tags Users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse "Own account"
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/users/{id}/ [delete]
func (uc *UserController) DeleteUser(c fiber.Ctx) error {
	var user models.User
	if err := findByID(c, uc.DB, &user); err != nil {
		return lookupError(c, "User", err)
	}

	if principal := middleware.CurrentPrincipal(c); principal != nil && principal.UserID == user.ID {
		return badRequest(c, "You cannot delete your own account")
	}

	if err := database.DeleteUser(uc.DB, user.ID); err != nil {
		return internalError(c, "Failed to delete user", err)
	}

	metrics.ResourceWrites.WithLabelValues("user", "delete").Inc()
	log.WithField("username", user.Username).Info("User deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
