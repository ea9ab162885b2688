package controllers

import (
	"strconv"

	"pharmacy-pos-backend/models"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

// LoginActivityController exposes the login audit log read-only
type LoginActivityController struct {
	DB *gorm.DB
}

func NewLoginActivityController(db *gorm.DB) *LoginActivityController {
	return &LoginActivityController{DB: db}
}

var loginActivityOrdering = []string{"logged_in_at DESC", "id DESC"}

// GetLoginActivities lists successful logins, most recent first
// @Summary Get Login Activity
// @Tags Login Activity
// @Produce json
// @Param user query int false "Only logins of this user"
// @Param page query int false "Page number"
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.LoginActivityResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/login-activity/ [get]
func (lc *LoginActivityController) GetLoginActivities(c fiber.Ctx) error {
	page, limit, paginated := pageParams(c)

	query := lc.DB.Model(&models.LoginActivity{})
	if userID, err := strconv.ParseUint(c.Query("user"), 10, 64); err == nil {
		query = query.Where("user_id = ?", userID)
	}

	var activities []models.LoginActivity
	total, err := findPage(query, "User", loginActivityOrdering, &activities, page, limit, paginated)
	if err != nil {
		return internalError(c, "Failed to retrieve login activity", err)
	}

	activityList := make([]models.LoginActivityResponse, len(activities))
	for i, activity := range activities {
		activityList[i] = *activity.ToResponse()
	}

	return listResponse(c, activityList, "Login activity", page, limit, total, paginated)
}

// GetLoginActivity retrieves a single login record
// @Summary Get Login Activity Entry
// @Tags Login Activity
// @Produce json
// @Param id path int true "Login activity ID"
// @Success 200 {object} models.LoginActivityResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/login-activity/{id}/ [get]
func (lc *LoginActivityController) GetLoginActivity(c fiber.Ctx) error {
	var activity models.LoginActivity
	if err := findByID(c, lc.DB.Preload("User"), &activity); err != nil {
		return lookupError(c, "Login activity", err)
	}
	return c.Status(fiber.StatusOK).JSON(activity.ToResponse())
}
