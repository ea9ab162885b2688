package controllers

import (
	"strings"

	"pharmacy-pos-backend/metrics"
	"pharmacy-pos-backend/models"
	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Tokens *utils.TokenService
}

func NewAuthController(db *gorm.DB, tokens *utils.TokenService) *AuthController {
	return &AuthController{DB: db, Tokens: tokens}
}

// Request structs
type RegisterRequest struct {
	Email           string `json:"email" example:"jane@example.com"`
	Username        string `json:"username" example:"jane"`
	Password        string `json:"password" example:"SecurePass123"`
	ConfirmPassword string `json:"confirm_password" example:"SecurePass123"`
}

type LoginRequest struct {
	Username string `json:"username" example:"jane"`
	Password string `json:"password" example:"SecurePass123"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

// Register handles user registration
// @Summary Register a new user
// @Description Create an account from email, username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} utils.RegisterResponse
// @Failure 400 {object} utils.ErrorResponse "Missing fields, password mismatch or duplicate account"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/register/ [post]
func (ac *AuthController) Register(c fiber.Ctx) error {
	var req RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	if req.Email == "" || req.Username == "" || req.Password == "" {
		return badRequest(c, "email, username, and password are required")
	}

	if req.ConfirmPassword != "" && req.Password != req.ConfirmPassword {
		return badRequest(c, "Password and confirmation do not match")
	}

	conflict, err := ac.conflict(req.Username, req.Email)
	if err != nil {
		return internalError(c, "Failed to create user", err)
	}
	if conflict != "" {
		return badRequest(c, conflict)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return internalError(c, "Failed to create user", errors.Wrap(err, "hash password"))
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		IsActive: true,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		// A concurrent registration may have taken the username or email since the check above.
		if conflict, lookupErr := ac.conflict(req.Username, req.Email); lookupErr == nil && conflict != "" {
			return badRequest(c, conflict)
		}
		return internalError(c, "Failed to create user", errors.Wrap(err, "insert user"))
	}

	metrics.Registrations.Inc()
	log.WithField("username", user.Username).Info("User registered successfully")
	return c.Status(fiber.StatusCreated).JSON(utils.RegisterResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// conflict returns the message for an already registered username or email,
// or an empty string when both are free
func (ac *AuthController) conflict(username, email string) (string, error) {
	taken, err := ac.exists("username = ?", username)
	if err != nil {
		return "", err
	}
	if taken {
		return "Username already exists", nil
	}

	taken, err = ac.exists("email = ?", email)
	if err != nil {
		return "", err
	}
	if taken {
		return "Email already exists", nil
	}
	return "", nil
}

func (ac *AuthController) exists(condition string, value string) (bool, error) {
	var count int64
	if err := ac.DB.Model(&models.User{}).Where(condition, value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Login handles user login
// @Summary User login
// @Description Authenticate, record the login and return an access/refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} utils.LoginResponse
// @Failure 400 {object} utils.ErrorResponse "Missing username or password"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/login/ [post]
func (ac *AuthController) Login(c fiber.Ctx) error {
	var req LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return badRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return badRequest(c, "username and password are required")
	}

	user, err := ac.authenticate(req.Username, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError).Inc()
		return internalError(c, "Failed to log in", err)
	}
	if user == nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeInvalidCredentials).Inc()
		log.WithField("username", req.Username).Warn("Invalid credentials")
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	// The audit row is only kept when the token pair could be issued.
	var response utils.LoginResponse
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		activity := models.LoginActivity{UserID: user.ID, Username: user.Username}
		if err := tx.Create(&activity).Error; err != nil {
			return errors.Wrap(err, "record login activity")
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login", activity.LoggedInAt).Error; err != nil {
			return errors.Wrap(err, "update last login")
		}

		access, err := ac.Tokens.GenerateAccessToken(user.ID, user.Username)
		if err != nil {
			return errors.Wrap(err, "generate access token")
		}
		refresh, err := ac.Tokens.GenerateRefreshToken(user.ID, user.Username)
		if err != nil {
			return errors.Wrap(err, "generate refresh token")
		}

		response = utils.LoginResponse{
			Access:   access,
			Refresh:  refresh,
			Username: user.Username,
			IsAdmin:  utils.IsAdmin(user.IsStaff, user.IsSuperuser, user.Username),
		}
		return nil
	})
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeError).Inc()
		return internalError(c, "Failed to log in", err)
	}

	metrics.LoginAttempts.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.WithField("username", user.Username).Info("User logged in successfully")
	return c.Status(fiber.StatusOK).JSON(response)
}

// authenticate returns nil without error for unknown users, inactive
// accounts and wrong passwords alike.
func (ac *AuthController) authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := ac.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.BurnPasswordCheck(password)
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "look up user")
	}

	if !utils.CheckPasswordHash(password, user.Password) || !user.IsActive {
		return nil, nil
	}
	return &user, nil
}

// RefreshToken exchanges a refresh token for a new access token
// @Summary Refresh access token
// @Description Generate a new access token from a valid refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.RefreshResponse
// @Failure 400 {object} utils.ErrorResponse "Refresh token required"
// @Failure 401 {object} utils.ErrorResponse "Invalid or expired refresh token"
// @Router /api/token/refresh/ [post]
func (ac *AuthController) RefreshToken(c fiber.Ctx) error {
	var req RefreshTokenRequest
	if err := c.Bind().Body(&req); err != nil || req.Refresh == "" {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeInvalidRequest).Inc()
		return badRequest(c, "Refresh token required")
	}

	claims, err := ac.Tokens.ValidateToken(req.Refresh, utils.TokenTypeRefresh)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeInvalidCredentials).Inc()
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	var user models.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeInvalidCredentials).Inc()
		return errorJSON(c, fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	access, err := ac.Tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeError).Inc()
		return internalError(c, "Failed to generate access token", err)
	}

	metrics.TokenRefreshes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return c.Status(fiber.StatusOK).JSON(utils.RefreshResponse{Access: access})
}
