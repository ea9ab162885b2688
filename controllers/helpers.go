package controllers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	// numeric(10,2): at most 8 integer digits
	maxMoneyIntegerDigits = 8
	// numeric(12,2)
	maxTotalIntegerDigits = 10

	maxQuantity = math.MaxInt32
)

func errorJSON(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(utils.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func badRequest(c fiber.Ctx, message string) error {
	return errorJSON(c, fiber.StatusBadRequest, message)
}

func notFound(c fiber.Ctx, resource string) error {
	return errorJSON(c, fiber.StatusNotFound, resource+" not found")
}

// internalError logs err and answers with a message that does not leak it
func internalError(c fiber.Ctx, message string, err error) error {
	log.WithError(err).WithField("path", c.Path()).Error(message)
	return errorJSON(c, fiber.StatusInternalServerError, message)
}

var errNotFound = errors.New("not found")

// validationError carries a message that is safe to return to the client
type validationError struct {
	message string
}

func (e validationError) Error() string {
	return e.message
}

func invalid(format string, args ...interface{}) error {
	return validationError{message: fmt.Sprintf(format, args...)}
}

// writeError answers validation errors with 400 and everything else with 500
func writeError(c fiber.Ctx, message string, err error) error {
	var v validationError
	if errors.As(err, &v) {
		return badRequest(c, v.message)
	}
	return internalError(c, message, err)
}

// findByID loads the row named by the :id route parameter into dest
func findByID(c fiber.Ctx, query *gorm.DB, dest interface{}) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return errNotFound
	}
	err = query.First(dest, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errNotFound
	}
	return err
}

// lookupError answers a failed findByID
func lookupError(c fiber.Ctx, resource string, err error) error {
	if errors.Is(err, errNotFound) {
		return notFound(c, resource)
	}
	return internalError(c, "Failed to retrieve "+strings.ToLower(resource), err)
}

// pageParams reads page and limit. Listing is only paginated when page is given.
func pageParams(c fiber.Ctx) (page, limit int, paginated bool) {
	rawPage := c.Query("page")
	if rawPage == "" {
		return 0, 0, false
	}

	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, true
}

// listResponse writes items as a bare array, or inside the paginated envelope
func listResponse(c fiber.Ctx, items interface{}, resource string, page, limit int, total int64, paginated bool) error {
	if !paginated {
		return c.Status(fiber.StatusOK).JSON(items)
	}
	return c.Status(fiber.StatusOK).JSON(utils.SuccessPaginatedResponse{
		Success: true,
		Message: fmt.Sprintf("%s retrieved successfully", resource),
		Data:    items,
		Pagination: utils.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// findPage counts the filtered query when paginating, then loads the page
// into dest with relation (if any) preloaded and rows sorted by orders.
func findPage(query *gorm.DB, relation string, orders []string, dest interface{}, page, limit int, paginated bool) (int64, error) {
	var total int64
	if paginated {
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return 0, err
		}
		query = query.Limit(limit).Offset((page - 1) * limit)
	}
	for _, order := range orders {
		query = query.Order(order)
	}
	if relation != "" {
		query = query.Preload(relation)
	}
	if err := query.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// validateText trims value and checks it is present, storable text and at
// most maxLength characters long
func validateText(field string, value *string, maxLength int) (string, error) {
	if value == nil {
		return "", invalid("%s is required", field)
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return "", invalid("%s may not be blank", field)
	}
	if !utf8.ValidString(trimmed) || strings.ContainsRune(trimmed, 0) {
		return "", invalid("%s contains invalid characters", field)
	}
	if utf8.RuneCountInString(trimmed) > maxLength {
		return "", invalid("%s must be at most %d characters", field, maxLength)
	}
	return trimmed, nil
}

// integerDigits counts the digits left of the decimal point
func integerDigits(value decimal.Decimal) int {
	return len(value.Abs().Truncate(0).String())
}

// validateMoney enforces a non-negative numeric(10,2) value
func validateMoney(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return invalid("%s must not be negative", field)
	}
	if value.Exponent() < -2 && !value.Equal(value.Truncate(2)) {
		return invalid("%s must have no more than 2 decimal places", field)
	}
	if integerDigits(value) > maxMoneyIntegerDigits {
		return invalid("%s must have no more than %d digits before the decimal point", field, maxMoneyIntegerDigits)
	}
	return nil
}
