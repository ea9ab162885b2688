package controllers

import (
	"strconv"

	"pharmacy-pos-backend/metrics"
	"pharmacy-pos-backend/models"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// PaymentRequest is shared by create, update and partial update.
// The payment date is assigned at creation and cannot be set by clients.
type PaymentRequest struct {
	Sale     *uint            `json:"sale" example:"1"`
	Amount   *decimal.Decimal `json:"amount" swaggertype:"string" example:"59.97"`
	Method   *string          `json:"method" enums:"cash,card,transfer" example:"cash"`
	Approved *bool            `json:"approved" example:"false"`
}

var paymentOrdering = []string{"date DESC", "id DESC"}

func (pc *PaymentController) baseQuery() *gorm.DB {
	return pc.DB.Model(&models.Payment{}).Preload("Sale")
}

func (pc *PaymentController) apply(payment *models.Payment, req PaymentRequest, partial bool) error {
	if req.Sale != nil {
		var count int64
		if err := pc.DB.Model(&models.Sales{}).Where("id = ?", *req.Sale).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return invalid("sale %d does not exist", *req.Sale)
		}
		payment.SaleID = *req.Sale
	} else if !partial {
		return invalid("sale is required")
	}

	if req.Amount != nil {
		if err := validateMoney("amount", *req.Amount); err != nil {
			return err
		}
		payment.Amount = *req.Amount
	} else if !partial {
		return invalid("amount is required")
	}

	if req.Method != nil {
		if !models.IsValidPaymentMethod(*req.Method) {
			return invalid("%q is not a valid payment method", *req.Method)
		}
		payment.Method = *req.Method
	}
	if req.Approved != nil {
		payment.Approved = *req.Approved
	}
	return nil
}

// GetPayments lists payments, most recent first
// @Summary Get Payments
// @Description List payments ordered by date then id, descending
// @Tags Payments
// @Produce json
// @Param sale query int false "Only payments of this sale"
// @Param page query int false "Page number"
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.PaymentResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payment/ [get]
func (pc *PaymentController) GetPayments(c fiber.Ctx) error {
	page, limit, paginated := pageParams(c)

	query := pc.DB.Model(&models.Payment{})
	if saleID, err := strconv.ParseUint(c.Query("sale"), 10, 64); err == nil {
		query = query.Where("sale_id = ?", saleID)
	}

	var payments []models.Payment
	total, err := findPage(query, "Sale", paymentOrdering, &payments, page, limit, paginated)
	if err != nil {
		return internalError(c, "Failed to retrieve payments", err)
	}

	paymentList := make([]models.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentList[i] = *payment.ToResponse()
	}

	return listResponse(c, paymentList, "Payments", page, limit, total, paginated)
}

// GetPayment retrieves a single payment by ID
// @Summary Get Payment
// @Tags Payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.PaymentResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payment/{id}/ [get]
func (pc *PaymentController) GetPayment(c fiber.Ctx) error {
	var payment models.Payment
	if err := findByID(c, pc.baseQuery(), &payment); err != nil {
		return lookupError(c, "Payment", err)
	}
	return c.Status(fiber.StatusOK).JSON(payment.ToResponse())
}

// CreatePayment records a payment against a sale
// @Summary Create Payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body PaymentRequest true "Payment details"
// @Success 201 {object} models.PaymentResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payment/ [post]
func (pc *PaymentController) CreatePayment(c fiber.Ctx) error {
	var req PaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	payment := models.Payment{Method: models.PaymentMethodCash}
	if err := pc.apply(&payment, req, false); err != nil {
		return writeError(c, "Failed to create payment", err)
	}

	if err := pc.DB.Omit(clause.Associations).Create(&payment).Error; err != nil {
		return internalError(c, "Failed to create payment", err)
	}

	metrics.ResourceWrites.WithLabelValues("payment", "create").Inc()
	return pc.respond(c, fiber.StatusCreated, payment.ID)
}

// UpdatePayment replaces a payment's fields; the date is kept
// @Summary Update Payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body PaymentRequest true "Payment details"
// @Success 200 {object} models.PaymentResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payment/{id}/ [put]
func (pc *PaymentController) UpdatePayment(c fiber.Ctx) error {
	return pc.update(c, false)
}

// PatchPayment updates only the supplied fields
// @Summary Partially Update Payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body PaymentRequest true "Fields to change"
// @Success 200 {object} models.PaymentResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payment/{id}/ [patch]
func (pc *PaymentController) PatchPayment(c fiber.Ctx) error {
	return pc.update(c, true)
}

func (pc *PaymentController) update(c fiber.Ctx, partial bool) error {
	var payment models.Payment
	if err := findByID(c, pc.DB, &payment); err != nil {
		return lookupError(c, "Payment", err)
	}

	var req PaymentRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := pc.apply(&payment, req, partial); err != nil {
		return writeError(c, "Failed to update payment", err)
	}

	if err := pc.DB.Omit(clause.Associations).Save(&payment).Error; err != nil {
		return internalError(c, "Failed to update payment", err)
	}

	metrics.ResourceWrites.WithLabelValues("payment", "update").Inc()
	return pc.respond(c, fiber.StatusOK, payment.ID)
}

// DeletePayment deletes a payment
// @Summary Delete Payment
// @Tags Payments
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payment/{id}/ [delete]
func (pc *PaymentController) DeletePayment(c fiber.Ctx) error {
	var payment models.Payment
	if err := findByID(c, pc.DB, &payment); err != nil {
		return lookupError(c, "Payment", err)
	}

	if err := pc.DB.Delete(&payment).Error; err != nil {
		return internalError(c, "Failed to delete payment", err)
	}

	metrics.ResourceWrites.WithLabelValues("payment", "delete").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

func (pc *PaymentController) respond(c fiber.Ctx, status int, id uint) error {
	var payment models.Payment
	if err := pc.baseQuery().First(&payment, id).Error; err != nil {
		return internalError(c, "Failed to retrieve payment", err)
	}
	return c.Status(status).JSON(payment.ToResponse())
}
