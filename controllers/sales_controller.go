package controllers

import (
	"strconv"
	"strings"
	"time"

	"pharmacy-pos-backend/database"
	"pharmacy-pos-backend/metrics"
	"pharmacy-pos-backend/models"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SalesController struct {
	DB *gorm.DB
}

func NewSalesController(db *gorm.DB) *SalesController {
	return &SalesController{DB: db}
}

// SalesRequest is shared by create, update and partial update.
// A total sent by the client is ignored; it is always derived from quantity and price.
type SalesRequest struct {
	Store    *uint            `json:"store" example:"1"`
	Medicine *string          `json:"medicine" example:"Paracetamol 500mg"`
	Quantity *int64           `json:"quantity" example:"3"`
	Price    *decimal.Decimal `json:"price" swaggertype:"string" example:"19.99"`
	Date     *time.Time       `json:"date" example:"2026-01-02T15:04:05Z"`
	Approved *bool            `json:"approved" example:"false"`
}

var salesOrdering = []string{"date DESC", "id DESC"}

func (sc *SalesController) baseQuery() *gorm.DB {
	return sc.DB.Model(&models.Sales{}).Preload("Store")
}

func (sc *SalesController) apply(sale *models.Sales, req SalesRequest, partial bool) error {
	if req.Store != nil {
		var count int64
		if err := sc.DB.Model(&models.Store{}).Where("id = ?", *req.Store).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return invalid("store %d does not exist", *req.Store)
		}
		sale.StoreID = *req.Store
	} else if !partial {
		return invalid("store is required")
	}

	if req.Medicine != nil || !partial {
		medicine, err := validateText("medicine", req.Medicine, 255)
		if err != nil {
			return err
		}
		sale.Medicine = medicine
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return invalid("quantity must be zero or greater")
		}
		if *req.Quantity > maxQuantity {
			return invalid("quantity must be at most %d", maxQuantity)
		}
		sale.Quantity = *req.Quantity
	} else if !partial {
		return invalid("quantity is required")
	}

	if req.Price != nil {
		if err := validateMoney("price", *req.Price); err != nil {
			return err
		}
		sale.Price = *req.Price
	} else if !partial {
		return invalid("price is required")
	}

	// numeric(12,2) total
	if total := models.ComputeTotal(sale.Quantity, sale.Price); integerDigits(total) > maxTotalIntegerDigits {
		return invalid("total must have no more than %d digits before the decimal point", maxTotalIntegerDigits)
	}

	if req.Date != nil {
		sale.Date = req.Date.UTC()
	}
	if req.Approved != nil {
		sale.Approved = *req.Approved
	}
	return nil
}

// GetSales lists sales, most recent first
// @Summary Get Sales
// @Description List sales ordered by date then id, descending. Optional store filter and medicine search.
// @Tags Sales
// @Produce json
// @Param store query int false "Only sales of this store"
// @Param search query string false "Case-insensitive medicine search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.SalesResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/ [get]
// @Router /api/sale/ [get]
func (sc *SalesController) GetSales(c fiber.Ctx) error {
	page, limit, paginated := pageParams(c)

	query := sc.DB.Model(&models.Sales{})
	if storeID, err := strconv.ParseUint(c.Query("store"), 10, 64); err == nil {
		query = query.Where("store_id = ?", storeID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("LOWER(medicine) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var sales []models.Sales
	total, err := findPage(query, "Store", salesOrdering, &sales, page, limit, paginated)
	if err != nil {
		return internalError(c, "Failed to retrieve sales", err)
	}

	saleList := make([]models.SalesResponse, len(sales))
	for i, sale := range sales {
		saleList[i] = *sale.ToResponse()
	}

	return listResponse(c, saleList, "Sales", page, limit, total, paginated)
}

// GetSale retrieves a single sale by ID
// @Summary Get Sale
// @Tags Sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} models.SalesResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/ [get]
// @Router /api/sale/{id}/ [get]
func (sc *SalesController) GetSale(c fiber.Ctx) error {
	var sale models.Sales
	if err := findByID(c, sc.baseQuery(), &sale); err != nil {
		return lookupError(c, "Sale", err)
	}
	return c.Status(fiber.StatusOK).JSON(sale.ToResponse())
}

// CreateSale records a sale; total is computed from quantity and price
// @Summary Create Sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param sale body SalesRequest true "Sale details"
// @Success 201 {object} models.SalesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/ [post]
// @Router /api/sale/ [post]
func (sc *SalesController) CreateSale(c fiber.Ctx) error {
	var req SalesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var sale models.Sales
	if err := sc.apply(&sale, req, false); err != nil {
		return writeError(c, "Failed to create sale", err)
	}

	if err := sc.DB.Omit(clause.Associations).Create(&sale).Error; err != nil {
		return internalError(c, "Failed to create sale", err)
	}

	metrics.ResourceWrites.WithLabelValues("sales", "create").Inc()
	return sc.respond(c, fiber.StatusCreated, sale.ID)
}

// UpdateSale replaces a sale's fields and recomputes its total
// @Summary Update Sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param request body SalesRequest true "Sale details"
// @Success 200 {object} models.SalesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/ [put]
// @Router /api/sale/{id}/ [put]
func (sc *SalesController) UpdateSale(c fiber.Ctx) error {
	return sc.update(c, false)
}

// PatchSale updates only the supplied fields and recomputes the total
// @Summary Partially Update Sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param request body SalesRequest true "Fields to change"
// @Success 200 {object} models.SalesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/ [patch]
// @Router /api/sale/{id}/ [patch]
func (sc *SalesController) PatchSale(c fiber.Ctx) error {
	return sc.update(c, true)
}

func (sc *SalesController) update(c fiber.Ctx, partial bool) error {
	var sale models.Sales
	if err := findByID(c, sc.DB, &sale); err != nil {
		return lookupError(c, "Sale", err)
	}

	var req SalesRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := sc.apply(&sale, req, partial); err != nil {
		return writeError(c, "Failed to update sale", err)
	}

	// Save runs the BeforeSave hook, so the total follows the new quantity and price.
	if err := sc.DB.Omit(clause.Associations).Save(&sale).Error; err != nil {
		return internalError(c, "Failed to update sale", err)
	}

	metrics.ResourceWrites.WithLabelValues("sales", "update").Inc()
	return sc.respond(c, fiber.StatusOK, sale.ID)
}

// DeleteSale deletes a sale and its payments
// @Summary Delete Sale
// @Tags Sales
// @Param id path int true "Sale ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/ [delete]
// @Router /api/sale/{id}/ [delete]
func (sc *SalesController) DeleteSale(c fiber.Ctx) error {
	var sale models.Sales
	if err := findByID(c, sc.DB, &sale); err != nil {
		return lookupError(c, "Sale", err)
	}

	if err := database.DeleteSale(sc.DB, sale.ID); err != nil {
		return internalError(c, "Failed to delete sale", err)
	}

	metrics.ResourceWrites.WithLabelValues("sales", "delete").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

func (sc *SalesController) respond(c fiber.Ctx, status int, id uint) error {
	var sale models.Sales
	if err := sc.baseQuery().First(&sale, id).Error; err != nil {
		return internalError(c, "Failed to retrieve sale", err)
	}
	return c.Status(status).JSON(sale.ToResponse())
}
