package controllers

import (
	"encoding/json"
	"strings"

	"pharmacy-pos-backend/database"
	"pharmacy-pos-backend/metrics"
	"pharmacy-pos-backend/middleware"
	"pharmacy-pos-backend/models"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreController struct {
	DB *gorm.DB
}

func NewStoreController(db *gorm.DB) *StoreController {
	return &StoreController{DB: db}
}

// StoreRequest is shared by create, update and partial update.
// Nil fields are left unchanged; an explicit "owner": null clears the owner.
type StoreRequest struct {
	Name     *string    `json:"name" example:"Central Pharmacy"`
	Location *string    `json:"location" example:"12 Main Street"`
	Owner    nullableID `json:"owner" swaggertype:"integer" example:"1"`
	Approved *bool      `json:"approved" example:"false"`
}

// nullableID records whether a reference was sent at all, so an absent
// field and a null one can be told apart
type nullableID struct {
	Set   bool
	Value *uint
}

func (n *nullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

var storeOrdering = []string{"id DESC"}

func (sc *StoreController) baseQuery() *gorm.DB {
	return sc.DB.Model(&models.Store{}).Preload("Owner")
}

// apply validates req and copies it onto store. partial allows missing required fields.
func (sc *StoreController) apply(store *models.Store, req StoreRequest, partial bool) error {
	if req.Name != nil || !partial {
		name, err := validateText("name", req.Name, 100)
		if err != nil {
			return err
		}
		store.Name = name
	}
	if req.Location != nil || !partial {
		location, err := validateText("location", req.Location, 255)
		if err != nil {
			return err
		}
		store.Location = location
	}
	if req.Owner.Set {
		if err := sc.setOwner(store, req.Owner.Value); err != nil {
			return err
		}
	}
	if req.Approved != nil {
		store.Approved = *req.Approved
	}
	return nil
}

func (sc *StoreController) setOwner(store *models.Store, ownerID *uint) error {
	store.Owner = nil
	if ownerID == nil {
		store.OwnerID = nil
		return nil
	}

	var count int64
	if err := sc.DB.Model(&models.User{}).Where("id = ?", *ownerID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return invalid("owner %d does not exist", *ownerID)
	}
	store.OwnerID = ownerID
	return nil
}

// GetStores lists stores, newest first
// @Summary Get Stores
// @Description List stores ordered by id descending. Supplying page switches to the paginated envelope.
// @Tags Stores
// @Produce json
// @Param search query string false "Case-insensitive name or location search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.StoreResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/store/ [get]
func (sc *StoreController) GetStores(c fiber.Ctx) error {
	page, limit, paginated := pageParams(c)

	query := sc.DB.Model(&models.Store{})
	search := strings.TrimSpace(c.Query("search"))
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}

	var stores []models.Store
	total, err := findPage(query, "Owner", storeOrdering, &stores, page, limit, paginated)
	if err != nil {
		return internalError(c, "Failed to retrieve stores", err)
	}

	storeList := make([]models.StoreResponse, len(stores))
	for i, store := range stores {
		storeList[i] = *store.ToResponse()
	}

	return listResponse(c, storeList, "Stores", page, limit, total, paginated)
}

// GetStore retrieves a single store by ID
// @Summary Get Store
// @Tags Stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} models.StoreResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/store/{id}/ [get]
func (sc *StoreController) GetStore(c fiber.Ctx) error {
	var store models.Store
	if err := findByID(c, sc.baseQuery(), &store); err != nil {
		return lookupError(c, "Store", err)
	}
	return c.Status(fiber.StatusOK).JSON(store.ToResponse())
}

// CreateStore creates a new store
// @Summary Create Store
// @Description Create a store. Owner defaults to the caller when omitted; send null for no owner.
// @Tags Stores
// @Accept json
// @Produce json
// @Param store body StoreRequest true "Store details"
// @Success 201 {object} models.StoreResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/store/ [post]
func (sc *StoreController) CreateStore(c fiber.Ctx) error {
	var req StoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !req.Owner.Set {
		if principal := middleware.CurrentPrincipal(c); principal != nil {
			req.Owner = nullableID{Set: true, Value: &principal.UserID}
		}
	}

	var store models.Store
	if err := sc.apply(&store, req, false); err != nil {
		return writeError(c, "Failed to create store", err)
	}

	if err := sc.DB.Omit(clause.Associations).Create(&store).Error; err != nil {
		return internalError(c, "Failed to create store", err)
	}

	metrics.ResourceWrites.WithLabelValues("store", "create").Inc()
	return sc.respond(c, fiber.StatusCreated, store.ID)
}

// UpdateStore replaces a store's fields
// @Summary Update Store
// @Tags Stores
// @Accept json
// @Produce json
// @Param id path int true "Store ID"
// @Param request body StoreRequest true "Store details"
// @Success 200 {object} models.StoreResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/store/{id}/ [put]
func (sc *StoreController) UpdateStore(c fiber.Ctx) error {
	return sc.update(c, false)
}

// PatchStore updates only the supplied fields
// @Summary Partially Update Store
// @Tags Stores
// @Accept json
// @Produce json
// @Param id path int true "Store ID"
// @Param request body StoreRequest true "Fields to change"
// @Success 200 {object} models.StoreResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/store/{id}/ [patch]
func (sc *StoreController) PatchStore(c fiber.Ctx) error {
	return sc.update(c, true)
}

func (sc *StoreController) update(c fiber.Ctx, partial bool) error {
	var store models.Store
	if err := findByID(c, sc.DB, &store); err != nil {
		return lookupError(c, "Store", err)
	}

	var req StoreRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := sc.apply(&store, req, partial); err != nil {
		return writeError(c, "Failed to update store", err)
	}

	if err := sc.DB.Omit(clause.Associations).Save(&store).Error; err != nil {
		return internalError(c, "Failed to update store", err)
	}

	metrics.ResourceWrites.WithLabelValues("store", "update").Inc()
	return sc.respond(c, fiber.StatusOK, store.ID)
}

// DeleteStore deletes a store together with its sales and their payments
// @Summary Delete Store
// @Tags Stores
// @Param id path int true "Store ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/store/{id}/ [delete]
func (sc *StoreController) DeleteStore(c fiber.Ctx) error {
	var store models.Store
	if err := findByID(c, sc.DB, &store); err != nil {
		return lookupError(c, "Store", err)
	}

	if err := database.DeleteStore(sc.DB, store.ID); err != nil {
		return internalError(c, "Failed to delete store", err)
	}

	metrics.ResourceWrites.WithLabelValues("store", "delete").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// respond reloads the store with its owner so owner_username is populated
func (sc *StoreController) respond(c fiber.Ctx, status int, id uint) error {
	var store models.Store
	if err := sc.baseQuery().First(&store, id).Error; err != nil {
		return internalError(c, "Failed to retrieve store", err)
	}
	return c.Status(status).JSON(store.ToResponse())
}
