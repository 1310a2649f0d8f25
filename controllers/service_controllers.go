package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/services"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

type ServiceController struct {
	DB      *gorm.DB
	Catalog *services.CatalogService
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{
		DB:      db,
		Catalog: services.NewCatalogService(db),
	}
}

// GetActiveServices -> public catalog for the marketing site and the wizard
func (sc *ServiceController) GetActiveServices(c *gin.Context) {
	list, err := sc.Catalog.ListActiveServices(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of services", list)
}

// GetAllServices -> admin view including inactive entries
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	var list []models.Service
	if err := sc.DB.Preload("Options").Order("description asc").Find(&list).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of services", list)
}

// GetServiceOptions -> decoded options for one service
func (sc *ServiceController) GetServiceOptions(c *gin.Context) {
	idStr := c.Param("service_id")
	id, _ := strconv.Atoi(idStr)

	// decode first so a malformed row is reported instead of served
	if _, err := sc.Catalog.ListOptionsFor(c.Request.Context(), uint(id)); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, err)
		return
	}

	var rows []models.ServiceOption
	if err := sc.DB.Where("service_id = ?", id).Order("id asc").Find(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Service options", rows)
}

// CreateService
func (sc *ServiceController) CreateService(c *gin.Context) {
	type reqBody struct {
		Description string  `json:"description" binding:"required"`
		Type        string  `json:"type" binding:"required"`
		BasePrice   float64 `json:"base_price"`
		Active      *bool   `json:"active"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.BasePrice < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("base_price cannot be negative"))
		return
	}

	service := models.Service{
		Description: req.Description,
		Type:        req.Type,
		BasePrice:   req.BasePrice,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Service created: %s (ID=%d)", service.Description, service.ID)
	utils.RespondJSON(c, http.StatusCreated, "Service created", service)
}

// CreateServiceOption -> options are validated with the same fail-closed
// decoder the wizard uses, so a malformed choice map can never be stored.
func (sc *ServiceController) CreateServiceOption(c *gin.Context) {
	serviceIDStr := c.Param("service_id")
	serviceID, _ := strconv.Atoi(serviceIDStr)

	var service models.Service
	if err := sc.DB.First(&service, serviceID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		Name     string             `json:"name" binding:"required"`
		Kind     string             `json:"kind" binding:"required"`
		Choices  map[string]float64 `json:"choices" binding:"required"`
		Required bool               `json:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	raw, err := json.Marshal(req.Choices)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	option := models.ServiceOption{
		ServiceID: service.ID,
		Name:      req.Name,
		Kind:      req.Kind,
		Choices:   string(raw),
		Required:  req.Required,
	}

	if _, err := services.DecodeModifier(option); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.DB.Create(&option).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Service option created", option)
}

// UpdateService
func (sc *ServiceController) UpdateService(c *gin.Context) {
	idStr := c.Param("service_id")
	id, _ := strconv.Atoi(idStr)

	var service models.Service
	if err := sc.DB.First(&service, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		Description *string  `json:"description"`
		Type        *string  `json:"type"`
		BasePrice   *float64 `json:"base_price"`
		Active      *bool    `json:"active"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Type != nil {
		service.Type = *req.Type
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("base_price cannot be negative"))
			return
		}
		service.BasePrice = *req.BasePrice
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := sc.DB.Save(&service).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Service updated", service)
}

// DeleteServiceOption
func (sc *ServiceController) DeleteServiceOption(c *gin.Context) {
	idStr := c.Param("option_id")
	id, _ := strconv.Atoi(idStr)

	if err := sc.DB.Delete(&models.ServiceOption{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Service option deleted", gin.H{"option_id": id})
}

// DeleteService -> catalog entries referenced by orders are deactivated
// instead of removed.
func (sc *ServiceController) DeleteService(c *gin.Context) {
	idStr := c.Param("service_id")
	id, _ := strconv.Atoi(idStr)

	var count int64
	sc.DB.Model(&models.OrderItem{}).Where("service_id = ?", id).Count(&count)
	if count > 0 {
		if err := sc.DB.Model(&models.Service{}).Where("id = ?", id).Update("active", false).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Service deactivated (referenced by orders)", gin.H{"service_id": id})
		return
	}

	if err := sc.DB.Delete(&models.Service{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Service deleted", gin.H{"service_id": id})
}
