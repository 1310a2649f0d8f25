package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

func setupServiceRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	serviceCtrl := NewServiceController(db)
	r.GET("/services", serviceCtrl.GetActiveServices)
	r.POST("/services", serviceCtrl.CreateService)
	r.POST("/services/:service_id/options", serviceCtrl.CreateServiceOption)
	return r
}

func TestGetActiveServicesExcludesInactive(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Service{Description: "Activo", Type: "sesion", BasePrice: 100, Active: true})
	db.Create(&models.Service{Description: "Inactivo", Type: "sesion", BasePrice: 100, Active: false})
	r := setupServiceRouter(db)

	req, _ := http.NewRequest("GET", "/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp.Data.([]interface{})
	assert.Len(t, list, 1)
}

func TestCreateServiceOptionRejectsEmptyDropdown(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Description: "Retrato", Type: "sesion", BasePrice: 500, Active: true}
	db.Create(&service)
	r := setupServiceRouter(db)

	w := postJSON(t, r, "/services/1/options", map[string]interface{}{
		"name":    "tamano",
		"kind":    "dropdown",
		"choices": map[string]float64{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.ServiceOption{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateServiceOptionStoresChoices(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Description: "Retrato", Type: "sesion", BasePrice: 500, Active: true}
	db.Create(&service)
	r := setupServiceRouter(db)

	w := postJSON(t, r, "/services/1/options", map[string]interface{}{
		"name":     "tamano",
		"kind":     "dropdown",
		"choices":  map[string]float64{"chica": 0, "grande": 25},
		"required": true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var option models.ServiceOption
	assert.NoError(t, db.First(&option).Error)
	assert.Equal(t, service.ID, option.ServiceID)

	var choices map[string]float64
	assert.NoError(t, json.Unmarshal([]byte(option.Choices), &choices))
	assert.Equal(t, 25.0, choices["grande"])
}
