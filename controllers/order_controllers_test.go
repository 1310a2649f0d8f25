package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.ServiceOption{},
		&models.Package{},
		&models.PackageService{},
		&models.GroupSession{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) models.Service {
	t.Helper()
	service := models.Service{Description: "Sesion de estudio", Type: "sesion", BasePrice: 500, Active: true}
	db.Create(&service)
	db.Create(&models.ServiceOption{
		ServiceID: service.ID,
		Name:      "tamano",
		Kind:      models.OptionKindDropdown,
		Choices:   `{"A": 0, "B": 50}`,
		Required:  true,
	})
	db.Create(&models.ServiceOption{
		ServiceID: service.ID,
		Name:      "retoque",
		Kind:      models.OptionKindCheckbox,
		Choices:   `{"true": 30}`,
	})
	return service
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orderCtrl := NewOrderController(db)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.POST("/orders/preview-item", orderCtrl.PreviewItem)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Full wizard round trip over HTTP: inline customer registration, one
// configured line, suggested advance, persisted header + item.
func TestCreateOrderWizard(t *testing.T) {
	db := setupTestDB(t)
	service := seedCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer": map[string]interface{}{
			"name":         "Maria Lopez",
			"country_code": "+52",
			"phone":        "442-123-4567",
		},
		"items": []map[string]interface{}{
			{
				"service_id": service.ID,
				"quantity":   2,
				"selections": map[string]interface{}{"tamano": "B", "retoque": true},
			},
		},
		"delivery_format": "ambos",
		"advance_payment": 348,
		"comments":        "entrega en diciembre",
	}

	w := postJSON(t, r, "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order created", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 1160.0, data["total_price"])
	assert.Equal(t, 348.0, data["advance_payment"])
	assert.Equal(t, 812.0, data["remaining_payment"])
	assert.Equal(t, "pendiente", data["status"])

	// the inline customer was registered with a normalized phone
	var customer models.Customer
	assert.NoError(t, db.Where("phone = ?", "+524421234567").First(&customer).Error)

	var items []models.OrderItem
	db.Find(&items)
	assert.Len(t, items, 1)
	assert.Equal(t, 1160.0, items[0].Subtotal)
}

func TestCreateOrderReusesExistingCustomerByPhone(t *testing.T) {
	db := setupTestDB(t)
	service := seedCatalog(t, db)
	r := setupOrderRouter(db)

	existing := models.Customer{Name: "Maria Lopez", Phone: "+524421234567"}
	db.Create(&existing)

	payload := map[string]interface{}{
		"customer": map[string]interface{}{
			"name":         "Maria L.",
			"country_code": "+52",
			"phone":        "(442) 123 4567",
		},
		"items": []map[string]interface{}{
			{"service_id": service.ID, "quantity": 1},
		},
		"delivery_format": "digital",
	}

	w := postJSON(t, r, "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&models.Customer{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	assert.Equal(t, existing.ID, order.CustomerID)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	r := setupOrderRouter(db)

	existing := models.Customer{Name: "Maria Lopez", Phone: "+524421234567"}
	db.Create(&existing)

	payload := map[string]interface{}{
		"customer_id":     existing.ID,
		"items":           []map[string]interface{}{},
		"delivery_format": "impresa",
	}

	w := postJSON(t, r, "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderUnknownServiceIs404(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)

	existing := models.Customer{Name: "Maria Lopez", Phone: "+524421234567"}
	db.Create(&existing)

	payload := map[string]interface{}{
		"customer_id":     existing.ID,
		"items":           []map[string]interface{}{{"service_id": 999, "quantity": 1}},
		"delivery_format": "impresa",
	}

	w := postJSON(t, r, "/orders", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreviewItemPricesLine(t *testing.T) {
	db := setupTestDB(t)
	service := seedCatalog(t, db)
	r := setupOrderRouter(db)

	payload := map[string]interface{}{
		"service_id": service.ID,
		"quantity":   2,
		"selections": map[string]interface{}{"tamano": "B", "retoque": true},
	}

	w := postJSON(t, r, "/orders/preview-item", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, 1160.0, data["subtotal"])
	assert.Equal(t, "$1,160.00", data["subtotal_display"])
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	service := seedCatalog(t, db)
	r := setupOrderRouter(db)

	existing := models.Customer{Name: "Maria Lopez", Phone: "+524421234567"}
	db.Create(&existing)

	payload := map[string]interface{}{
		"customer_id":     existing.ID,
		"items":           []map[string]interface{}{{"service_id": service.ID, "quantity": 1}},
		"delivery_format": "impresa",
	}
	w := postJSON(t, r, "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)

	body, _ := json.Marshal(map[string]string{"status": "en_proceso"})
	req, _ := http.NewRequest("PATCH", "/orders/"+strconv.Itoa(int(order.ID))+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusEnProceso, order.Status)

	body, _ = json.Marshal(map[string]string{"status": "volando"})
	req, _ = http.NewRequest("PATCH", "/orders/"+strconv.Itoa(int(order.ID))+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
