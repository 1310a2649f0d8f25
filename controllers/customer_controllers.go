package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/services"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

type CustomerController struct {
	DB       *gorm.DB
	Resolver *services.CustomerResolver
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{
		DB:       db,
		Resolver: services.NewCustomerResolver(db),
	}
}

// GetAllCustomers -> list customers, optionally filtered by name
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	query := cc.DB.Order("name asc")
	if name := c.Query("name"); name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// SearchByPhone -> the wizard's phone lookup; 404 triggers registration
func (cc *CustomerController) SearchByPhone(c *gin.Context) {
	countryCode := c.DefaultQuery("country_code", "+52")
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("phone query parameter is required"))
		return
	}

	customer, err := cc.Resolver.FindByPhone(c.Request.Context(), countryCode, phone)
	if errors.Is(err, services.ErrCustomerNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer found", customer)
}

// CreateCustomer -> registration (lookup-miss branch of the wizard)
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Name        string  `json:"name" binding:"required"`
		CountryCode string  `json:"country_code"`
		Phone       string  `json:"phone" binding:"required"`
		Email       *string `json:"email"`
		Address     *string `json:"address"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.CountryCode == "" {
		req.CountryCode = "+52"
	}

	customer, err := cc.Resolver.Create(c.Request.Context(), services.CustomerInput{
		Name:        req.Name,
		CountryCode: req.CountryCode,
		LocalNumber: req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	})
	if services.IsValidationError(err) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID -> customer detail with order history
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var orders []models.Order
	cc.DB.Preload("OrderItems").Where("customer_id = ?", customer.ID).
		Order("created_at desc").Find(&orders)

	utils.RespondJSON(c, http.StatusOK, "Customer detail", gin.H{
		"customer": customer,
		"orders":   orders,
	})
}

// UpdateCustomer -> edit contact data
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Name    *string `json:"name"`
		Email   *string `json:"email"`
		Address *string `json:"address"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = req.Address
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// DeleteCustomer
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	idStr := c.Param("customer_id")
	id, _ := strconv.Atoi(idStr)

	if err := cc.DB.Delete(&models.Customer{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}
