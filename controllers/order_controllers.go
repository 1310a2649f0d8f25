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

type OrderController struct {
	DB        *gorm.DB
	Catalog   *services.CatalogService
	Resolver  *services.CustomerResolver
	Submitter *services.OrderSubmitter
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:        db,
		Catalog:   services.NewCatalogService(db),
		Resolver:  services.NewCustomerResolver(db),
		Submitter: services.NewOrderSubmitter(db),
	}
}

// GetAllOrders -> list orders with items, optionally filtered by status
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("OrderItems").Preload("Customer").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

type orderItemReq struct {
	ServiceID  uint                   `json:"service_id" binding:"required"`
	Quantity   int                    `json:"quantity"`
	Selections map[string]interface{} `json:"selections"`
}

type newCustomerReq struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"country_code"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
}

// PreviewItem -> prices one configured line for the wizard's live display.
// Pricing always runs server-side against the stored catalog.
func (oc *OrderController) PreviewItem(c *gin.Context) {
	var req orderItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := oc.buildItem(c, req)
	if err != nil {
		oc.respondWorkflowError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item priced", gin.H{
		"subtotal":         item.Subtotal,
		"subtotal_display": utils.FormatCurrencyMXN(item.Subtotal),
	})
}

// CreateOrder -> final step of the new-order wizard. Resolves the customer
// (existing id or inline registration), re-prices every line from the live
// catalog, accumulates them and submits header+items atomically.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		CustomerID     uint            `json:"customer_id"`
		Customer       *newCustomerReq `json:"customer"`
		Items          []orderItemReq  `json:"items" binding:"required"`
		DeliveryFormat string          `json:"delivery_format" binding:"required"`
		AdvancePayment *float64        `json:"advance_payment"`
		Comments       string          `json:"comments"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()

	customer, err := oc.resolveCustomer(c, body.CustomerID, body.Customer)
	if err != nil {
		oc.respondWorkflowError(c, err)
		return
	}

	session := services.OrderSession{}.WithCustomer(customer)
	for _, itemReq := range body.Items {
		item, err := oc.buildItem(c, itemReq)
		if err != nil {
			oc.respondWorkflowError(c, err)
			return
		}
		session = session.Add(item)
	}

	// Advance payment not supplied defaults to 0; bounds are enforced by
	// the submitter.
	advance := 0.0
	if body.AdvancePayment != nil {
		advance = *body.AdvancePayment
	}

	order, err := oc.Submitter.Submit(ctx, session, body.DeliveryFormat, advance, body.Comments)
	if err != nil {
		oc.respondWorkflowError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// buildItem fetches the service and its options, then prices the line.
func (oc *OrderController) buildItem(c *gin.Context, req orderItemReq) (services.SelectedServiceItem, error) {
	ctx := c.Request.Context()

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	service, err := oc.Catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return services.SelectedServiceItem{}, err
	}

	options, err := oc.Catalog.ListOptionsFor(ctx, service.ID)
	if err != nil {
		return services.SelectedServiceItem{}, err
	}

	selections := req.Selections
	if selections == nil {
		selections = map[string]interface{}{}
	}

	return services.NewSelectedItem(*service, options, selections, quantity)
}

func (oc *OrderController) resolveCustomer(c *gin.Context, customerID uint, inline *newCustomerReq) (*models.Customer, error) {
	ctx := c.Request.Context()

	if customerID != 0 {
		var customer models.Customer
		if err := oc.DB.First(&customer, customerID).Error; err != nil {
			return nil, services.ErrCustomerNotFound
		}
		return &customer, nil
	}

	if inline == nil {
		return nil, services.NewValidationError("customer", "customer_id or customer data is required")
	}

	countryCode := inline.CountryCode
	if countryCode == "" {
		countryCode = "+52"
	}

	// lookup-or-create: an existing phone resolves to the existing record
	customer, err := oc.Resolver.FindByPhone(ctx, countryCode, inline.Phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, services.ErrCustomerNotFound) {
		return nil, err
	}

	return oc.Resolver.Create(ctx, services.CustomerInput{
		Name:        inline.Name,
		CountryCode: countryCode,
		LocalNumber: inline.Phone,
		Email:       inline.Email,
		Address:     inline.Address,
	})
}

func (oc *OrderController) respondWorkflowError(c *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrCatalogUnavailable):
		utils.RespondError(c, http.StatusServiceUnavailable, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// GetOrderByID -> order detail with items and customer
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.Preload("OrderItems").Preload("OrderItems.Service").
		Preload("Customer").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> lifecycle transitions from the admin panel
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch req.Status {
	case models.OrderStatusPendiente, models.OrderStatusEnProceso,
		models.OrderStatusCompletado, models.OrderStatusCancelado:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order status"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s status -> %s", order.Folio, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	idStr := c.Param("order_id")
	id, _ := strconv.Atoi(idStr)

	if err := oc.DB.Delete(&models.Order{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
