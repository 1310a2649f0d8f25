package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> admin panel landing numbers
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no role found"))
		return
	}
	role, ok := roleInterface.(string)
	if !ok || role != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var stats struct {
		TotalOrders    int64   `json:"total_orders"`
		TodayOrders    int64   `json:"today_orders"`
		TotalRevenue   float64 `json:"total_revenue"`
		PendingBalance float64 `json:"pending_balance"`
		TotalCustomers int64   `json:"total_customers"`
		OrderStats     struct {
			Pendiente  int64 `json:"pendiente"`
			EnProceso  int64 `json:"en_proceso"`
			Completado int64 `json:"completado"`
			Cancelado  int64 `json:"cancelado"`
		} `json:"order_stats"`
		UpcomingGroups int64 `json:"upcoming_groups"`
	}

	today := time.Now().Format("2006-01-02")

	ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Order{}).Where("DATE(created_at) = ?", today).Count(&stats.TodayOrders)
	ac.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers)

	ac.DB.Model(&models.Order{}).Where("status != ?", models.OrderStatusCancelado).
		Select("COALESCE(SUM(total_price), 0)").Row().Scan(&stats.TotalRevenue)
	ac.DB.Model(&models.Order{}).Where("status IN ?", []string{models.OrderStatusPendiente, models.OrderStatusEnProceso}).
		Select("COALESCE(SUM(remaining_payment), 0)").Row().Scan(&stats.PendingBalance)

	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPendiente).Count(&stats.OrderStats.Pendiente)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusEnProceso).Count(&stats.OrderStats.EnProceso)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompletado).Count(&stats.OrderStats.Completado)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelado).Count(&stats.OrderStats.Cancelado)

	ac.DB.Model(&models.GroupSession{}).
		Where("status = ? AND session_date >= ?", models.GroupStatusProgramada, today).
		Count(&stats.UpcomingGroups)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

// GetPopularServices -> most ordered services, admin only
func (ac *AdminController) GetPopularServices(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var popular []struct {
		ServiceID   uint    `json:"service_id"`
		Description string  `json:"description"`
		Count       int     `json:"count"`
		Revenue     float64 `json:"revenue"`
	}

	ac.DB.Raw(`
		SELECT s.id as service_id, s.description as description,
		COUNT(oi.id) as count, SUM(oi.subtotal) as revenue
		FROM order_items oi
		JOIN services s ON oi.service_id = s.id
		GROUP BY s.id, s.description
		ORDER BY count DESC
		LIMIT 10
	`).Scan(&popular)

	utils.RespondJSON(c, http.StatusOK, "Popular services", popular)
}
