package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/controllers"
	"github.com/jetrolopez1/snapframe-hub-sub000/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// registered before any route so gin bakes it into every handler chain
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	userCtrl := controllers.NewUserController(db)
	customerCtrl := controllers.NewCustomerController(db)
	serviceCtrl := controllers.NewServiceController(db)
	packageCtrl := controllers.NewPackageController(db)
	groupCtrl := controllers.NewGroupController(db)
	orderCtrl := controllers.NewOrderController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// tighter rate limit on credential endpoints
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// marketing site reads the catalog without auth
	r.GET("/services", serviceCtrl.GetActiveServices)
	r.GET("/services/:service_id/options", serviceCtrl.GetServiceOptions)
	r.GET("/packages", packageCtrl.GetActivePackages)
	r.GET("/groups", groupCtrl.GetUpcomingGroups)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/users", userCtrl.GetAllUsers)

	// CUSTOMERS
	auth.GET("/customers", customerCtrl.GetAllCustomers)
	auth.GET("/customers/search", customerCtrl.SearchByPhone)
	auth.POST("/customers", customerCtrl.CreateCustomer)
	auth.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	auth.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
	auth.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)

	// SERVICE CATALOG
	auth.GET("/services", serviceCtrl.GetAllServices)
	auth.POST("/services", serviceCtrl.CreateService)
	auth.PATCH("/services/:service_id", serviceCtrl.UpdateService)
	auth.DELETE("/services/:service_id", serviceCtrl.DeleteService)
	auth.GET("/services/:service_id/options", serviceCtrl.GetServiceOptions)
	auth.POST("/services/:service_id/options", serviceCtrl.CreateServiceOption)
	auth.DELETE("/service-options/:option_id", serviceCtrl.DeleteServiceOption)

	// PACKAGES
	auth.GET("/packages", packageCtrl.GetAllPackages)
	auth.POST("/packages", packageCtrl.CreatePackage)
	auth.PATCH("/packages/:package_id", packageCtrl.UpdatePackage)
	auth.DELETE("/packages/:package_id", packageCtrl.DeletePackage)

	// GROUP SESSIONS
	auth.GET("/groups", groupCtrl.GetAllGroups)
	auth.POST("/groups", groupCtrl.CreateGroup)
	auth.GET("/groups/:group_id", groupCtrl.GetGroupByID)
	auth.PATCH("/groups/:group_id", groupCtrl.UpdateGroup)
	auth.DELETE("/groups/:group_id", groupCtrl.DeleteGroup)

	// ORDERS (new-order wizard + management)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.POST("/orders/preview-item", orderCtrl.PreviewItem)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	// ADMIN DASHBOARD
	dashboard := auth.Group("/dashboard")
	dashboard.Use(middlewares.RequireAdmin())
	{
		dashboard.GET("/stats", adminCtrl.GetDashboardStats)
		dashboard.GET("/popular-services", adminCtrl.GetPopularServices)
	}

	return r
}
