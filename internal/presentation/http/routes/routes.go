package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pdv-client/internal/application/service"
	"pdv-client/internal/config"
	"pdv-client/internal/presentation/http/handler"
	"pdv-client/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	PDV       *handler.PDVHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	User      *handler.UserHandler
	Sales     *handler.SalesHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Auth *service.AuthService
	Cfg  *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.PrometheusMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (session cookie required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Auth, deps.Cfg.Session.CookieName))

		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Dashboard
	protected.GET("/dashboard/stats", h.Dashboard.GetStats)
	protected.GET("/dashboard/low-stock", h.Dashboard.GetLowStock)
	protected.GET("/dashboard/top-products", h.Dashboard.GetTopProducts)

	registerPDVRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerCategoryRoutes(protected, h)
	registerSalesRoutes(protected, h)
	registerUserRoutes(protected, h)
	registerPrinterRoutes(protected, h)
}

func registerPDVRoutes(protected *gin.RouterGroup, h *Handlers) {
	pdv := protected.Group("/pdv")
	{
		pdv.GET("/cart", h.PDV.GetCart)
		pdv.POST("/cart/scan", h.PDV.Scan)
		pdv.PUT("/cart/items/:product_id", h.PDV.SetQuantity)
		pdv.DELETE("/cart/items/:product_id", h.PDV.RemoveItem)
		pdv.DELETE("/cart", h.PDV.ClearCart)
		pdv.POST("/payment", h.PDV.OpenPayment)
		pdv.DELETE("/payment", h.PDV.CancelPayment)
		pdv.POST("/payment/tender", h.PDV.EditTender)
		pdv.POST("/payment/discount", h.PDV.EditDiscount)
		pdv.POST("/checkout", h.PDV.Finalize)
		pdv.POST("/receipt/preview", h.PDV.PreviewReceipt)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.PUT("/:id/stock", h.Product.SetStock)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.POST("/:id/reprint", h.Sales.Reprint)
		sales.GET("/:id/receipt", h.Sales.ReprintPreview)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
