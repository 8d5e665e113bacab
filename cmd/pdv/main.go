package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"pdv-client/internal/application/service"
	"pdv-client/internal/config"
	"pdv-client/internal/infrastructure/backend"
	"pdv-client/internal/infrastructure/session"
	"pdv-client/internal/presentation/http/handler"
	"pdv-client/internal/presentation/http/middleware"
	"pdv-client/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.InitMetrics()

	locale := cfg.Currency.Locale()

	// Backend API client (unauthenticated; login binds tokens per session)
	api := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Operator session store
	sessions := session.NewStore(cfg.Session.TTL, locale)

	// Initialize services
	authService := service.NewAuthService(api, sessions)
	printerService := service.NewPrinterService(cfg)
	checkoutService := service.NewCheckoutService(locale, printerService)
	catalogService := service.NewCatalogService()
	userService := service.NewUserService()
	salesService := service.NewSalesService(printerService)
	dashboardService := service.NewDashboardService(locale)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, cfg.Session),
		PDV:       handler.NewPDVHandler(checkoutService),
		Product:   handler.NewProductHandler(catalogService),
		Category:  handler.NewCategoryHandler(catalogService),
		User:      handler.NewUserHandler(userService),
		Sales:     handler.NewSalesHandler(salesService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Auth: authService,
		Cfg:  cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "3000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Backend: %s", cfg.Backend.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
