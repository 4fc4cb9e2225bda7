package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salestrack/internal/config"
	"salestrack/internal/database"
	"salestrack/internal/delivery/http/handler"
	"salestrack/internal/feed"
	"salestrack/internal/infrastructure/database/postgres"
	"salestrack/internal/logger"
	"salestrack/internal/middleware"
	"salestrack/internal/usecase/client"
	"salestrack/internal/usecase/order"
	"salestrack/internal/usecase/salesperson"
	"salestrack/internal/usecase/visit"
)

func SetupRoutes(cfg *config.Config, db *database.Database, broker feed.Broker) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers, CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(1 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	salespersonRepository := postgres.NewSalespersonRepository(db)
	salespersonService := salesperson.NewService(salespersonRepository, broker)
	salespersonHandler := handler.NewSalespersonHandler(salespersonService)

	visitRepository := postgres.NewVisitRepository(db)
	visitService := visit.NewService(visitRepository, salespersonRepository, broker)
	visitHandler := handler.NewVisitHandler(visitService)

	orderRepository := postgres.NewOrderRepository(db)
	orderService := order.NewService(orderRepository, salespersonRepository, broker)
	orderHandler := handler.NewOrderHandler(orderService)

	clientRepository := postgres.NewClientRepository(db)
	clientService := client.NewService(clientRepository, salespersonRepository, broker)
	clientHandler := handler.NewClientHandler(clientService)

	api := router.Group("/api")
	{
		salespersonHandler.RegisterRoutes(api)
		visitHandler.RegisterRoutes(api)
		orderHandler.RegisterRoutes(api)
		clientHandler.RegisterRoutes(api)
	}

	feedHandler := handler.NewFeedHandler(broker)
	feedHandler.RegisterRoutes(router)

	consoleHandler := handler.NewConsoleHandler()
	consoleHandler.RegisterRoutes(router)

	logger.Info("All routes initialized")
	return router
}
