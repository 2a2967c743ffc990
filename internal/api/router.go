// Package api wires repositories, services and handlers into the gin engine.
package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleetflow/fleetflow-go/internal/config"
	"github.com/fleetflow/fleetflow-go/internal/handler"
	"github.com/fleetflow/fleetflow-go/internal/middleware"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/service"
)

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter(cfg *config.Config, db *sql.DB, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "FleetFlow API is running",
		})
	})

	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	tripRepo := repository.NewTripRepository(db)
	maintRepo := repository.NewMaintenanceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	userRepo := repository.NewUserRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	vehicleHandler := handler.NewVehicleHandler(service.NewVehicleService(db, vehicleRepo), log)
	driverHandler := handler.NewDriverHandler(service.NewDriverService(db, driverRepo), log)
	tripHandler := handler.NewTripHandler(service.NewTripService(db, tripRepo, vehicleRepo, driverRepo), log)
	maintHandler := handler.NewMaintenanceHandler(service.NewMaintenanceService(db, maintRepo, vehicleRepo), log)
	expenseHandler := handler.NewExpenseHandler(service.NewExpenseService(db, expenseRepo, vehicleRepo, tripRepo), log)
	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, cfg.JWTSecret), log)
	analyticsHandler := handler.NewAnalyticsHandler(service.NewAnalyticsService(analyticsRepo), log)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
		}

		protected := api.Group("")
		if cfg.AuthRequired {
			protected.Use(middleware.Auth(cfg.JWTSecret))
		}

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleHandler.List)
			vehicles.POST("", vehicleHandler.Create)
			vehicles.GET("/:id", vehicleHandler.Get)
			vehicles.PUT("/:id", vehicleHandler.Update)
			vehicles.DELETE("/:id", vehicleHandler.Delete)
		}

		drivers := protected.Group("/drivers")
		{
			drivers.GET("", driverHandler.List)
			drivers.POST("", driverHandler.Create)
			drivers.GET("/:id", driverHandler.Get)
			drivers.PUT("/:id", driverHandler.Update)
			drivers.DELETE("/:id", driverHandler.Delete)
		}

		trips := protected.Group("/trips")
		{
			trips.GET("", tripHandler.List)
			trips.POST("", tripHandler.Create)
			trips.GET("/:id", tripHandler.Get)
			trips.PUT("/:id", tripHandler.Update)
		}

		maintenance := protected.Group("/maintenance")
		{
			maintenance.GET("", maintHandler.List)
			maintenance.POST("", maintHandler.Create)
			maintenance.GET("/:id", maintHandler.Get)
			maintenance.PUT("/:id", maintHandler.Update)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/:id", expenseHandler.Get)
		}

		protected.GET("/analytics", analyticsHandler.Report)
	}

	return r
}
