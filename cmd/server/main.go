package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car_rental_app_go/config"
	"car_rental_app_go/db"
	"car_rental_app_go/handlers"
	"car_rental_app_go/logger"
	"car_rental_app_go/middleware"
	"car_rental_app_go/models"
	"car_rental_app_go/services/jobs"
	"car_rental_app_go/services/searchsync"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Setup(cfg.LogLevel, cfg.IsProduction()); err != nil {
		logger.Warnf("Invalid LOG_LEVEL %q, keeping default: %v", cfg.LogLevel, err)
	}

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Visitor{}, &models.SearchEntry{}); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	middleware.InitAssetVersions("static")

	hub := searchsync.NewGormHub(db.DB)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logger.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.SecureCookies))

	// Static files
	e.Static("/static", "static")

	handlers.RegisterRoutes(e, hub)

	// Saved search retention
	scheduler, err := jobs.StartScheduler(db.DB, hub, jobs.RetentionConfig{
		Schedule:  cfg.CleanupSchedule,
		Retention: time.Duration(cfg.SearchRetentionDays) * 24 * time.Hour,
		Location:  cfg.Location(),
	})
	if err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server
	go func() {
		logger.Infof("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
