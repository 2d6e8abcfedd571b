package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartspend/internal/config"
	"smartspend/internal/database"
	"smartspend/internal/handlers"
	"smartspend/internal/middleware"
	"smartspend/internal/repositories"
	"smartspend/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.IsProduction() {
		if err := runMigrations(cfg, logger); err != nil {
			logger.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		if err := db.AutoMigrate(); err != nil {
			logger.Error("Failed to auto-migrate schema", "error", err)
			os.Exit(1)
		}
		if err := db.CreateIndexes(); err != nil {
			logger.Error("Failed to create indexes", "error", err)
			os.Exit(1)
		}
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	auditService := services.NewAuditService(auditRepo, logger)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, auditService, logger)
	expenseService := services.NewExpenseService(expenseRepo, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	analyticsHandler := handlers.NewAnalyticsHandler(expenseService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.Logger())

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Authenticated routes
	protected := api.Group("", middleware.RequireAuth(tokenService))
	protected.GET("/auth/profile", authHandler.Profile)

	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.PATCH("/expenses/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	protected.GET("/expenses/export", expenseHandler.ExportExpenses)

	protected.GET("/analytics/summary", analyticsHandler.GetSummary)
	protected.GET("/analytics/series", analyticsHandler.GetSeries)

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting smartspend API", "addr", addr, "environment", cfg.Server.Environment)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

// runMigrations applies versioned SQL migrations with a plain database/sql
// connection, waiting for the database to accept connections first
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	sqlDB, err := database.OpenForMigrations(cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner := database.NewMigrationRunner(sqlDB)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	logger.Info("Running database migrations")
	return runner.RunMigrations()
}
