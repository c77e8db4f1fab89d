package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bankist/internal/config"
	"bankist/internal/database"
	"bankist/internal/handlers"
	"bankist/internal/middleware"
	"bankist/internal/presenter"
	"bankist/internal/repositories"
	"bankist/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg),
	}))
	slog.SetDefault(logger)

	if err := database.RunMigrationsIfEnabled(cfg.Database.Driver, cfg.Database.DSN()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
	}

	if err := database.Seed(db.DB, cfg.Security.BCryptCost); err != nil {
		log.Fatal("Failed to seed account directory:", err)
	}

	// repositories
	accountRepo := repositories.NewAccountRepository(db.DB)

	// services
	metrics := services.NewPrometheusMetrics()
	pinService := services.NewPINService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)
	accountService := services.NewAccountService(accountRepo, pinService, logger)
	logPresenter := presenter.NewLogPresenter(logger)
	sessionManager := services.NewSessionManager(accountService, logPresenter, metrics, logger, &cfg.Session)
	defer sessionManager.Shutdown()

	// handlers
	authHandler := handlers.NewAuthHandler(sessionManager, accountService, tokenService, cfg, logger)
	accountHandler := handlers.NewAccountHandler(sessionManager, logger)
	sessionHandler := handlers.NewSessionHandler(sessionManager, logger)
	healthHandler := handlers.NewHealthHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/auth/login", authHandler.Login)

	requireSession := middleware.RequireSession(tokenService, sessionManager)
	touchSession := middleware.TouchSession(sessionManager)

	api.POST("/auth/logout", authHandler.Logout, requireSession)

	account := api.Group("/account", requireSession, touchSession)
	account.GET("", accountHandler.View)
	account.POST("/transfers", accountHandler.Transfer)
	account.POST("/loans", accountHandler.Loan)
	account.POST("/sort", accountHandler.ToggleSort)
	account.DELETE("", accountHandler.Close)

	// the countdown poll must not reset the clock, so no touch middleware
	api.GET("/session/countdown", sessionHandler.Countdown, requireSession)

	if cfg.IsDevelopment() {
		seeder := services.NewDemoSeeder(accountRepo, pinService, logger)
		devHandler := handlers.NewDevHandler(seeder, logger)
		api.POST("/dev/accounts/generate", devHandler.GenerateAccounts)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "env", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func logLevel(cfg *config.Config) slog.Level {
	if cfg.IsProduction() {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
