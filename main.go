package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mehraj28/Payroll-Mangement/internal/di"
	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/middleware"
	"github.com/mehraj28/Payroll-Mangement/internal/repository"
	"github.com/mehraj28/Payroll-Mangement/internal/service"
	"github.com/mehraj28/Payroll-Mangement/pkg/config"
	"github.com/mehraj28/Payroll-Mangement/pkg/database"
	"github.com/mehraj28/Payroll-Mangement/pkg/logger"
	"github.com/mehraj28/Payroll-Mangement/pkg/redis"
	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting payroll portal...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Run idempotent schema migrations
	if err := repository.Migrate(ctx, db.Pool()); err != nil {
		appLog.Fatal(fmt.Sprintf("Schema migration failed: %v", err))
	}

	// Initialize Redis for the token revocation store. Optional: without
	// it logout degrades to client-side token discard.
	var cache *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB
		cache, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed, logout revocation disabled: %v", err))
			cache = nil
		} else {
			defer cache.Close()
			appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:     db,
		Cache:  cache,
		Logger: appLog,
		AuthConfig: &service.AuthServiceConfig{
			JWTSecret:         cfg.JWT.Secret,
			AccessTokenExpiry: cfg.JWT.AccessTokenTTL,
		},
	})

	// Seed the bootstrap admin account
	if cfg.Seed.Enabled {
		seedAdmin(ctx, container.AuthService, cfg, appLog)
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))

	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.App.Name))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// Public auth endpoints
	auth := router.Group("/auth")
	{
		auth.POST("/signup", container.AuthHandler.Signup)
		auth.POST("/login", container.AuthHandler.Login)
		auth.POST("/logout", container.AuthHandler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.RequireAuth(container.AuthService))
		{
			protected.GET("/me", container.AuthHandler.Me)
		}
	}

	// Admin endpoints
	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(container.AuthService))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/employees", container.AdminHandler.ListEmployees)
		admin.GET("/expenses/pending", container.AdminHandler.ListPendingExpenses)
		admin.POST("/expenses/:id/action", container.AdminHandler.DecideExpense)
		admin.POST("/salary-slip", container.AdminHandler.CreateSlip)
		admin.GET("/salary-slip/:id/pdf", container.AdminHandler.DownloadSlip)
		admin.GET("/reports/summary", container.AdminHandler.ReportsSummary)
	}

	// Employee self-service endpoints
	employee := router.Group("/employee")
	employee.Use(middleware.RequireAuth(container.AuthService))
	employee.Use(middleware.RequireRole(domain.RoleEmployee))
	{
		employee.GET("/salary-slip", container.EmployeeHandler.ListSlips)
		employee.GET("/salary-slip/:id/pdf", container.EmployeeHandler.DownloadSlip)
		employee.GET("/expense", container.EmployeeHandler.ListExpenses)
		employee.POST("/expense", container.EmployeeHandler.SubmitExpense)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Payroll portal listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}

// seedAdmin creates the bootstrap admin account on first start. A duplicate
// email means the account already exists and is not an error.
func seedAdmin(ctx context.Context, auth service.AuthService, cfg *config.Config, appLog *logger.Logger) {
	_, err := auth.Register(ctx, &dto.SignupRequest{
		FullName: cfg.Seed.FullName,
		Email:    cfg.Seed.Email,
		Password: cfg.Seed.Password,
		Role:     string(domain.RoleAdmin),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			appLog.Info("Seed admin already exists, skipping")
			return
		}
		appLog.Warn(fmt.Sprintf("Failed to seed admin account: %v", err))
		return
	}
	appLog.Info(fmt.Sprintf("Seed admin account created (%s)", cfg.Seed.Email))
}
