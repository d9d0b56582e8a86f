package di

import (
	"github.com/mehraj28/Payroll-Mangement/internal/handler"
	"github.com/mehraj28/Payroll-Mangement/internal/repository"
	"github.com/mehraj28/Payroll-Mangement/internal/service"
	"github.com/mehraj28/Payroll-Mangement/pkg/database"
	"github.com/mehraj28/Payroll-Mangement/pkg/logger"
	"github.com/mehraj28/Payroll-Mangement/pkg/redis"
)

// Container holds all dependencies for the portal
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache *redis.Client

	// Repositories
	UserRepo       repository.UserRepository
	SalaryRepo     repository.SalaryRepository
	ExpenseRepo    repository.ExpenseRepository
	RevocationRepo repository.RevocationRepository

	// Services
	AuthService    service.AuthService
	SalaryService  service.SalaryService
	ExpenseService service.ExpenseService
	ReportService  service.ReportService

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	AdminHandler    *handler.AdminHandler
	EmployeeHandler *handler.EmployeeHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB         *database.PostgresDB
	Cache      *redis.Client
	Logger     *logger.Logger
	AuthConfig *service.AuthServiceConfig
}

// NewContainer creates a new dependency injection container. Cache may be
// nil, in which case logout revocation is disabled.
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Cache: cfg.Cache,
	}

	// Initialize repositories
	pool := cfg.DB.Pool()
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.SalaryRepo = repository.NewPostgresSalaryRepository(pool)
	c.ExpenseRepo = repository.NewPostgresExpenseRepository(pool)
	if cfg.Cache != nil {
		c.RevocationRepo = repository.NewRedisRevocationRepository(cfg.Cache.Client())
	}

	// Initialize services
	notifier := service.NewLogNotifier(cfg.Logger)
	c.AuthService = service.NewAuthService(c.UserRepo, c.RevocationRepo, cfg.AuthConfig)
	c.SalaryService = service.NewSalaryService(c.SalaryRepo, c.UserRepo, notifier, cfg.Logger)
	c.ExpenseService = service.NewExpenseService(c.ExpenseRepo, c.UserRepo, notifier, cfg.Logger)
	c.ReportService = service.NewReportService(c.UserRepo, c.ExpenseRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Cache)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.AdminHandler = handler.NewAdminHandler(c.AuthService, c.SalaryService, c.ExpenseService, c.ReportService)
	c.EmployeeHandler = handler.NewEmployeeHandler(c.SalaryService, c.ExpenseService)

	return c
}
