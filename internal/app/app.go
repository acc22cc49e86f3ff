package app

import (
	"errors"
	"fmt"
	"strings"

	"placement_backend/internal/auth"
	"placement_backend/internal/config"
	"placement_backend/internal/email"
	"placement_backend/internal/handlers"
	"placement_backend/internal/logger"
	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/routes"
	"placement_backend/internal/services"
	"placement_backend/internal/storage"
	"placement_backend/internal/validator"

	_ "placement_backend/docs"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, nil)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// OpenDatabase dials the configured SQL backend. Postgres is the production
// driver; mysql stays available for deployments that already run it.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "", "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return gormDB, nil
}

// AutoMigrate keeps the schema in step with the models. The unique indexes
// it creates, (job_id, user_id) on applications above all, are load-bearing.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Job{},
		&models.Application{},
		&models.Placement{},
		&models.InterviewSchedule{},
		&models.Notification{},
		&models.Upload{},
	)
}

// SetupRouter builds the full gin engine. A non-nil emailProvider overrides
// the SMTP one; tests pass a mock.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	if emailProvider == nil {
		emailProvider = email.NewGomailProvider(cfg)
	}

	serviceContainer := services.NewServiceContainer(emailProvider, store)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	// Serve stored documents at the URL prefix the storage layer hands out.
	// Skipped when the prefix is an absolute URL (external file host).
	if strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		ginRouter.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}

	return ginRouter
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, container.ProfileService),
		JobHandler:          handlers.NewJobHandler(baseHandler, container.JobService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		PlacementHandler:    handlers.NewPlacementHandler(baseHandler, container.PlacementService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, container.AnalyticsService),
		FileHandler:         handlers.NewFileHandler(baseHandler, container.UploadService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// SeedFirstAdmin creates the bootstrap admin account when the configured
// credentials do not exist yet.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("first_admin_email or first_admin_password not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Name:         "Placement Cell",
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
