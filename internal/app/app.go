package app

import (
	"fmt"
	"time"

	"agency_admin/database"
	"agency_admin/internal/config"
	"agency_admin/internal/email"
	"agency_admin/internal/handlers"
	"agency_admin/internal/imageprocessor"
	"agency_admin/internal/logger"
	"agency_admin/internal/middleware"
	"agency_admin/internal/repositories"
	"agency_admin/internal/routes"
	"agency_admin/internal/services"
	"agency_admin/internal/storage"
	"agency_admin/internal/syncer"
	"agency_admin/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed admin user", "error", err)
	}
	if err := seedDefaultPortfolio(gormDB, cfg, store); err != nil {
		logger.Fatal("Failed to seed portfolio defaults", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, store)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, store storage.Storage) *gin.Engine {
	serviceContainer := initializeServices(cfg, store)
	appHandlers := initializeHandlers(serviceContainer, store)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, store storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	orderRepo := repositories.NewOrderRepository()
	contactRepo := repositories.NewContactRepository()
	portfolioRepo := repositories.NewPortfolioRepository()

	var sender email.Sender
	if cfg.Email.Enabled {
		sender = email.NewSMTPSender(cfg)
	} else {
		logger.Warn("Email notifications disabled")
		sender = email.NopSender{}
	}

	processor := imageprocessor.NewProcessor(cfg.Upload.MaxDimension, cfg.Upload.ImageQuality)
	notifier := buildNotifier(cfg)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo),
		OrderService:     services.NewOrderService(orderRepo),
		ContactService:   services.NewContactService(contactRepo, sender, cfg),
		PortfolioService: services.NewPortfolioService(portfolioRepo, store, processor, notifier, cfg),
	}
}

func initializeHandlers(services *services.ServiceContainer, store storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		OrderHandler:     handlers.NewOrderHandler(baseHandler, services.OrderService),
		ContactHandler:   handlers.NewContactHandler(baseHandler, services.ContactService),
		PortfolioHandler: handlers.NewPortfolioHandler(baseHandler, services.PortfolioService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.OrderService, services.ContactService, services.PortfolioService),
		FileHandler:      handlers.NewFileHandler(baseHandler, store),
	}
}

// buildNotifier picks the catalog sync transport from config. A broken
// notifier config falls back to no-op rather than blocking startup:
// sync is best effort everywhere else too.
func buildNotifier(cfg *config.Config) syncer.Notifier {
	switch cfg.Sync.Mode {
	case "file", "":
		n, err := syncer.NewFileNotifier(cfg.Sync.SnapshotPath)
		if err != nil {
			logger.Warn("File notifier unavailable, sync disabled", "error", err)
			return syncer.NopNotifier{}
		}
		return n
	case "webhook":
		n, err := syncer.NewWebhookNotifier(cfg.Sync.WebhookURL, time.Duration(cfg.Sync.TimeoutSec)*time.Second)
		if err != nil {
			logger.Warn("Webhook notifier unavailable, sync disabled", "error", err)
			return syncer.NopNotifier{}
		}
		return n
	case "none":
		return syncer.NopNotifier{}
	default:
		logger.Warn("Unknown sync mode, sync disabled", "mode", cfg.Sync.Mode)
		return syncer.NopNotifier{}
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
