package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diagnolab/config"
	deliveryHttp "diagnolab/internal/delivery/http"
	"diagnolab/internal/delivery/http/handler"
	"diagnolab/internal/delivery/http/middleware"
	"diagnolab/internal/infrastructure/cache"
	"diagnolab/internal/infrastructure/database"
	"diagnolab/internal/repository"
	"diagnolab/internal/service"
	"diagnolab/internal/usecase"
	"diagnolab/pkg/jwt"
	"diagnolab/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply pending schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	vendorProfileRepo := repository.NewVendorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	organRepo := repository.NewOrganRepository()
	labTestRepo := repository.NewLabTestRepository()
	testPackageRepo := repository.NewTestPackageRepository()
	bookingRepo := repository.NewBookingRepository()
	couponRepo := repository.NewCouponRepository()
	faqRepo := repository.NewFaqRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	auditService := service.NewAuditService(log, auditLogRepo)
	couponVerifier := service.NewCouponVerifier()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, vendorProfileRepo, patientProfileRepo, auditService, jwtService, redisClient)
	checkoutUsecase := usecase.NewCheckoutUsecase(db, log, bookingRepo, labTestRepo, couponRepo, vendorProfileRepo, patientProfileRepo, auditService)
	vendorBookingUsecase := usecase.NewVendorBookingUsecase(db, log, bookingRepo, couponRepo, couponVerifier, auditService)
	labTestUsecase := usecase.NewLabTestUsecase(db, log, labTestRepo, organRepo, vendorProfileRepo, auditService)
	organUsecase := usecase.NewOrganUsecase(db, log, organRepo, auditService)
	packageUsecase := usecase.NewPackageUsecase(db, log, testPackageRepo, labTestRepo, auditService)
	couponUsecase := usecase.NewCouponUsecase(db, log, couponRepo, auditService)
	faqUsecase := usecase.NewFaqUsecase(db, log, faqRepo)
	vendorAdminUsecase := usecase.NewVendorAdminUsecase(db, log, vendorProfileRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(checkoutUsecase, customValidator)
	vendorBookingHandler := handler.NewVendorBookingHandler(vendorBookingUsecase, customValidator)
	labTestHandler := handler.NewLabTestHandler(labTestUsecase, customValidator)
	organHandler := handler.NewOrganHandler(organUsecase, customValidator)
	packageHandler := handler.NewPackageHandler(packageUsecase, customValidator)
	couponHandler := handler.NewCouponHandler(couponUsecase, customValidator)
	faqHandler := handler.NewFaqHandler(faqUsecase, customValidator)
	vendorHandler := handler.NewVendorHandler(vendorAdminUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		bookingHandler,
		vendorBookingHandler,
		labTestHandler,
		organHandler,
		packageHandler,
		couponHandler,
		faqHandler,
		vendorHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
