package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumedental/clinic-api/config"
	deliveryHttp "github.com/lumedental/clinic-api/internal/delivery/http"
	"github.com/lumedental/clinic-api/internal/delivery/http/handler"
	"github.com/lumedental/clinic-api/internal/delivery/http/middleware"
	domainRepo "github.com/lumedental/clinic-api/internal/domain/repository"
	"github.com/lumedental/clinic-api/internal/infrastructure/cache"
	"github.com/lumedental/clinic-api/internal/infrastructure/database"
	"github.com/lumedental/clinic-api/internal/repository"
	"github.com/lumedental/clinic-api/internal/repository/memory"
	"github.com/lumedental/clinic-api/internal/service"
	"github.com/lumedental/clinic-api/internal/usecase"
	"github.com/lumedental/clinic-api/pkg/session"
	"github.com/lumedental/clinic-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Notifier    *service.Notifier
	Events      *service.EventPublisher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Storage backend
	var userRepo domainRepo.UserRepository
	var appointmentRepo domainRepo.AppointmentRepository

	switch cfg.DB.Driver {
	case "memory":
		userRepo = memory.NewUserRepository()
		appointmentRepo = memory.NewAppointmentRepository()
		logrus.Info("Using in-memory storage")
	default:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		app.DB = db
		userRepo = repository.NewUserRepository(db)
		appointmentRepo = repository.NewAppointmentRepository(db)
	}

	// Session token store: Redis when configured, in-process otherwise
	var tokenStore session.TokenStore
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		tokenStore = session.NewRedisTokenStore(redisClient)
	} else {
		tokenStore = session.NewMemoryTokenStore()
		logrus.Info("Redis not configured, using in-process session store")
	}

	app.Server = initializeServer(cfg, app, userRepo, appointmentRepo, tokenStore)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func initializeServer(
	cfg *config.Config,
	app *App,
	userRepo domainRepo.UserRepository,
	appointmentRepo domainRepo.AppointmentRepository,
	tokenStore session.TokenStore,
) *http.Server {
	log := logrus.StandardLogger()

	customValidator := validator.NewValidator()
	sessions := session.NewManager(cfg.Session, tokenStore)

	// Notification fan-out channels, each optional
	var webhook *service.WebhookDispatcher
	if cfg.Notify.WebhookURL != "" {
		webhook = service.NewWebhookDispatcher(cfg.Notify.WebhookURL, cfg.Notify.Timeout)
	}

	var mailer service.Mailer
	if cfg.Notify.SendGridAPIKey != "" {
		mailer = service.NewSendGridMailer(cfg.Notify.SendGridAPIKey, cfg.Notify.FromEmail, cfg.Notify.Timeout)
	}

	if cfg.Kafka.Broker != "" {
		app.Events = service.NewEventPublisher(cfg.Kafka)
	}

	notifier := service.NewNotifier(log, webhook, mailer, app.Events, cfg.Notify.Timeout)
	app.Notifier = notifier

	// Usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, notifier)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, sessions)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(sessions)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(authHandler, appointmentHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// drain in-flight notification dispatches before closing connections
	if app.Notifier != nil {
		app.Notifier.Wait()
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, kafka)
func (app *App) Close() {
	if app.Events != nil {
		if err := app.Events.Close(); err != nil {
			logrus.Errorf("Failed to close event publisher: %v", err)
		}
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
