package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edoc-portal/config"
	"edoc-portal/internal/assistant"
	deliveryHttp "edoc-portal/internal/delivery/http"
	"edoc-portal/internal/delivery/http/handler"
	"edoc-portal/internal/delivery/http/middleware"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/infrastructure/cache"
	"edoc-portal/internal/infrastructure/database"
	"edoc-portal/internal/infrastructure/objectstore"
	"edoc-portal/internal/infrastructure/storage"
	repositoryImpl "edoc-portal/internal/repository"
	"edoc-portal/internal/service"
	"edoc-portal/internal/usecase"
	"edoc-portal/pkg/jwt"
	"edoc-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
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

// Infrastructure is what the HTTP layer is built on. Tests supply in-memory
// versions of each part.
type Infrastructure struct {
	DB            *gorm.DB
	Store         storage.Store
	Tokens        service.TokenStore
	Users         repository.UserRepository
	ObjectStorage repository.ObjectStorage
	Responder     assistant.Responder
	// Notifier defaults to logging the account links.
	Notifier      service.Notifier
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
	setLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database connected successfully")

	infra := Infrastructure{
		DB:    db,
		Users: repositoryImpl.NewUserRepository(),
	}

	// Record store and token store
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		infra.Store = storage.NewRedisStore(redisClient, cfg.Store.Namespace)
		infra.Tokens = service.NewRedisTokenStore(redisClient, cfg.Store.Namespace)
		logrus.Info("Redis connected successfully")
	default:
		infra.Store = storage.NewNamespaced(storage.NewMemoryStore(), cfg.Store.Namespace)
		infra.Tokens = service.NewMemoryTokenStore()
		logrus.Warn("Using in-memory record store; data is lost on restart")
	}

	// Object storage for uploads
	if cfg.Upload.MinioEndpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		objects, err := objectstore.NewMinioStorage(ctx, cfg.Upload)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
		}
		infra.ObjectStorage = objects
		logrus.Info("MinIO connected successfully")
	} else {
		infra.ObjectStorage = objectstore.NewMemoryStorage()
		logrus.Warn("MINIO_ENDPOINT not set; uploads are kept in memory")
	}

	// Assistant responder
	if cfg.Assistant.OpenAIKey != "" {
		infra.Responder = assistant.NewOpenAIResponder(cfg.Assistant.OpenAIKey, cfg.Assistant.Model, cfg.Assistant.Timeout, cfg.Assistant.ContextTurns)
		logrus.Info("Assistant uses the OpenAI chat API")
	} else {
		infra.Responder = assistant.NewKeywordResponder()
	}

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: NewHandler(cfg, infra, logrus.StandardLogger()),
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func setLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown LOG_LEVEL %q, keeping info", level)
		return
	}
	logrus.SetLevel(parsed)
}

// NewHandler wires repositories, usecases and handlers into the API router.
func NewHandler(cfg *config.Config, infra Infrastructure, log *logrus.Logger) http.Handler {
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repositoryImpl.NewPatientRepository(infra.Store)
	appointmentRepo := repositoryImpl.NewAppointmentRepository(infra.Store)
	teamRepo := repositoryImpl.NewTeamMemberRepository(infra.Store)
	reportRepo := repositoryImpl.NewReportRepository(infra.Store, cfg.Store.ReportCap)
	draftRepo := repositoryImpl.NewDraftRepository(infra.Store)
	chatHistoryRepo := repositoryImpl.NewChatHistoryRepository(infra.Store, cfg.Store.ChatHistoryCap)
	activityRepo := repositoryImpl.NewActivityRepository(infra.Store, cfg.Store.ActivityCap)
	analyticsRepo := repositoryImpl.NewAnalyticsRepository(infra.Store)
	aiModelRepo := repositoryImpl.NewAIModelRepository(infra.Store)

	// Initialize services
	activityService := service.NewActivityService(log, activityRepo)
	medicalAssistant := assistant.New(infra.Responder, assistant.NewFallbackResponder(), log)

	// Initialize usecases
	notifier := infra.Notifier
	if notifier == nil {
		notifier = service.NewLogNotifier(log, cfg.App.PublicURL)
	}
	authUsecase := usecase.NewAuthUsecase(infra.DB, log, infra.Users, jwtService, infra.Tokens, notifier, activityService, cfg.Auth)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, activityService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, activityService)
	teamUsecase := usecase.NewTeamUsecase(log, teamRepo, activityService)
	reportUsecase := usecase.NewReportUsecase(infra.DB, log, reportRepo, draftRepo, infra.Users, activityService)
	assistantUsecase := usecase.NewAssistantUsecase(log, chatHistoryRepo, medicalAssistant)
	analyticsUsecase := usecase.NewAnalyticsUsecase(log, analyticsRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(log, patientRepo, appointmentRepo, teamRepo, reportRepo, activityService)
	uploadUsecase := usecase.NewUploadUsecase(log, infra.ObjectStorage, activityService, cfg.Upload)
	aiModelUsecase := usecase.NewAIModelUsecase(log, aiModelRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator),
		Validation:  handler.NewValidationHandler(customValidator),
		Patient:     handler.NewPatientHandler(patientUsecase, customValidator),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Team:        handler.NewTeamHandler(teamUsecase, customValidator),
		Report:      handler.NewReportHandler(reportUsecase, customValidator),
		Assistant:   handler.NewAssistantHandler(assistantUsecase, customValidator),
		Analytics:   handler.NewAnalyticsHandler(analyticsUsecase),
		Dashboard:   handler.NewDashboardHandler(dashboardUsecase),
		Upload:      handler.NewUploadHandler(uploadUsecase, cfg.Upload.MaxFileSize, cfg.Upload.MaxFiles),
		AIModel:     handler.NewAIModelHandler(aiModelUsecase),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, infra.Tokens, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, loggingMiddleware)
	return router.Setup()
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the database and redis connections
func (app *App) Close() {
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
