package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/mockmind/mockmind-api/pkg/validator"

	"github.com/mockmind/mockmind-api/internal/adapter/handler"
	"github.com/mockmind/mockmind-api/internal/adapter/repository"
	"github.com/mockmind/mockmind-api/internal/infrastructure/cache"
	"github.com/mockmind/mockmind-api/internal/infrastructure/database"
	"github.com/mockmind/mockmind-api/internal/infrastructure/storage"
	"github.com/mockmind/mockmind-api/internal/usecase/interview"
	"github.com/mockmind/mockmind-api/internal/usecase/voice"
	pkgai "github.com/mockmind/mockmind-api/pkg/ai"
	"github.com/mockmind/mockmind-api/pkg/config"
	"github.com/mockmind/mockmind-api/pkg/token"
)

// @title           MockMind Interview API
// @version         1.0
// @description     Voice-driven mock interview API with speech analysis and structured feedback

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize Database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		if err := database.AutoMigrate(db, logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize cache. Redis is preferred; an in-memory store keeps the
	// service working without it.
	var speechCache cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		speechCache = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		speechCache = cache.NewRedisStore(redisClient, logger)
	}

	// Initialize object storage for answer audio
	audioStorage, err := storage.NewAudioStorage(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize audio storage: %v", err)
	}

	// Initialize AI clients
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	transcriber := pkgai.NewTranscriber(&cfg.Assembly)

	// Initialize session token manager
	tokenManager := token.NewManager(cfg.Auth.SessionSecret, cfg.Auth.SessionExpiry)

	// Initialize repositories
	sessionRepo := repository.NewInterviewRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize services
	interviewService := interview.NewInterviewService(
		sessionRepo,
		feedbackRepo,
		historyRepo,
		openaiClient,
		transcriber,
		audioStorage,
		interview.DefaultQuestionBanks(),
		cfg.Interview.HistoryLimit,
		logger,
	)
	voiceService := voice.NewVoiceService(
		openaiClient,
		speechCache,
		cfg.Interview.DefaultVoice,
		cfg.Interview.DefaultSpeed,
		cfg.Interview.SpeechCacheTTL,
		logger,
	)

	// Initialize handlers
	questionHandler := handler.NewQuestion(interviewService, logger)
	interviewHandler := handler.NewInterview(interviewService, tokenManager, logger)
	speechHandler := handler.NewSpeech(voiceService, logger)
	historyHandler := handler.NewHistory(interviewService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, tokenManager, questionHandler, interviewHandler, speechHandler, historyHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server stopped")
}
