package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/config"
	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/domain/news"
	"moneystocks/services/chat-api/internal/domain/ocr"
	"moneystocks/services/chat-api/internal/infrastructure/auth"
	"moneystocks/services/chat-api/internal/infrastructure/database"
	"moneystocks/services/chat-api/internal/infrastructure/logger"
	"moneystocks/services/chat-api/internal/infrastructure/newsapi"
	"moneystocks/services/chat-api/internal/infrastructure/newscache"
	"moneystocks/services/chat-api/internal/infrastructure/observability"
	"moneystocks/services/chat-api/internal/infrastructure/openrouter"
	chatrepo "moneystocks/services/chat-api/internal/infrastructure/repository/chat"
	courserepo "moneystocks/services/chat-api/internal/infrastructure/repository/course"
	ocrlogrepo "moneystocks/services/chat-api/internal/infrastructure/repository/ocrlog"
	"moneystocks/services/chat-api/internal/interfaces/httpserver"
)

// @title Chat API
// @version 1.0
// @description Conversational finance assistant with persona-driven replies, receipt OCR, and course news.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	conversationRepository := chatrepo.NewConversationRepository(db)
	messageRepository := chatrepo.NewMessageRepository(db)
	courseRepository := courserepo.NewRepository(db)
	ocrLogRepository := ocrlogrepo.NewRepository(db)

	modelProvider := openrouter.NewClient(openrouter.Options{
		BaseURL: cfg.OpenRouterBaseURL,
		APIKey:  cfg.OpenRouterAPIKey,
		SiteURL: cfg.SiteURL,
		AppName: cfg.AppName,
		Timeout: cfg.OpenRouterTimeout,
	})
	newsClient := newsapi.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey)

	// The news cache is optional; without Redis every request hits NewsAPI.
	var newsCache news.Cache
	if cfg.RedisURL != "" {
		cache, err := newscache.NewCache(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, news caching disabled")
		} else {
			defer cache.Close()
			newsCache = cache
		}
	}

	chatService := chat.NewService(conversationRepository, messageRepository, modelProvider, log)
	ocrService := ocr.NewService(modelProvider, ocrLogRepository, log)
	newsService := news.NewService(courseRepository, newsClient, newsCache, cfg.NewsCacheTTL, log)

	httpServer := httpserver.New(cfg, log, chatService, ocrService, newsService, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
