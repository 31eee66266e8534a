//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"moneystocks/services/chat-api/internal/config"
	chatDomain "moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/domain/llm"
	newsDomain "moneystocks/services/chat-api/internal/domain/news"
	ocrDomain "moneystocks/services/chat-api/internal/domain/ocr"
	"moneystocks/services/chat-api/internal/infrastructure/auth"
	"moneystocks/services/chat-api/internal/infrastructure/database"
	"moneystocks/services/chat-api/internal/infrastructure/logger"
	"moneystocks/services/chat-api/internal/infrastructure/newsapi"
	"moneystocks/services/chat-api/internal/infrastructure/openrouter"
	chatrepo "moneystocks/services/chat-api/internal/infrastructure/repository/chat"
	courserepo "moneystocks/services/chat-api/internal/infrastructure/repository/course"
	ocrlogrepo "moneystocks/services/chat-api/internal/infrastructure/repository/ocrlog"
	"moneystocks/services/chat-api/internal/interfaces/httpserver"
)

var chatSet = wire.NewSet(
	chatrepo.NewConversationRepository,
	wire.Bind(new(chatDomain.ConversationRepository), new(*chatrepo.ConversationRepository)),
	chatrepo.NewMessageRepository,
	wire.Bind(new(chatDomain.MessageRepository), new(*chatrepo.MessageRepository)),
	courserepo.NewRepository,
	wire.Bind(new(newsDomain.CourseRepository), new(*courserepo.Repository)),
	ocrlogrepo.NewRepository,
	wire.Bind(new(ocrDomain.LogRepository), new(*ocrlogrepo.Repository)),
	newModelProvider,
	wire.Bind(new(llm.Provider), new(*openrouter.Client)),
	newNewsClient,
	wire.Bind(new(newsDomain.Client), new(*newsapi.Client)),
	newChatService,
	newOCRService,
	newNewsService,
)

// BuildApplication demonstrates how to assemble the chat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newGormDB,
		newAuthValidator,
		chatSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newGormDB(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}

func newModelProvider(cfg *config.Config) *openrouter.Client {
	return openrouter.NewClient(openrouter.Options{
		BaseURL: cfg.OpenRouterBaseURL,
		APIKey:  cfg.OpenRouterAPIKey,
		SiteURL: cfg.SiteURL,
		AppName: cfg.AppName,
		Timeout: cfg.OpenRouterTimeout,
	})
}

func newNewsClient(cfg *config.Config) *newsapi.Client {
	return newsapi.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey)
}

func newChatService(
	conversations chatDomain.ConversationRepository,
	messages chatDomain.MessageRepository,
	provider llm.Provider,
	log zerolog.Logger,
) chatDomain.Service {
	return chatDomain.NewService(conversations, messages, provider, log)
}

func newOCRService(provider llm.Provider, logs ocrDomain.LogRepository, log zerolog.Logger) ocrDomain.Service {
	return ocrDomain.NewService(provider, logs, log)
}

func newNewsService(
	courses newsDomain.CourseRepository,
	client newsDomain.Client,
	cfg *config.Config,
	log zerolog.Logger,
) newsDomain.Service {
	return newsDomain.NewService(courses, client, nil, cfg.NewsCacheTTL, log)
}
