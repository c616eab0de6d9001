package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"company-ai/internal/api"
	"company-ai/internal/api/handlers"
	"company-ai/internal/models"
	"company-ai/internal/repository"
	"company-ai/internal/service"
	"company-ai/pkg/config"
	"company-ai/pkg/logger"
	"company-ai/pkg/postgres"

	"go.uber.org/zap"
)

// @title Company AI API
// @version 1.0
// @description Local OpenAI-compatible chat endpoint answering questions about a configured company

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8001
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting company AI server")

	ctx := context.Background()
	kb := buildKnowledgeBase(ctx, cfg, appLogger)

	mode, err := service.ParseKeywordMatch(cfg.Company.KeywordMatch)
	if err != nil {
		appLogger.Warn("Invalid KEYWORD_MATCH, using word matching", zap.Error(err))
	}

	responder := service.NewResponder(kb, mode, appLogger)
	completionService := service.NewCompletionService(responder, appLogger)
	chatHandler := handlers.NewChatHandler(completionService, appLogger)

	app := api.SetupRouter(chatHandler, &cfg.Server, appLogger)

	go func() {
		addr := cfg.Server.Addr()
		appLogger.Info("Server starting",
			zap.String("address", addr),
			zap.String("endpoint", "http://"+addr+api.ChatCompletionsPath),
			zap.String("keyword_match", string(mode)),
		)
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

// buildKnowledgeBase loads the company profile and custom Q&A. A missing or
// broken source never stops startup; the generic profile is used instead.
func buildKnowledgeBase(ctx context.Context, cfg *config.Config, appLogger *zap.Logger) *service.KnowledgeBase {
	profileRepo := repository.NewProfileRepository(cfg.Company.ProfilePath, appLogger)

	profile := service.DefaultProfile()
	var pairs []models.CustomQA
	if companyCfg, found := profileRepo.LoadProfile(ctx); found {
		profile = companyCfg.Company
		pairs = companyCfg.CustomQA
	}

	if cfg.Database.Enabled {
		pairs = append(pairs, loadDatabaseRules(ctx, &cfg.Database, appLogger)...)
	}

	kb := service.NewKnowledgeBase(profile, service.CustomRules(pairs, 0))
	appLogger.Info("Knowledge base ready",
		zap.String("company", profile.Name),
		zap.Int("rules", len(kb.Rules())),
	)
	return kb
}

func loadDatabaseRules(ctx context.Context, dbCfg *config.DatabaseConfig, appLogger *zap.Logger) []models.CustomQA {
	pool, err := postgres.NewPool(ctx, dbCfg, appLogger)
	if err != nil {
		appLogger.Warn("Custom Q&A database unavailable, skipping", zap.Error(err))
		return nil
	}
	defer pool.Close()

	pairs, err := repository.NewRuleRepository(pool, appLogger).ListCustomRules(ctx)
	if err != nil {
		appLogger.Warn("Failed to load custom Q&A from database, skipping", zap.Error(err))
		return nil
	}
	return pairs
}
