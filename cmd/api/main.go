package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-notes/config"
	_ "ai-notes/docs" // Swagger docs
	"ai-notes/internal/httpserver"
	"ai-notes/internal/note/usecase"
	"ai-notes/pkg/database"
	"ai-notes/pkg/datemath"
	"ai-notes/pkg/llmprovider"
	"ai-notes/pkg/log"
)

// @title       AI Notes API
// @description Note taking with LLM drafting, translation and natural-language scheduling.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Notes...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(ctx, database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Driver)

	// 4. DateMath parser
	timezone := cfg.Notes.Timezone
	dateMathParser, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. LLM providers (optional)
	var llm llmprovider.Generator
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		logger.Warn(ctx, "No LLM provider configured: generate and translate routes will answer 503")
	case err != nil:
		logger.Warnf(ctx, "LLM providers unavailable: %v", err)
	default:
		llm = manager
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		DB:          db,
		DBDriver:    cfg.Database.Driver,
		LLM:         llm,
		DateMath:    dateMathParser,
		NoteOptions: usecase.Options{
			DefaultLanguage:      cfg.Notes.DefaultLanguage,
			TranslationCacheSize: cfg.Notes.TranslationCacheSize,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
