package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bvsbharat/mzon/internal/api"
	"github.com/bvsbharat/mzon/internal/brand"
	"github.com/bvsbharat/mzon/internal/cache"
	"github.com/bvsbharat/mzon/internal/config"
	"github.com/bvsbharat/mzon/internal/gemini"
	"github.com/bvsbharat/mzon/internal/gen"
	"github.com/bvsbharat/mzon/internal/logger"
	"github.com/bvsbharat/mzon/internal/media"
	"github.com/bvsbharat/mzon/internal/middleware"
	"github.com/bvsbharat/mzon/internal/storage"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: cfg.LogFile,
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting application...")

	// History store: in-memory by default, Redis when configured
	var history gen.HistoryStore
	switch cfg.HistoryBackend {
	case "redis":
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Redis history store")
		}
		defer func() {
			log.Info().Msg("Closing Redis client...")
			if err := redisStore.Close(); err != nil {
				log.Error().Err(err).Msg("Error closing Redis client")
			}
		}()
		history = redisStore
	default:
		history = cache.NewMemoryStore()
	}

	// Generation capabilities
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, generation requests will be rejected")
	}
	geminiClient := gemini.NewClient(cfg)

	var combiner gen.VideoCombiner
	if cfg.VideoCombinerURL != "" {
		combiner = media.NewCombiner(cfg.VideoCombinerURL)
	}

	var assets gen.AssetStore
	if store, err := storage.NewR2Store(context.Background(), cfg); err != nil {
		log.Warn().Err(err).Msg("Asset storage disabled, falling back to inline payloads")
	} else {
		assets = store
	}

	orchestrator := gen.NewOrchestrator(gen.Options{
		Credential: cfg.GeminiAPIKey,
		Text:       geminiClient,
		Image:      geminiClient,
		Video:      geminiClient,
		Combiner:   combiner,
		Assets:     assets,
		Brand:      brand.FromConfig(cfg),
		History:    history,
	})

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// Setup API routes
	api.SetupRoutes(app, orchestrator, history, cfg)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
