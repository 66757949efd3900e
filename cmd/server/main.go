package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talexu-jobs/internal/api/routes"
	"talexu-jobs/internal/config"
	"talexu-jobs/internal/jobsource"
	"talexu-jobs/internal/llm"
	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/retention"
	"talexu-jobs/internal/search"
	"talexu-jobs/internal/storage"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Talexu job search service")

	// Initialize storage backend
	store, err := buildStore(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer store.Close()

	logger.Info("Storage backend ready", map[string]interface{}{"backend": cfg.Storage.Backend})

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize search pipeline
	source := jobsource.NewClient(cfg)
	orchestrator := search.NewOrchestrator(store, source)
	reader := search.NewReader(store)

	// Optional retention sweeper
	sweeper := retention.NewSweeper(cfg, store)
	if err := sweeper.Start(); err != nil {
		logger.Error("Failed to start retention sweeper", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, orchestrator, reader, store, llmManager)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if cfg.Retention.Enabled {
			logger.Info("Stopping retention sweeper...")
			sweeper.Stop()
		}

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{"reason": err.Error()})
	}
}

// buildStore selects the storage backend from configuration. Redis is the
// production backend; memory exists for local development without Redis.
func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis", "":
		return storage.NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
