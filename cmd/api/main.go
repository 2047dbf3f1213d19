package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dg4329-hash/menumap/internal/coach"
	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/database"
	"github.com/dg4329-hash/menumap/internal/handler"
	"github.com/dg4329-hash/menumap/internal/match"
	"github.com/dg4329-hash/menumap/internal/repository"
	"github.com/dg4329-hash/menumap/internal/router"
	"github.com/dg4329-hash/menumap/internal/tools"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env in development; deployed environments inject real variables
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting menumap API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the nutrition store
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := repository.NewMenuRepository(db, logger)

	// Initialize the matching engine
	engine := match.NewEngine(repo, match.NewParser(match.DefaultTables()), logger)

	// Initialize the tool layer shared by the coach and the hours endpoint
	schedule := tools.NewSchedule(nil, tools.NewYorkClock())
	registry := tools.NewRegistry(repo, tools.DefaultClassifier(), schedule, logger)

	// Initialize the AI coach
	llmClient := coach.NewClient(cfg.LLM, logger)
	if !llmClient.Configured() {
		logger.Warn().Msg("LLM API key not set, /api/chat will report the coach as unavailable")
	}
	aiCoach := coach.NewCoach(llmClient, registry, logger)

	// Initialize HTTP handlers
	searchHandler := handler.NewSearchHandler(engine, logger)
	chatHandler := handler.NewChatHandler(aiCoach, logger)
	menuHandler := handler.NewMenuHandler(repo, schedule, logger)

	// Initialize router
	mux := router.New(searchHandler, chatHandler, menuHandler, logger)

	// Create HTTP server. The write timeout is generous because /api/chat
	// waits on the upstream chat API, possibly across several tool rounds.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
