package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/database"
	"github.com/dg4329-hash/menumap/internal/repository"
	"github.com/dg4329-hash/menumap/internal/scraper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	date := flag.String("date", "", "menu date to scrape as YYYY-MM-DD (default today)")
	flag.Parse()

	if *date != "" {
		if _, err := time.Parse("2006-01-02", *date); err != nil {
			return fmt.Errorf("invalid -date %q: expected YYYY-MM-DD", *date)
		}
	}

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
	logger.Info().Msg("starting menumap scraper")

	// Cancel the run on interrupt so a partial day is still committed
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Open the nutrition store
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := repository.NewMenuRepository(db, logger)

	// Initialize the dining API client and run the scrape
	client := scraper.NewClient(cfg.Scraper, logger)
	s := scraper.New(client, repo, cfg.Scraper, logger)

	summary, err := s.Run(ctx, *date)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("scrape completed with %d failed locations", summary.Failed)
	}

	return nil
}
