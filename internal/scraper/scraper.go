// Package scraper pulls menus for every campus dining location from the
// dineoncampus API and writes them to the nutrition store.
package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

// dietaryFilterNames are the upstream filter labels stored as dietary
// tags. Everything else on an item's filter list is an allergen.
var dietaryFilterNames = map[string]bool{
	"Vegan":           true,
	"Vegetarian":      true,
	"Avoiding Gluten": true,
	"Halal":           true,
	"Kosher":          true,
}

// RunSummary reports what one scrape run accomplished.
type RunSummary struct {
	RunID      string
	Date       string
	Locations  int
	ItemsSaved int
	Closed     int
	Failed     int
}

// Scraper walks every dining location for a date and upserts the menus
// it finds.
type Scraper struct {
	client *Client
	repo   repository.MenuWriter
	delay  time.Duration
	logger zerolog.Logger
}

// New creates a Scraper. The request delay from the configuration is
// applied after every API call to stay polite to the upstream.
func New(client *Client, repo repository.MenuWriter, cfg config.ScraperConfig, logger zerolog.Logger) *Scraper {
	return &Scraper{
		client: client,
		repo:   repo,
		delay:  time.Duration(cfg.RequestDelayMS) * time.Millisecond,
		logger: logger.With().Str("component", "scraper").Logger(),
	}
}

// Run scrapes every location's menu for the date (today when empty) and
// returns a summary. A location that fails or reports closed is counted
// and skipped; only site-level failures abort the run.
func (s *Scraper) Run(ctx context.Context, date string) (*RunSummary, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	runID := uuid.NewString()
	logger := s.logger.With().Str("run_id", runID).Str("date", date).Logger()
	logger.Info().Msg("starting scrape run")

	siteID, err := s.client.SiteID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site: %w", err)
	}
	s.pause(ctx)

	locations, err := s.client.Locations(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	logger.Info().Int("count", len(locations)).Msg("locations discovered")

	if err := s.repo.UpsertLocations(ctx, locations); err != nil {
		return nil, fmt.Errorf("failed to save locations: %w", err)
	}

	summary := &RunSummary{RunID: runID, Date: date, Locations: len(locations)}

	for i, loc := range locations {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		locLogger := logger.With().
			Str("location", loc.Name).
			Int("index", i+1).
			Int("total", len(locations)).
			Logger()

		items, closed, err := s.scrapeLocation(ctx, loc, date, locLogger)
		if err != nil {
			locLogger.Warn().Err(err).Msg("location scrape failed")
			summary.Failed++
			continue
		}
		if closed {
			locLogger.Info().Msg("location closed")
			summary.Closed++
			continue
		}

		written, err := s.repo.UpsertMenuItems(ctx, items)
		if err != nil {
			locLogger.Error().Err(err).Msg("failed to save menu items")
			summary.Failed++
			continue
		}

		locLogger.Info().Int("items", written).Msg("location scraped")
		summary.ItemsSaved += written
	}

	logger.Info().
		Int("locations", summary.Locations).
		Int("items_saved", summary.ItemsSaved).
		Int("closed", summary.Closed).
		Int("failed", summary.Failed).
		Msg("scrape run complete")

	return summary, nil
}

// scrapeLocation collects every item a location serves on a date across
// all of its meal periods.
func (s *Scraper) scrapeLocation(ctx context.Context, loc model.Location, date string, logger zerolog.Logger) ([]model.MenuItem, bool, error) {
	periods, closed, err := s.client.Periods(ctx, loc.ID, date)
	s.pause(ctx)
	if err != nil {
		return nil, false, err
	}
	if closed {
		return nil, true, nil
	}

	var items []model.MenuItem
	for _, period := range periods {
		categories, err := s.client.Menu(ctx, loc.ID, period.ID, date)
		s.pause(ctx)
		if err != nil {
			logger.Warn().Err(err).Str("period", period.Name).Msg("period fetch failed")
			continue
		}

		for _, cat := range categories {
			categoryName := cat.Name
			if categoryName == "" {
				categoryName = "Other"
			}
			for _, it := range cat.Items {
				items = append(items, buildMenuItem(loc.ID, date, period.Name, categoryName, it))
			}
		}
	}

	return items, false, nil
}

// buildMenuItem converts one API item into a storable row.
func buildMenuItem(locationID, date, period, category string, it itemDTO) model.MenuItem {
	facts := parseNutrients(it.Nutrients)
	tags, allergens := splitFilters(it.Filters)

	name := it.Name
	if name == "" {
		name = "Unknown"
	}

	return model.MenuItem{
		LocationID:   locationID,
		Date:         date,
		Period:       period,
		Category:     category,
		Name:         name,
		Description:  it.Desc,
		Calories:     facts.Calories,
		Protein:      facts.Protein,
		Carbs:        facts.Carbs,
		Fat:          facts.Fat,
		Fiber:        facts.Fiber,
		Sugar:        facts.Sugar,
		SaturatedFat: facts.SaturatedFat,
		TransFat:     facts.TransFat,
		Cholesterol:  facts.Cholesterol,
		Sodium:       facts.Sodium,
		Potassium:    facts.Potassium,
		Calcium:      facts.Calcium,
		Iron:         facts.Iron,
		VitaminD:     facts.VitaminD,
		VitaminC:     facts.VitaminC,
		VitaminA:     facts.VitaminA,
		DietaryTags:  strings.Join(tags, ","),
		Allergens:    strings.Join(allergens, ","),
	}
}

// splitFilters sorts an item's filter labels into dietary tags and
// allergens. "Good Source of ..." labels count as dietary tags.
func splitFilters(filters []filterDTO) (tags, allergens []string) {
	for _, f := range filters {
		switch {
		case f.Name == "":
		case dietaryFilterNames[f.Name] || strings.HasPrefix(f.Name, "Good Source"):
			tags = append(tags, f.Name)
		default:
			allergens = append(allergens, f.Name)
		}
	}
	return tags, allergens
}

// pause sleeps for the configured politeness delay, returning early when
// the context is cancelled.
func (s *Scraper) pause(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
