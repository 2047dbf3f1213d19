package match

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

const (
	// DefaultLimit is used when the caller asks for no particular
	// number of results.
	DefaultLimit = 10
	// MaxLimit caps how many results a single search may return.
	MaxLimit = 50
)

// Searcher defines the prompt search operation consumed by the HTTP
// layer.
type Searcher interface {
	// Search ranks the menu of a date against a free-text prompt.
	Search(ctx context.Context, prompt string, limit int, date string) ([]model.MatchResult, error)
}

// Engine turns free-text prompts into ranked menu recommendations. It
// parses the prompt, fetches the day's menu and scores every item,
// keeping only the relevant ones.
type Engine struct {
	repo   repository.MenuReader
	parser *Parser
	logger zerolog.Logger
}

// NewEngine creates an Engine. A nil parser falls back to one built on
// the default tables.
func NewEngine(repo repository.MenuReader, parser *Parser, logger zerolog.Logger) *Engine {
	if parser == nil {
		parser = NewParser(nil)
	}
	return &Engine{
		repo:   repo,
		parser: parser,
		logger: logger.With().Str("component", "matcher").Logger(),
	}
}

// Search ranks the menu of the given date against the prompt. An empty
// date means the latest date in the store; an empty store yields an
// empty result. Results are sorted by descending score, ties keeping
// their fetch order, and truncated to limit.
func (e *Engine) Search(ctx context.Context, prompt string, limit int, date string) ([]model.MatchResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := e.parser.Parse(prompt)

	if date == "" {
		latest, err := e.repo.LatestDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve menu date: %w", err)
		}
		if latest == "" {
			e.logger.Debug().Msg("no menu data in store")
			return []model.MatchResult{}, nil
		}
		date = latest
	}

	// Period is the only pre-filter; keyword, dietary and nutrition
	// signals are judged per item so partial matches still rank.
	items, err := e.repo.ItemsForDate(ctx, date, query.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu items: %w", err)
	}

	results := []model.MatchResult{}
	for i := range items {
		score, reasons := Score(&items[i], query)
		if score <= 0 {
			continue
		}
		results = append(results, toMatchResult(&items[i], score, reasons))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	e.logger.Debug().
		Str("date", date).
		Int("keywords", len(query.Keywords)).
		Int("results", len(results)).
		Msg("search completed")

	return results, nil
}

func toMatchResult(item *model.MenuItem, score int, reasons []string) model.MatchResult {
	return model.MatchResult{
		Name:        item.Name,
		Location:    item.Location,
		Period:      item.Period,
		Category:    item.Category,
		Calories:    item.Calories,
		Protein:     item.Protein,
		Carbs:       item.Carbs,
		Fat:         item.Fat,
		DietaryTags: item.DietaryTagList(),
		Score:       score,
		Reasons:     reasons,
	}
}
