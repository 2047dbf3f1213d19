package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

// Registry is the single entry point for tool execution. Every tool is
// a pure read over the store or the static hours table, so calls are
// idempotent and safe to retry or reorder.
type Registry struct {
	repo       repository.MenuReader
	classifier *Classifier
	schedule   *Schedule
	logger     zerolog.Logger
}

// NewRegistry creates a Registry. Nil classifier or schedule fall back
// to the built-in campus data.
func NewRegistry(repo repository.MenuReader, classifier *Classifier, schedule *Schedule, logger zerolog.Logger) *Registry {
	if classifier == nil {
		classifier = DefaultClassifier()
	}
	if schedule == nil {
		schedule = NewSchedule(nil, nil)
	}
	return &Registry{
		repo:       repo,
		classifier: classifier,
		schedule:   schedule,
		logger:     logger.With().Str("component", "tools").Logger(),
	}
}

// Schedule exposes the hours table for callers outside the tool loop.
func (r *Registry) Schedule() *Schedule {
	return r.schedule
}

// Execute runs the named tool and always returns a JSON payload. Any
// failure, including an unknown tool name or malformed arguments,
// becomes an {"error": ...} payload instead of a Go error, so the
// orchestration loop can hand it back to the model and recover.
func (r *Registry) Execute(ctx context.Context, name string, args json.RawMessage) json.RawMessage {
	result, err := r.dispatch(ctx, name, args)
	if err != nil {
		r.logger.Warn().Err(err).Str("tool", name).Msg("tool call failed")
		return errorPayload(err.Error())
	}

	payload, err := json.Marshal(result)
	if err != nil {
		r.logger.Error().Err(err).Str("tool", name).Msg("failed to encode tool result")
		return errorPayload(err.Error())
	}

	r.logger.Debug().Str("tool", name).Int("bytes", len(payload)).Msg("tool call completed")
	return payload
}

func (r *Registry) dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	switch name {
	case "search_menu":
		var params SearchParams
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.SearchMenu(ctx, params)

	case "get_location_menu":
		var params LocationMenuParams
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.LocationMenu(ctx, params)

	case "get_high_protein":
		var params HighProteinParams
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.HighProtein(ctx, params)

	case "get_low_calorie":
		var params LowCalorieParams
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.LowCalorie(ctx, params)

	case "get_complete_meals":
		var params CompleteMealsParams
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.CompleteMeals(ctx, params)

	case "get_build_your_own":
		var params BuildYourOwnParams
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.BuildYourOwn(ctx, params)

	case "list_locations":
		return r.ListLocations(ctx)

	case "get_location_hours":
		var params struct {
			Location string `json:"location"`
		}
		if err := decodeArgs(args, &params); err != nil {
			return nil, err
		}
		return r.schedule.ForLocation(params.Location), nil

	case "get_all_hours":
		return r.schedule.AllToday(), nil

	case "get_current_time":
		return r.schedule.CurrentTime(), nil
	}

	return nil, fmt.Errorf("%w: %s", model.ErrUnknownTool, name)
}

func decodeArgs(args json.RawMessage, dst any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, dst); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}
	return nil
}

func errorPayload(message string) json.RawMessage {
	payload, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		return json.RawMessage(`{"error":"internal error"}`)
	}
	return payload
}
