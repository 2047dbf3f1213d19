package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

// Defaults and fetch sizes for the menu tools.
const (
	defaultSearchLimit       = 20
	defaultLocationMenuLimit = 40
	defaultProteinFloor      = 15
	defaultProteinLimit      = 15
	defaultCalorieCap        = 400
	defaultCalorieLimit      = 15
	defaultMealFloor         = 250
	defaultMealLimit         = 15
	defaultBuildLimit        = 25
	buildFetchLimit          = 100
)

// Keyword lists for bucketing build-your-own components. A component
// lands in the first bucket whose list matches its name; sauces also
// match on the category, and anything left over is other.
var (
	proteinKeywords = []string{"chicken", "beef", "turkey", "tuna", "salmon", "tofu", "egg", "ham", "bacon", "sausage"}
	baseKeywords    = []string{"rice", "quinoa", "bread", "tortilla", "pasta", "noodle", "lettuce", "greens", "wrap", "bun", "roll"}
	sauceKeywords   = []string{"sauce", "dressing", "mayo", "mustard", "vinegar", "oil", "guac", "salsa", "hummus"}
	toppingKeywords = []string{"cheese", "tomato", "cucumber", "onion", "pepper", "olive", "corn", "bean", "carrot", "crouton", "mushroom", "broccoli", "pickle", "jalapeno", "sprout"}
)

// proteinInferenceGrams marks a component as a protein even without a
// keyword hit.
const proteinInferenceGrams = 8

// Item is the result shape shared by all menu tools. Nutrition fields
// stay pointers so unknown values serialize as null rather than zero.
type Item struct {
	Name         string         `json:"name"`
	Location     string         `json:"location"`
	Period       string         `json:"period"`
	Category     string         `json:"category"`
	ItemType     model.ItemType `json:"item_type"`
	Calories     *int           `json:"calories"`
	Protein      *float64       `json:"protein"`
	Carbs        *float64       `json:"carbs"`
	Fat          *float64       `json:"fat"`
	Fiber        *float64       `json:"fiber"`
	Sugar        *float64       `json:"sugar"`
	Sodium       *float64       `json:"sodium"`
	SaturatedFat *float64       `json:"saturated_fat"`
	Cholesterol  *float64       `json:"cholesterol"`
	DietaryTags  []string       `json:"dietary_tags"`
}

// SearchParams are the arguments of the search_menu tool.
type SearchParams struct {
	Keywords    []string `json:"keywords,omitempty"`
	Period      string   `json:"period,omitempty"`
	Location    string   `json:"location,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	MinProtein  *float64 `json:"min_protein,omitempty"`
	MaxCalories *int     `json:"max_calories,omitempty"`
	MinCalories *int     `json:"min_calories,omitempty"`
	MaxSodium   *float64 `json:"max_sodium,omitempty"`
	MinFiber    *float64 `json:"min_fiber,omitempty"`
	MaxSugar    *float64 `json:"max_sugar,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// LocationMenuParams are the arguments of the get_location_menu tool.
type LocationMenuParams struct {
	Location string `json:"location"`
	Period   string `json:"period,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// HighProteinParams are the arguments of the get_high_protein tool.
type HighProteinParams struct {
	MinProtein *float64 `json:"min_protein,omitempty"`
	Location   string   `json:"location,omitempty"`
	Period     string   `json:"period,omitempty"`
	Limit      int      `json:"limit,omitempty"`
}

// LowCalorieParams are the arguments of the get_low_calorie tool.
type LowCalorieParams struct {
	MaxCalories *int     `json:"max_calories,omitempty"`
	Location    string   `json:"location,omitempty"`
	Period      string   `json:"period,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// CompleteMealsParams are the arguments of the get_complete_meals tool.
type CompleteMealsParams struct {
	Location    string   `json:"location,omitempty"`
	Period      string   `json:"period,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	MinProtein  *float64 `json:"min_protein,omitempty"`
	MaxCalories *int     `json:"max_calories,omitempty"`
	MinCalories *int     `json:"min_calories,omitempty"`
	MaxSodium   *float64 `json:"max_sodium,omitempty"`
	MinFiber    *float64 `json:"min_fiber,omitempty"`
	MaxSugar    *float64 `json:"max_sugar,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// BuildYourOwnParams are the arguments of the get_build_your_own tool.
type BuildYourOwnParams struct {
	Location    string   `json:"location"`
	Period      string   `json:"period,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// BuildResult groups a station's components by their likely role in a
// meal.
type BuildResult struct {
	Location        string `json:"location"`
	Proteins        []Item `json:"proteins"`
	Bases           []Item `json:"bases"`
	Toppings        []Item `json:"toppings"`
	Sauces          []Item `json:"sauces"`
	Other           []Item `json:"other"`
	BuildSuggestion string `json:"build_suggestion"`
}

// SearchMenu queries the latest day's menu with the given filters,
// deduplicates on (name, location, period) and attaches each row's
// derived item type.
func (r *Registry) SearchMenu(ctx context.Context, params SearchParams) ([]Item, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	date, err := r.repo.LatestDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu date: %w", err)
	}
	if date == "" {
		return []Item{}, nil
	}

	rows, err := r.repo.SearchItems(ctx, repository.ItemFilter{
		Date:        date,
		Period:      params.Period,
		Location:    params.Location,
		Keywords:    params.Keywords,
		Dietary:     params.DietaryTags,
		MinProtein:  params.MinProtein,
		MaxCalories: params.MaxCalories,
		MinCalories: params.MinCalories,
		MaxSodium:   params.MaxSodium,
		MinFiber:    params.MinFiber,
		MaxSugar:    params.MaxSugar,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}

	type rowKey struct {
		name, location, period string
	}
	seen := make(map[rowKey]struct{}, len(rows))

	results := make([]Item, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		key := rowKey{row.Name, row.Location, row.Period}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		results = append(results, Item{
			Name:         row.Name,
			Location:     row.Location,
			Period:       row.Period,
			Category:     row.Category,
			ItemType:     r.classifier.Classify(row.Category),
			Calories:     row.Calories,
			Protein:      row.Protein,
			Carbs:        row.Carbs,
			Fat:          row.Fat,
			Fiber:        row.Fiber,
			Sugar:        row.Sugar,
			Sodium:       row.Sodium,
			SaturatedFat: row.SaturatedFat,
			Cholesterol:  row.Cholesterol,
			DietaryTags:  row.DietaryTagList(),
		})
	}

	return results, nil
}

// LocationMenu lists everything one dining hall serves, for building
// meal combinations from a single place.
func (r *Registry) LocationMenu(ctx context.Context, params LocationMenuParams) ([]Item, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLocationMenuLimit
	}
	return r.SearchMenu(ctx, SearchParams{
		Location: params.Location,
		Period:   params.Period,
		Limit:    limit,
	})
}

// HighProtein lists protein-dense items, most protein first.
func (r *Registry) HighProtein(ctx context.Context, params HighProteinParams) ([]Item, error) {
	floor := float64(defaultProteinFloor)
	if params.MinProtein != nil {
		floor = *params.MinProtein
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultProteinLimit
	}
	return r.SearchMenu(ctx, SearchParams{
		MinProtein: &floor,
		Location:   params.Location,
		Period:     params.Period,
		Limit:      limit,
	})
}

// LowCalorie lists light items, fewest calories first.
func (r *Registry) LowCalorie(ctx context.Context, params LowCalorieParams) ([]Item, error) {
	calorieCap := defaultCalorieCap
	if params.MaxCalories != nil {
		calorieCap = *params.MaxCalories
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultCalorieLimit
	}
	return r.SearchMenu(ctx, SearchParams{
		MaxCalories: &calorieCap,
		Location:    params.Location,
		Period:      params.Period,
		DietaryTags: params.DietaryTags,
		Limit:       limit,
	})
}

// CompleteMeals lists ready-to-eat dishes: entree rows with at least
// the calorie floor. Components and sub-floor rows never appear, so a
// lone topping cannot masquerade as a meal.
func (r *Registry) CompleteMeals(ctx context.Context, params CompleteMealsParams) ([]Item, error) {
	floor := defaultMealFloor
	if params.MinCalories != nil {
		floor = *params.MinCalories
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultMealLimit
	}

	// Overfetch: the entree filter below discards rows, so a plain
	// limit would under-fill.
	candidates, err := r.SearchMenu(ctx, SearchParams{
		Location:    params.Location,
		Period:      params.Period,
		DietaryTags: params.DietaryTags,
		MinProtein:  params.MinProtein,
		MaxCalories: params.MaxCalories,
		MinCalories: &floor,
		MaxSodium:   params.MaxSodium,
		MinFiber:    params.MinFiber,
		MaxSugar:    params.MaxSugar,
		Limit:       limit * 3,
	})
	if err != nil {
		return nil, err
	}

	meals := make([]Item, 0, limit)
	for _, item := range candidates {
		if item.ItemType != model.ItemTypeEntree {
			continue
		}
		if item.Calories == nil || *item.Calories < floor {
			continue
		}
		meals = append(meals, item)
		if len(meals) == limit {
			break
		}
	}

	return meals, nil
}

// BuildYourOwn gathers one location's components and groups them into
// proteins, bases, toppings, sauces and other.
func (r *Registry) BuildYourOwn(ctx context.Context, params BuildYourOwnParams) (*BuildResult, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultBuildLimit
	}

	all, err := r.SearchMenu(ctx, SearchParams{
		Location:    params.Location,
		Period:      params.Period,
		DietaryTags: params.DietaryTags,
		Limit:       buildFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		Location: params.Location,
		Proteins: []Item{},
		Bases:    []Item{},
		Toppings: []Item{},
		Sauces:   []Item{},
		Other:    []Item{},
		BuildSuggestion: fmt.Sprintf(
			"At %s, you can build your own meal by choosing a base, protein, toppings, and sauce.",
			params.Location),
	}

	for _, item := range all {
		if item.ItemType != model.ItemTypeComponent {
			continue
		}

		name := strings.ToLower(item.Name)
		category := strings.ToLower(item.Category)

		switch {
		case containsAny(name, proteinKeywords) || (item.Protein != nil && *item.Protein >= proteinInferenceGrams):
			result.Proteins = append(result.Proteins, item)
		case containsAny(name, baseKeywords):
			result.Bases = append(result.Bases, item)
		case containsAny(name, sauceKeywords) || containsAny(category, sauceKeywords):
			result.Sauces = append(result.Sauces, item)
		case containsAny(name, toppingKeywords):
			result.Toppings = append(result.Toppings, item)
		default:
			result.Other = append(result.Other, item)
		}
	}

	result.Proteins = truncate(result.Proteins, limit)
	result.Bases = truncate(result.Bases, limit)
	result.Toppings = truncate(result.Toppings, limit)
	result.Sauces = truncate(result.Sauces, limit)
	result.Other = truncate(result.Other, limit)

	return result, nil
}

// ListLocations returns every dining location in the store, sorted by
// name.
func (r *Registry) ListLocations(ctx context.Context) ([]string, error) {
	return r.repo.LocationNames(ctx)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func truncate(items []Item, limit int) []Item {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
