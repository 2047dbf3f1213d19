package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dg4329-hash/menumap/internal/model"
)

// Point weights for each matched signal.
const (
	keywordPoints   = 20
	dietaryPoints   = 30
	periodPoints    = 10
	nutritionPoints = 20
)

// Score rates one menu item against a parsed query and reports the
// reasons for every point awarded, in evaluation order. It is a pure
// function: no I/O, no randomness, identical inputs give identical
// results. A zero score means the item is irrelevant to the query.
func Score(item *model.MenuItem, query ParsedQuery) (int, []string) {
	score := 0
	reasons := []string{}

	name := strings.ToLower(item.Name)
	description := strings.ToLower(item.Description)

	// A synonym can be extracted once per category it appears in, but
	// it only scores once per item.
	seen := make(map[string]bool, len(query.Keywords))
	for _, keyword := range query.Keywords {
		if seen[keyword] {
			continue
		}
		seen[keyword] = true
		if strings.Contains(name, keyword) || strings.Contains(description, keyword) {
			score += keywordPoints
			reasons = append(reasons, fmt.Sprintf("matches '%s'", keyword))
		}
	}

	for _, tag := range query.Dietary {
		if item.HasDietaryTag(tag) {
			score += dietaryPoints
			reasons = append(reasons, tag)
		}
	}

	if query.Period != "" && item.Period == query.Period {
		score += periodPoints
		reasons = append(reasons, query.Period+" item")
	}

	for _, filter := range query.Nutrition {
		value, ok := nutrientValue(item, filter.Nutrient)
		if !ok {
			continue
		}
		if satisfies(value, filter.Op, filter.Threshold) {
			score += nutritionPoints
			reasons = append(reasons, fmt.Sprintf("%s: %s", filter.Nutrient, formatNutrient(item, filter.Nutrient, value)))
		}
	}

	return score, reasons
}

// nutrientValue looks up the item's value for a filterable nutrient.
// The second return is false when the nutrient is unknown or the item
// has no value recorded; such items neither satisfy nor fail a filter.
func nutrientValue(item *model.MenuItem, nutrient string) (float64, bool) {
	switch nutrient {
	case "calories":
		if item.Calories == nil {
			return 0, false
		}
		return float64(*item.Calories), true
	case "protein":
		if item.Protein == nil {
			return 0, false
		}
		return *item.Protein, true
	case "carbs":
		if item.Carbs == nil {
			return 0, false
		}
		return *item.Carbs, true
	case "fat":
		if item.Fat == nil {
			return 0, false
		}
		return *item.Fat, true
	}
	return 0, false
}

func satisfies(value float64, op Op, threshold float64) bool {
	switch op {
	case OpAtLeast:
		return value >= threshold
	case OpAtMost:
		return value <= threshold
	}
	return false
}

// formatNutrient renders the value the way it is stored: calories as a
// whole number, gram values without trailing zeros.
func formatNutrient(item *model.MenuItem, nutrient string, value float64) string {
	if nutrient == "calories" && item.Calories != nil {
		return strconv.Itoa(*item.Calories)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
