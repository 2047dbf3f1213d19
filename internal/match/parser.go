package match

import (
	"strconv"
	"strings"
)

// Parser converts a free-text prompt into a ParsedQuery using the
// matching tables. Parsing is case-insensitive, never fails and always
// returns the same query for the same input.
type Parser struct {
	tables *Tables
}

// NewParser creates a Parser. A nil tables falls back to the defaults.
func NewParser(tables *Tables) *Parser {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Parser{tables: tables}
}

// Parse extracts food keywords, dietary tags, a meal period and
// nutrition constraints from the prompt. Unrecognised text simply
// contributes nothing.
func (p *Parser) Parse(prompt string) ParsedQuery {
	lower := strings.ToLower(prompt)

	query := ParsedQuery{
		Keywords:  []string{},
		Dietary:   []string{},
		Nutrition: []NutritionFilter{},
	}

	for _, cat := range p.tables.Keywords {
		for _, syn := range cat.Synonyms {
			if strings.Contains(lower, syn) {
				query.Keywords = append(query.Keywords, syn)
			}
		}
	}

	for _, dp := range p.tables.Dietary {
		if strings.Contains(lower, dp.Phrase) && !containsTag(query.Dietary, dp.Tag) {
			query.Dietary = append(query.Dietary, dp.Tag)
		}
	}

	for _, period := range p.tables.Periods {
		if strings.Contains(lower, strings.ToLower(period)) {
			query.Period = period
			break
		}
	}

	for _, rule := range p.tables.Nutrition {
		if rule.Pattern.MatchString(lower) {
			query.setNutrition(rule.Nutrient, rule.Op, rule.Threshold)
		}
	}

	// Explicit numbers beat the table defaults, e.g. "under 350
	// calories" tightens the generic low-calorie threshold.
	if p.tables.CalorieOverride != nil {
		if m := p.tables.CalorieOverride.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				query.setNutrition("calories", OpAtMost, float64(n))
			}
		}
	}
	if p.tables.ProteinOverride != nil {
		if m := p.tables.ProteinOverride.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				query.setNutrition("protein", OpAtLeast, float64(n))
			}
		}
	}

	return query
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
