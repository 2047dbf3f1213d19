package match

import "regexp"

// Op is a nutrition comparison operator.
type Op string

const (
	OpAtLeast Op = ">="
	OpAtMost  Op = "<="
)

// KeywordCategory maps one food-craving category to the synonym
// substrings that signal it. Synonyms may repeat across categories;
// overlap is deliberate so a dish can satisfy several cravings.
type KeywordCategory struct {
	Category string
	Synonyms []string
}

// DietaryPattern maps a trigger phrase to its canonical dietary tag.
type DietaryPattern struct {
	Phrase string
	Tag    string
}

// NutritionRule adds a nutrient constraint when its pattern matches the
// prompt.
type NutritionRule struct {
	Pattern   *regexp.Regexp
	Nutrient  string
	Op        Op
	Threshold float64
}

// NutritionFilter is one parsed nutrient constraint.
type NutritionFilter struct {
	Nutrient  string  `json:"nutrient"`
	Op        Op      `json:"op"`
	Threshold float64 `json:"threshold"`
}

// ParsedQuery is the structured form of a free-text prompt. Keywords
// keep every synonym hit in table order, duplicates included; Dietary
// is a deduplicated tag set; Nutrition preserves insertion order so
// downstream reasons stay deterministic.
type ParsedQuery struct {
	Keywords  []string
	Dietary   []string
	Period    string
	Nutrition []NutritionFilter
}

// setNutrition replaces the constraint for a nutrient in place, or
// appends one when the nutrient has no constraint yet. Numeric
// overrides rely on the in-place update keeping the original position.
func (q *ParsedQuery) setNutrition(nutrient string, op Op, threshold float64) {
	for i := range q.Nutrition {
		if q.Nutrition[i].Nutrient == nutrient {
			q.Nutrition[i].Op = op
			q.Nutrition[i].Threshold = threshold
			return
		}
	}
	q.Nutrition = append(q.Nutrition, NutritionFilter{
		Nutrient:  nutrient,
		Op:        op,
		Threshold: threshold,
	})
}

// Tables bundles the static matching tables. A Tables value is
// immutable after construction and injected into the Parser, so tests
// can substitute fixture tables.
type Tables struct {
	Keywords  []KeywordCategory
	Dietary   []DietaryPattern
	Periods   []string // precedence order, not text order
	Nutrition []NutritionRule

	CalorieOverride *regexp.Regexp
	ProteinOverride *regexp.Regexp
}

// DefaultTables returns the stock matching tables.
func DefaultTables() *Tables {
	return &Tables{
		Keywords: []KeywordCategory{
			{Category: "pizza", Synonyms: []string{"pizza", "flatbread", "margherita"}},
			{Category: "burger", Synonyms: []string{"burger", "hamburger", "cheeseburger"}},
			{Category: "chicken", Synonyms: []string{"chicken", "poultry", "wings", "tenders", "grilled chicken"}},
			{Category: "salad", Synonyms: []string{"salad", "greens", "lettuce", "spinach"}},
			{Category: "pasta", Synonyms: []string{"pasta", "spaghetti", "penne", "linguine", "mac and cheese", "macaroni"}},
			{Category: "sandwich", Synonyms: []string{"sandwich", "sub", "wrap", "panini", "hoagie"}},
			{Category: "breakfast", Synonyms: []string{"eggs", "bacon", "pancakes", "waffle", "oatmeal", "cereal", "toast"}},
			{Category: "coffee", Synonyms: []string{"coffee", "latte", "espresso", "cappuccino", "mocha"}},
			{Category: "smoothie", Synonyms: []string{"smoothie", "shake", "blend"}},
			{Category: "soup", Synonyms: []string{"soup", "chili", "stew", "broth"}},
			{Category: "asian", Synonyms: []string{"stir fry", "rice bowl", "teriyaki", "lo mein", "fried rice", "sushi", "ramen"}},
			{Category: "mexican", Synonyms: []string{"taco", "burrito", "quesadilla", "nachos", "guac"}},
			{Category: "healthy", Synonyms: []string{"grilled", "steamed", "fresh", "salad", "lean"}},
			{Category: "comfort", Synonyms: []string{"mac and cheese", "mashed", "gravy", "fried", "crispy"}},
			{Category: "sweet", Synonyms: []string{"dessert", "cookie", "cake", "ice cream", "brownie", "muffin"}},
			{Category: "fruit", Synonyms: []string{"fruit", "apple", "banana", "orange", "berry", "melon"}},
			{Category: "protein", Synonyms: []string{"chicken", "beef", "steak", "fish", "salmon", "tuna", "tofu", "eggs"}},
		},
		Dietary: []DietaryPattern{
			{Phrase: "vegan", Tag: "Vegan"},
			{Phrase: "vegetarian", Tag: "Vegetarian"},
			{Phrase: "gluten-free", Tag: "Avoiding Gluten"},
			{Phrase: "gluten free", Tag: "Avoiding Gluten"},
			{Phrase: "no gluten", Tag: "Avoiding Gluten"},
			{Phrase: "halal", Tag: "Halal"},
			{Phrase: "kosher", Tag: "Kosher"},
		},
		// Checked in this order; the first period named anywhere in the
		// prompt wins, so "lunch and breakfast" resolves to Breakfast.
		Periods: []string{"Breakfast", "Lunch", "Dinner"},
		Nutrition: []NutritionRule{
			{
				Pattern:   regexp.MustCompile(`high protein|protein rich|lots of protein`),
				Nutrient:  "protein",
				Op:        OpAtLeast,
				Threshold: 20,
			},
			{
				Pattern:   regexp.MustCompile(`low calorie|light|diet|under \d+ cal`),
				Nutrient:  "calories",
				Op:        OpAtMost,
				Threshold: 400,
			},
			{
				Pattern:   regexp.MustCompile(`low carb|keto`),
				Nutrient:  "carbs",
				Op:        OpAtMost,
				Threshold: 20,
			},
			{
				Pattern:   regexp.MustCompile(`low fat`),
				Nutrient:  "fat",
				Op:        OpAtMost,
				Threshold: 10,
			},
			{
				Pattern:   regexp.MustCompile(`high calorie|bulking|gains`),
				Nutrient:  "calories",
				Op:        OpAtLeast,
				Threshold: 600,
			},
		},
		CalorieOverride: regexp.MustCompile(`under (\d+)\s*(?:cal|calories)`),
		ProteinOverride: regexp.MustCompile(`(\d+)\s*(?:g|grams?)?\s*(?:of\s*)?protein`),
	}
}
