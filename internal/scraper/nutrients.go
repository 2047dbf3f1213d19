package scraper

import (
	"encoding/json"
	"strconv"
	"strings"
)

// nutritionFacts holds the parsed nutrient columns for one menu item.
// Nil means the API did not publish a usable value.
type nutritionFacts struct {
	Calories     *int
	Protein      *float64
	Carbs        *float64
	Fat          *float64
	Fiber        *float64
	Sugar        *float64
	SaturatedFat *float64
	TransFat     *float64
	Cholesterol  *float64
	Sodium       *float64
	Potassium    *float64
	Calcium      *float64
	Iron         *float64
	VitaminD     *float64
	VitaminC     *float64
	VitaminA     *float64
}

// numericValue extracts a number from a nutrient row. value_numeric is
// preferred when it holds a real number; otherwise the display value is
// cleaned and parsed. The API mixes numbers with strings like "25g",
// "0+", "less than 1 gram" and a bare "-" for missing data.
func (n nutrientDTO) numericValue() (float64, bool) {
	if v, ok := parseRawValue(n.ValueNumeric); ok && v != 0 {
		return v, true
	}
	return parseRawValue(n.Value)
}

func parseRawValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	return cleanNumericString(s)
}

// cleanNumericString strips everything but digits and the decimal point
// before parsing, so "25g" reads as 25 and "less than 1 gram" as 1.
func cleanNumericString(s string) (float64, bool) {
	if s == "" || s == "-" {
		return 0, false
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseNutrients maps the API's labelled nutrient rows onto columns. The
// labels arrive as "Protein (g)", "Total Fat (g)", "Cholesterol (mg)"
// and so on; matching is on the lowercased label.
func parseNutrients(nutrients []nutrientDTO) nutritionFacts {
	var facts nutritionFacts

	for _, n := range nutrients {
		name := strings.ToLower(n.Name)
		value, ok := n.numericValue()
		if !ok {
			continue
		}

		switch {
		case name == "calories":
			calories := int(value)
			facts.Calories = &calories
		case strings.Contains(name, "protein") && strings.Contains(name, "("):
			facts.Protein = &value
		case strings.Contains(name, "total carbohydrate"):
			facts.Carbs = &value
		case name == "total fat (g)":
			facts.Fat = &value
		case name == "dietary fiber (g)":
			facts.Fiber = &value
		case name == "sugar (g)":
			facts.Sugar = &value
		case name == "saturated fat (g)":
			facts.SaturatedFat = &value
		case name == "trans fat (g)":
			facts.TransFat = &value
		case name == "cholesterol (mg)":
			facts.Cholesterol = &value
		case name == "sodium (mg)":
			facts.Sodium = &value
		case name == "potassium (mg)":
			facts.Potassium = &value
		case name == "calcium (mg)":
			facts.Calcium = &value
		case name == "iron (mg)":
			facts.Iron = &value
		case strings.Contains(name, "vitamin d"):
			facts.VitaminD = &value
		case strings.Contains(name, "vitamin c"):
			facts.VitaminC = &value
		case strings.Contains(name, "vitamin a"):
			facts.VitaminA = &value
		}
	}

	return facts
}
