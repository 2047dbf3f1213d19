package tools

import (
	"strings"

	"github.com/dg4329-hash/menumap/internal/model"
)

type stringSet map[string]struct{}

func newStringSet(values ...string) stringSet {
	set := make(stringSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// Classifier decides whether a menu category holds meal components,
// complete entrees, or neither. The distinction keeps single toppings
// like a 60-calorie sliced chicken breast from being recommended as a
// standalone meal. It is derived at read time and never persisted, so
// updating the station lists needs no migration.
type Classifier struct {
	components stringSet
	entrees    stringSet
	hints      []string
}

// DefaultClassifier returns a Classifier loaded with the known dining
// hall station names.
func DefaultClassifier() *Classifier {
	return &Classifier{
		// Build-your-own stations: rows here are single components.
		components: newStringSet(
			"fresh 52 salad bar", "salad bar", "salad bar toppings", "salad bar dressings",
			"salad bar protein", "salad bar greens", "salad bar fruit and yogurt",
			"global fruit & yogurt",
			"deli", "deli sauce", "deli veg", "deli cheese", "create deli", "ny deli",
			"taqueria toppings", "taqueria base", "taqueria protein",
			"innovate", "grill / flame", "grill", "create",
			"pom and honey choose your side", "pom and honey choose your protein",
			"pom and honey grain and salad", "pom and honey sauce",
			"street eats choose your side", "street eats choose your protein",
			"paper lantern sides", "paper lantern starch", "paper lantern protein",
			"culture corner starch", "culture corner side",
			"root and seeds", "plant based", "plant'd",
		),
		// Stations that serve complete dishes.
		entrees: newStringSet(
			"true burger", "burger 212", "burger 212 grill", "crave nyu",
			"cluckstein", "500 degrees pizza", "al forno pizza", "personal pizza",
			"pizza station", "pizza/alforno", "quesadilla/burrito/slider",
			"taqueria/tots/mac&cheese", "homestyle", "cucina entree", "cucina pasta",
			"halal station", "halal", "composed salad / sandwiches",
			"fresh 52 composed salads", "root and seeds composed", "breakfast sandwiches",
			"kimmel lunch", "kimmel dinner", "fresh 140", "fresh 140 sandwich",
			"vedgecraft", "waffle stein", "guacamole toast", "soup of the day",
			"the soup bowl", "soup bowl", "soup", "spoonfuls",
			"culture corner entree",
		),
		hints: []string{"choose your", "bar", "toppings", "sides", "sauce"},
	}
}

// Classify maps a category name to an item type. Exact membership in
// the component list wins over the entree list; unknown categories
// fall back to substring hints before landing on other.
func (c *Classifier) Classify(category string) model.ItemType {
	cat := strings.ToLower(category)

	if c.components.has(cat) {
		return model.ItemTypeComponent
	}
	if c.entrees.has(cat) {
		return model.ItemTypeEntree
	}
	for _, hint := range c.hints {
		if strings.Contains(cat, hint) {
			return model.ItemTypeComponent
		}
	}
	return model.ItemTypeOther
}
