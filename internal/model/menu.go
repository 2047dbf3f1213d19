package model

import (
	"strings"
	"time"
)

// ItemType classifies what role a menu row plays in a meal. It is derived
// from the row's category at read time and never persisted.
type ItemType string

const (
	ItemTypeComponent ItemType = "component"
	ItemTypeEntree    ItemType = "entree"
	ItemTypeOther     ItemType = "other"
)

// Location represents a campus dining location.
type Location struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Building string `json:"building,omitempty" db:"building"`
}

// MenuItem is one menu row for a location/date/period/category. Nutrition
// columns are nullable upstream; nil means the value was not published,
// which is different from zero.
type MenuItem struct {
	ID          int64  `json:"-" db:"id"`
	LocationID  string `json:"-" db:"location_id"`
	Location    string `json:"location,omitempty" db:"-"`
	Date        string `json:"date,omitempty" db:"date"`
	Period      string `json:"period" db:"period"`
	Category    string `json:"category" db:"category"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`

	Calories     *int     `json:"calories" db:"calories"`
	Protein      *float64 `json:"protein" db:"protein"`
	Carbs        *float64 `json:"carbs" db:"carbs"`
	Fat          *float64 `json:"fat" db:"fat"`
	Fiber        *float64 `json:"fiber" db:"fiber"`
	Sugar        *float64 `json:"sugar" db:"sugar"`
	SaturatedFat *float64 `json:"saturated_fat" db:"saturated_fat"`
	TransFat     *float64 `json:"trans_fat,omitempty" db:"trans_fat"`
	Cholesterol  *float64 `json:"cholesterol" db:"cholesterol"`
	Sodium       *float64 `json:"sodium" db:"sodium"`
	Potassium    *float64 `json:"potassium,omitempty" db:"potassium"`
	Calcium      *float64 `json:"calcium,omitempty" db:"calcium"`
	Iron         *float64 `json:"iron,omitempty" db:"iron"`
	VitaminD     *float64 `json:"vitamin_d,omitempty" db:"vitamin_d"`
	VitaminC     *float64 `json:"vitamin_c,omitempty" db:"vitamin_c"`
	VitaminA     *float64 `json:"vitamin_a,omitempty" db:"vitamin_a"`

	DietaryTags string `json:"-" db:"dietary_tags"`
	Allergens   string `json:"-" db:"allergens"`

	ItemType ItemType `json:"item_type,omitempty" db:"-"`

	CreatedAt time.Time `json:"-" db:"created_at"`
}

// DietaryTagList splits the stored comma-separated tag column into a
// clean slice. An empty column yields an empty (non-nil) slice.
func (m *MenuItem) DietaryTagList() []string {
	tags := []string{}
	if m.DietaryTags == "" {
		return tags
	}
	for _, t := range strings.Split(m.DietaryTags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasDietaryTag reports whether the item carries the given canonical tag.
func (m *MenuItem) HasDietaryTag(tag string) bool {
	for _, t := range m.DietaryTagList() {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchResult is one scored search hit: the item fields the web app
// renders plus the score and the reasons it matched.
type MatchResult struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Category    string   `json:"category"`
	Calories    *int     `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	DietaryTags []string `json:"dietary_tags"`
	Score       int      `json:"score"`
	Reasons     []string `json:"match_reasons"`
}

// LocationCount is a location name with its menu item count for a date.
type LocationCount struct {
	Name      string `json:"location"`
	ItemCount int    `json:"item_count"`
}

// MenuStats summarises what the store holds for one date.
type MenuStats struct {
	Date       string          `json:"date"`
	TotalItems int             `json:"total_items"`
	ByLocation []LocationCount `json:"by_location"`
}

// LocationsResponse is the payload returned by GET /api/locations.
type LocationsResponse struct {
	Locations []string `json:"locations"`
}
