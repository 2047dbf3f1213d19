package repository

import (
	"context"

	"github.com/dg4329-hash/menumap/internal/model"
)

// ItemFilter captures the dynamic WHERE clause of a menu search. Zero
// values mean "no constraint". Keywords are OR-matched against item
// names; Dietary tags are AND-matched against the stored tag column.
type ItemFilter struct {
	Date        string
	Period      string // "Dinner" also matches the upstream "Supper"
	Location    string // partial, case-insensitive match on location name
	Keywords    []string
	Dietary     []string
	MinProtein  *float64
	MaxCalories *int
	MinCalories *int
	MaxSodium   *float64
	MinFiber    *float64
	MaxSugar    *float64
	Limit       int
}

// MenuReader defines read access to the nutrition store.
type MenuReader interface {
	// LatestDate returns the most recent date present in the store, or
	// an empty string when the store holds no rows.
	LatestDate(ctx context.Context) (string, error)

	// ItemsForDate retrieves every row for a date, optionally
	// pre-filtered by exact period. Fetch order is insertion order and
	// therefore deterministic for an unchanged store.
	ItemsForDate(ctx context.Context, date, period string) ([]model.MenuItem, error)

	// SearchItems retrieves rows matching the filter. Results are
	// ordered by protein descending when MinProtein is set, otherwise
	// by calories ascending.
	SearchItems(ctx context.Context, filter ItemFilter) ([]model.MenuItem, error)

	// LocationNames returns all known location names sorted A-Z.
	LocationNames(ctx context.Context) ([]string, error)

	// Stats summarises the store for a date; an empty date means the
	// latest one available.
	Stats(ctx context.Context, date string) (*model.MenuStats, error)
}

// MenuWriter defines the scraper's write access to the store.
type MenuWriter interface {
	// UpsertLocations inserts or refreshes the location reference rows.
	UpsertLocations(ctx context.Context, locations []model.Location) error

	// UpsertMenuItems writes a batch of menu rows in one transaction,
	// overwriting rows that share (location, date, period, category,
	// name). It returns the number of rows written.
	UpsertMenuItems(ctx context.Context, items []model.MenuItem) (int, error)
}

// MenuRepository combines read and write access to the store.
type MenuRepository interface {
	MenuReader
	MenuWriter
}
