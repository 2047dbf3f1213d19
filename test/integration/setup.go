package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/database"
	"github.com/dg4329-hash/menumap/internal/model"
	"github.com/dg4329-hash/menumap/internal/repository"
)

// seedDate is the menu date all integration fixtures are written under.
const seedDate = "2026-03-04"

// TestDB represents a test database instance.
type TestDB struct {
	DB   *sql.DB
	Repo repository.MenuRepository
	Path string
}

// SetupTestDB opens a throwaway SQLite store under the test's temp
// directory and ensures the schema exists.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "menumap_test.db")

	db, err := database.Open(ctx, config.DatabaseConfig{Path: path}, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return &TestDB{
		DB:   db,
		Repo: repository.NewMenuRepository(db, zerolog.Nop()),
		Path: path,
	}
}

// SeedMenu inserts the fixture menu day into the store.
func SeedMenu(t *testing.T, testDB *TestDB) {
	t.Helper()

	ctx := context.Background()

	locations := []model.Location{
		{ID: "it-downstein", Name: "NYU EATS at Downstein", Building: "Weinstein Hall"},
		{ID: "it-kosher", Name: "Kosher Eatery", Building: "Weinstein Hall"},
	}
	if err := testDB.Repo.UpsertLocations(ctx, locations); err != nil {
		t.Fatalf("failed to seed locations: %v", err)
	}

	if _, err := testDB.Repo.UpsertMenuItems(ctx, seedItems()); err != nil {
		t.Fatalf("failed to seed menu items: %v", err)
	}
}

// CleanupDB removes all seeded rows so subtests start from a known state.
func CleanupDB(t *testing.T, testDB *TestDB) {
	t.Helper()

	ctx := context.Background()

	for _, table := range []string{"menu_items", "locations"} {
		if _, err := testDB.DB.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func seedItems() []model.MenuItem {
	return []model.MenuItem{
		{
			LocationID:  "it-downstein",
			Date:        seedDate,
			Period:      "Lunch",
			Category:    "Simple Servings",
			Name:        "Grilled Chicken Breast",
			Calories:    iptr(190),
			Protein:     fptr(35),
			Carbs:       fptr(0),
			Fat:         fptr(4.5),
			Sodium:      fptr(330),
			DietaryTags: "Avoiding Gluten,Halal,Good Source of Protein",
		},
		{
			LocationID:  "it-downstein",
			Date:        seedDate,
			Period:      "Lunch",
			Category:    "Pasta e Basta",
			Name:        "Penne Pasta",
			Calories:    iptr(210),
			Protein:     fptr(7),
			Carbs:       fptr(42),
			Fat:         fptr(1),
			DietaryTags: "Vegan,Vegetarian",
			Allergens:   "Wheat",
		},
		{
			LocationID:  "it-downstein",
			Date:        seedDate,
			Period:      "Lunch",
			Category:    "500 Degrees",
			Name:        "Cheese Pizza",
			Calories:    iptr(290),
			Protein:     fptr(12),
			Carbs:       fptr(36),
			Fat:         fptr(11),
			Sodium:      fptr(640),
			DietaryTags: "Vegetarian",
			Allergens:   "Milk,Wheat",
		},
		{
			LocationID:  "it-downstein",
			Date:        seedDate,
			Period:      "Dinner",
			Category:    "Plant Forward",
			Name:        "Vegan Tofu Stir Fry",
			Calories:    iptr(220),
			Protein:     fptr(16),
			Carbs:       fptr(14),
			Fat:         fptr(12),
			DietaryTags: "Vegan,Vegetarian,Good Source of Protein",
			Allergens:   "Soy",
		},
		{
			LocationID:  "it-kosher",
			Date:        seedDate,
			Period:      "Lunch",
			Category:    "Main Line",
			Name:        "Falafel Plate",
			Calories:    iptr(420),
			Protein:     fptr(14),
			Carbs:       fptr(48),
			Fat:         fptr(20),
			DietaryTags: "Vegan,Vegetarian,Kosher",
			Allergens:   "Sesame,Wheat",
		},
	}
}
