package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dg4329-hash/menumap/internal/config"
	"github.com/dg4329-hash/menumap/internal/database"
	"github.com/dg4329-hash/menumap/internal/model"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func setupTestRepo(t *testing.T) MenuRepository {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "menu.db")}
	db, err := database.Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMenuRepository(db, zerolog.Nop())
}

func seedMenu(t *testing.T, repo MenuRepository) {
	t.Helper()
	ctx := context.Background()

	err := repo.UpsertLocations(ctx, []model.Location{
		{ID: "loc-1", Name: "NYU EATS at Downstein", Building: "Weinstein Hall"},
		{ID: "loc-2", Name: "Palladium"},
	})
	require.NoError(t, err)

	items := []model.MenuItem{
		{
			LocationID: "loc-1", Date: "2026-03-02", Period: "Breakfast",
			Category: "Breakfast Sandwiches", Name: "Egg and Cheese Sandwich",
			Calories: iptr(410), Protein: fptr(21),
		},
		{
			LocationID: "loc-1", Date: "2026-03-02", Period: "Lunch",
			Category: "Homestyle", Name: "Grilled Chicken Breast",
			Description: "Herb-marinated chicken",
			Calories:    iptr(450), Protein: fptr(25), Carbs: fptr(5), Fat: fptr(12),
			Sodium: fptr(520), Fiber: fptr(1),
		},
		{
			LocationID: "loc-1", Date: "2026-03-02", Period: "Lunch",
			Category: "Cucina Pasta", Name: "Penne Pasta",
			Calories: iptr(90), Protein: fptr(3),
		},
		{
			LocationID: "loc-2", Date: "2026-03-02", Period: "Supper",
			Category: "Culture Corner Entree", Name: "Tofu Stir Fry",
			Calories: iptr(380), Protein: fptr(18),
			DietaryTags: "Vegan,Avoiding Gluten",
		},
		{
			LocationID: "loc-2", Date: "2026-03-02", Period: "Lunch",
			Category: "Salad Bar Toppings", Name: "Side Salad",
		},
		{
			LocationID: "loc-1", Date: "2026-03-01", Period: "Dinner",
			Category: "Homestyle", Name: "Meatloaf",
			Calories: iptr(520), Protein: fptr(28),
		},
	}

	written, err := repo.UpsertMenuItems(ctx, items)
	require.NoError(t, err)
	require.Equal(t, len(items), written)
}

func TestMenuRepository_LatestDate_EmptyStore(t *testing.T) {
	repo := setupTestRepo(t)

	date, err := repo.LatestDate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", date)
}

func TestMenuRepository_LatestDate(t *testing.T) {
	repo := setupTestRepo(t)
	seedMenu(t, repo)

	date, err := repo.LatestDate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", date)
}

func TestMenuRepository_UpsertMenuItems_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocations(ctx, []model.Location{
		{ID: "loc-1", Name: "NYU EATS at Downstein"},
	}))

	item := model.MenuItem{
		LocationID: "loc-1", Date: "2026-03-02", Period: "Lunch",
		Category: "Homestyle", Name: "Roast Chicken",
		Calories: iptr(400), Protein: fptr(30),
	}

	_, err := repo.UpsertMenuItems(ctx, []model.MenuItem{item})
	require.NoError(t, err)

	// Re-scraping the same row overwrites in place.
	item.Calories = iptr(420)
	_, err = repo.UpsertMenuItems(ctx, []model.MenuItem{item})
	require.NoError(t, err)

	items, err := repo.ItemsForDate(ctx, "2026-03-02", "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Calories)
	assert.Equal(t, 420, *items[0].Calories)
}

func TestMenuRepository_UpsertLocations_Refresh(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocations(ctx, []model.Location{
		{ID: "loc-1", Name: "Upstein"},
	}))
	require.NoError(t, repo.UpsertLocations(ctx, []model.Location{
		{ID: "loc-1", Name: "Upstein", Building: "Rubin Hall"},
	}))

	names, err := repo.LocationNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Upstein"}, names)
}

func TestMenuRepository_ItemsForDate(t *testing.T) {
	repo := setupTestRepo(t)
	seedMenu(t, repo)
	ctx := context.Background()

	t.Run("All periods", func(t *testing.T) {
		items, err := repo.ItemsForDate(ctx, "2026-03-02", "")
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("Period filter", func(t *testing.T) {
		items, err := repo.ItemsForDate(ctx, "2026-03-02", "Lunch")
		require.NoError(t, err)
		require.Len(t, items, 3)
		for _, item := range items {
			assert.Equal(t, "Lunch", item.Period)
		}
	})

	t.Run("Location name resolved", func(t *testing.T) {
		items, err := repo.ItemsForDate(ctx, "2026-03-02", "Breakfast")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "NYU EATS at Downstein", items[0].Location)
	})

	t.Run("Null nutrition scans to nil", func(t *testing.T) {
		items, err := repo.ItemsForDate(ctx, "2026-03-02", "")
		require.NoError(t, err)

		var salad *model.MenuItem
		for i := range items {
			if items[i].Name == "Side Salad" {
				salad = &items[i]
			}
		}
		require.NotNil(t, salad)
		assert.Nil(t, salad.Calories)
		assert.Nil(t, salad.Protein)
	})

	t.Run("No rows for date", func(t *testing.T) {
		items, err := repo.ItemsForDate(ctx, "2030-01-01", "")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestMenuRepository_SearchItems(t *testing.T) {
	repo := setupTestRepo(t)
	seedMenu(t, repo)
	ctx := context.Background()

	t.Run("Keyword match on name", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:     "2026-03-02",
			Keywords: []string{"chicken"},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Grilled Chicken Breast", items[0].Name)
	})

	t.Run("Keywords are OR-matched", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:     "2026-03-02",
			Keywords: []string{"chicken", "tofu"},
		})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("Dinner matches Supper", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:   "2026-03-02",
			Period: "Dinner",
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Tofu Stir Fry", items[0].Name)
	})

	t.Run("Dietary tags are AND-matched", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:    "2026-03-02",
			Dietary: []string{"Vegan", "Avoiding Gluten"},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Tofu Stir Fry", items[0].Name)

		items, err = repo.SearchItems(ctx, ItemFilter{
			Date:    "2026-03-02",
			Dietary: []string{"Vegan", "Halal"},
		})
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Min protein orders by protein descending", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:       "2026-03-02",
			MinProtein: fptr(15),
		})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Grilled Chicken Breast", items[0].Name)
		assert.Equal(t, "Egg and Cheese Sandwich", items[1].Name)
		assert.Equal(t, "Tofu Stir Fry", items[2].Name)
	})

	t.Run("Default order is calories ascending", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:        "2026-03-02",
			MaxCalories: iptr(500),
		})
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Penne Pasta", items[0].Name)
	})

	t.Run("Max sodium skips null sodium rows", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:      "2026-03-02",
			MaxSodium: fptr(1000),
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Grilled Chicken Breast", items[0].Name)
	})

	t.Run("Location partial match", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:     "2026-03-02",
			Location: "downstein",
		})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("Limit applies", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:  "2026-03-02",
			Limit: 2,
		})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("No matching rows is empty not error", func(t *testing.T) {
		items, err := repo.SearchItems(ctx, ItemFilter{
			Date:       "2026-03-02",
			Period:     "Lunch",
			MinProtein: fptr(200),
		})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestMenuRepository_Stats(t *testing.T) {
	repo := setupTestRepo(t)
	seedMenu(t, repo)

	stats, err := repo.Stats(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02", stats.Date)
	assert.Equal(t, 5, stats.TotalItems)
	require.Len(t, stats.ByLocation, 2)
	assert.Equal(t, "NYU EATS at Downstein", stats.ByLocation[0].Name)
	assert.Equal(t, 3, stats.ByLocation[0].ItemCount)
	assert.Equal(t, "Palladium", stats.ByLocation[1].Name)
	assert.Equal(t, 2, stats.ByLocation[1].ItemCount)
}

func TestMenuRepository_Stats_EmptyStore(t *testing.T) {
	repo := setupTestRepo(t)

	stats, err := repo.Stats(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "", stats.Date)
	assert.Equal(t, 0, stats.TotalItems)
	assert.Empty(t, stats.ByLocation)
}

func TestMenuRepository_LocationNames(t *testing.T) {
	repo := setupTestRepo(t)
	seedMenu(t, repo)

	names, err := repo.LocationNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"NYU EATS at Downstein", "Palladium"}, names)
}
