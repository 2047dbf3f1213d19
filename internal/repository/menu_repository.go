package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dg4329-hash/menumap/internal/model"
)

// menuItemColumns is the select list shared by every row query. The
// location display name rides along from the join.
const menuItemColumns = `
	mi.id, mi.location_id, l.name, mi.date, mi.period, mi.category,
	mi.name, mi.description,
	mi.calories, mi.protein, mi.carbs, mi.fat, mi.fiber, mi.sugar,
	mi.saturated_fat, mi.trans_fat, mi.cholesterol, mi.sodium,
	mi.potassium, mi.calcium, mi.iron,
	mi.vitamin_d, mi.vitamin_c, mi.vitamin_a,
	mi.dietary_tags, mi.allergens`

// menuRepository implements MenuRepository on SQLite.
type menuRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewMenuRepository creates a SQLite-backed menu repository.
func NewMenuRepository(db *sql.DB, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		db:     db,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// LatestDate returns the most recent date present in the store.
func (r *menuRepository) LatestDate(ctx context.Context) (string, error) {
	var date sql.NullString
	err := r.db.QueryRowContext(ctx, "SELECT MAX(date) FROM menu_items").Scan(&date)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query latest date")
		return "", fmt.Errorf("failed to query latest date: %w", err)
	}
	if !date.Valid {
		return "", nil
	}
	return date.String, nil
}

// ItemsForDate retrieves every row for a date, optionally pre-filtered by
// exact period.
func (r *menuRepository) ItemsForDate(ctx context.Context, date, period string) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items mi
		JOIN locations l ON mi.location_id = l.id
		WHERE mi.date = ?`
	args := []any{date}

	if period != "" {
		query += " AND mi.period = ?"
		args = append(args, period)
	}

	query += " ORDER BY mi.id"

	items, err := r.queryItems(ctx, query, args)
	if err != nil {
		r.logger.Error().Err(err).
			Str("date", date).
			Str("period", period).
			Msg("failed to query items for date")
		return nil, fmt.Errorf("failed to query items for date %s: %w", date, err)
	}

	return items, nil
}

// SearchItems retrieves rows matching the filter.
func (r *menuRepository) SearchItems(ctx context.Context, filter ItemFilter) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items mi
		JOIN locations l ON mi.location_id = l.id
		WHERE mi.date = ?`
	args := []any{filter.Date}

	// Dinner and Supper name the same serving window upstream.
	if filter.Period != "" {
		if strings.EqualFold(filter.Period, "dinner") {
			query += " AND (LOWER(mi.period) = 'dinner' OR LOWER(mi.period) = 'supper')"
		} else {
			query += " AND LOWER(mi.period) = LOWER(?)"
			args = append(args, filter.Period)
		}
	}

	if filter.Location != "" {
		query += " AND LOWER(l.name) LIKE LOWER(?)"
		args = append(args, "%"+filter.Location+"%")
	}

	if len(filter.Keywords) > 0 {
		conditions := make([]string, 0, len(filter.Keywords))
		for _, kw := range filter.Keywords {
			conditions = append(conditions, "LOWER(mi.name) LIKE LOWER(?)")
			args = append(args, "%"+kw+"%")
		}
		query += " AND (" + strings.Join(conditions, " OR ") + ")"
	}

	if len(filter.Dietary) > 0 {
		conditions := make([]string, 0, len(filter.Dietary))
		for _, tag := range filter.Dietary {
			conditions = append(conditions, "LOWER(mi.dietary_tags) LIKE LOWER(?)")
			args = append(args, "%"+tag+"%")
		}
		query += " AND (" + strings.Join(conditions, " AND ") + ")"
	}

	if filter.MinProtein != nil {
		query += " AND mi.protein >= ?"
		args = append(args, *filter.MinProtein)
	}

	if filter.MaxCalories != nil {
		query += " AND mi.calories <= ?"
		args = append(args, *filter.MaxCalories)
	}

	if filter.MinCalories != nil {
		query += " AND mi.calories >= ?"
		args = append(args, *filter.MinCalories)
	}

	if filter.MaxSodium != nil {
		query += " AND mi.sodium IS NOT NULL AND mi.sodium <= ?"
		args = append(args, *filter.MaxSodium)
	}

	if filter.MinFiber != nil {
		query += " AND mi.fiber IS NOT NULL AND mi.fiber >= ?"
		args = append(args, *filter.MinFiber)
	}

	if filter.MaxSugar != nil {
		query += " AND mi.sugar IS NOT NULL AND mi.sugar <= ?"
		args = append(args, *filter.MaxSugar)
	}

	// Surface the most protein-dense rows for protein queries, the
	// lightest rows otherwise. The id tiebreak keeps repeat runs stable.
	if filter.MinProtein != nil {
		query += " ORDER BY mi.protein DESC, mi.id"
	} else {
		query += " ORDER BY mi.calories ASC, mi.id"
	}

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	items, err := r.queryItems(ctx, query, args)
	if err != nil {
		r.logger.Error().Err(err).
			Str("date", filter.Date).
			Str("location", filter.Location).
			Msg("failed to search items")
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	return items, nil
}

// queryItems runs a select over menuItemColumns and scans the rows.
func (r *menuRepository) queryItems(ctx context.Context, query string, args []any) ([]model.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		var description, dietaryTags, allergens sql.NullString

		err := rows.Scan(
			&item.ID, &item.LocationID, &item.Location, &item.Date,
			&item.Period, &item.Category, &item.Name, &description,
			&item.Calories, &item.Protein, &item.Carbs, &item.Fat,
			&item.Fiber, &item.Sugar, &item.SaturatedFat, &item.TransFat,
			&item.Cholesterol, &item.Sodium, &item.Potassium, &item.Calcium,
			&item.Iron, &item.VitaminD, &item.VitaminC, &item.VitaminA,
			&dietaryTags, &allergens,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}

		item.Description = description.String
		item.DietaryTags = dietaryTags.String
		item.Allergens = allergens.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// LocationNames returns all known location names sorted A-Z.
func (r *menuRepository) LocationNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name FROM locations ORDER BY name")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query location names")
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan location name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}

	return names, nil
}

// Stats summarises the store for a date; an empty date means the latest.
func (r *menuRepository) Stats(ctx context.Context, date string) (*model.MenuStats, error) {
	if date == "" {
		latest, err := r.LatestDate(ctx)
		if err != nil {
			return nil, err
		}
		date = latest
	}

	stats := &model.MenuStats{
		Date:       date,
		ByLocation: []model.LocationCount{},
	}

	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM menu_items WHERE date = ?", date,
	).Scan(&stats.TotalItems)
	if err != nil {
		r.logger.Error().Err(err).Str("date", date).Msg("failed to count menu items")
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT l.name, COUNT(*) AS count
		FROM menu_items mi
		JOIN locations l ON mi.location_id = l.id
		WHERE mi.date = ?
		GROUP BY l.name
		ORDER BY count DESC, l.name`, date)
	if err != nil {
		r.logger.Error().Err(err).Str("date", date).Msg("failed to query per-location counts")
		return nil, fmt.Errorf("failed to query per-location counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lc model.LocationCount
		if err := rows.Scan(&lc.Name, &lc.ItemCount); err != nil {
			return nil, fmt.Errorf("failed to scan location count: %w", err)
		}
		stats.ByLocation = append(stats.ByLocation, lc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location counts: %w", err)
	}

	return stats, nil
}

// UpsertLocations inserts or refreshes the location reference rows.
func (r *menuRepository) UpsertLocations(ctx context.Context, locations []model.Location) error {
	if len(locations) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (id, name, building)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			building = excluded.building`)
	if err != nil {
		return fmt.Errorf("failed to prepare location upsert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		var building any
		if loc.Building != "" {
			building = loc.Building
		}
		if _, err := stmt.ExecContext(ctx, loc.ID, loc.Name, building); err != nil {
			return fmt.Errorf("failed to upsert location %s: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit location upsert: %w", err)
	}

	r.logger.Debug().Int("count", len(locations)).Msg("locations upserted")
	return nil
}

// UpsertMenuItems writes a batch of menu rows in one transaction.
func (r *menuRepository) UpsertMenuItems(ctx context.Context, items []model.MenuItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO menu_items (
			location_id, date, period, category, name, description,
			calories, protein, carbs, fat, fiber, sugar,
			saturated_fat, trans_fat, cholesterol, sodium,
			potassium, calcium, iron, vitamin_d, vitamin_c, vitamin_a,
			dietary_tags, allergens
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (location_id, date, period, category, name) DO UPDATE SET
			description = excluded.description,
			calories = excluded.calories,
			protein = excluded.protein,
			carbs = excluded.carbs,
			fat = excluded.fat,
			fiber = excluded.fiber,
			sugar = excluded.sugar,
			saturated_fat = excluded.saturated_fat,
			trans_fat = excluded.trans_fat,
			cholesterol = excluded.cholesterol,
			sodium = excluded.sodium,
			potassium = excluded.potassium,
			calcium = excluded.calcium,
			iron = excluded.iron,
			vitamin_d = excluded.vitamin_d,
			vitamin_c = excluded.vitamin_c,
			vitamin_a = excluded.vitamin_a,
			dietary_tags = excluded.dietary_tags,
			allergens = excluded.allergens`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare menu item upsert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, item := range items {
		_, err := stmt.ExecContext(ctx,
			item.LocationID, item.Date, item.Period, item.Category,
			item.Name, item.Description,
			item.Calories, item.Protein, item.Carbs, item.Fat,
			item.Fiber, item.Sugar, item.SaturatedFat, item.TransFat,
			item.Cholesterol, item.Sodium, item.Potassium, item.Calcium,
			item.Iron, item.VitaminD, item.VitaminC, item.VitaminA,
			item.DietaryTags, item.Allergens,
		)
		if err != nil {
			return written, fmt.Errorf("failed to upsert menu item %q: %w", item.Name, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit menu item upsert: %w", err)
	}

	r.logger.Debug().Int("count", written).Msg("menu items upserted")
	return written, nil
}
