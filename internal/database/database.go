package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/dg4329-hash/menumap/internal/config"
)

// schema is the nutrition store layout. The scraper owns the write path;
// everything else reads. Uniqueness on (location_id, date, period,
// category, name) makes re-scraping a day an in-place overwrite.
const schema = `
CREATE TABLE IF NOT EXISTS locations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	building TEXT
);

CREATE TABLE IF NOT EXISTS menu_items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	location_id TEXT NOT NULL,
	date TEXT NOT NULL,
	period TEXT NOT NULL,
	category TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	calories INTEGER,
	protein REAL,
	carbs REAL,
	fat REAL,
	fiber REAL,
	sugar REAL,
	saturated_fat REAL,
	trans_fat REAL,
	cholesterol REAL,
	sodium REAL,
	potassium REAL,
	calcium REAL,
	iron REAL,
	vitamin_d REAL,
	vitamin_c REAL,
	vitamin_a REAL,
	dietary_tags TEXT,
	allergens TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (location_id) REFERENCES locations(id),
	UNIQUE(location_id, date, period, category, name)
);

CREATE INDEX IF NOT EXISTS idx_menu_date ON menu_items(date);
CREATE INDEX IF NOT EXISTS idx_menu_location ON menu_items(location_id);
`

// Open opens the SQLite store at the configured path and ensures the
// schema exists. WAL mode keeps reads available while the scraper writes;
// the busy timeout covers the brief moments a writer holds the lock.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		cfg.Path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise schema: %w", err)
	}

	logger.Info().
		Str("path", cfg.Path).
		Msg("database opened")

	return db, nil
}
