package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

// players holds running totals only; individual rounds are not stored.
func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		wins INTEGER DEFAULT 0,
		losses INTEGER DEFAULT 0,
		pushes INTEGER DEFAULT 0,
		busts INTEGER DEFAULT 0,
		rounds INTEGER DEFAULT 0,
		last_round TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_players_wins ON players(wins);
	CREATE INDEX IF NOT EXISTS idx_players_rounds ON players(rounds);
	`

	_, err := db.Exec(schema)
	return err
}
