package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported DB_TYPE values
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Config selects and locates the local store
type Config struct {
	Type string `mapstructure:"type" validate:"oneof=sqlite postgres"`
	Path string `mapstructure:"path"` // sqlite file, ":memory:" for tests
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres"`
}

// Connect opens the database for cfg.Type and makes sure the schema exists
func Connect(cfg Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Type {
	case TypePostgres:
		db, err = sqlx.Connect("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	case TypeSQLite, "":
		path := cfg.Path
		if path == "" {
			path = filepath.Join("data", "srsqueue.db")
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}

		db, err = sqlx.Connect("sqlite3", path)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initializeSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS study_items (
			id TEXT PRIMARY KEY,
			lang TEXT NOT NULL,
			part TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT '',
			last_reviewed BIGINT NOT NULL DEFAULT 0,
			next_due BIGINT NOT NULL DEFAULT 0,
			interval_secs BIGINT NOT NULL DEFAULT 0,
			reviews INTEGER NOT NULL DEFAULT 0,
			successes INTEGER NOT NULL DEFAULT 0,
			vocab_ids TEXT NOT NULL DEFAULT '[]'
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create study_items table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS vocabs (
			id TEXT PRIMARY KEY,
			lang TEXT NOT NULL,
			writing TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT '',
			banned_parts TEXT NOT NULL DEFAULT '[]',
			contained_vocab_ids TEXT NOT NULL DEFAULT '[]'
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create vocabs table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS characters (
			lang TEXT NOT NULL,
			writing TEXT NOT NULL,
			strokes TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (lang, writing)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create characters table: %w", err)
	}

	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS pending_reviews (
			id ` + idColumn + `,
			item_id TEXT NOT NULL,
			grade INTEGER NOT NULL,
			review_duration REAL NOT NULL DEFAULT 0,
			thinking_duration REAL NOT NULL DEFAULT 0,
			submitted_at BIGINT NOT NULL,
			group_id TEXT NOT NULL DEFAULT '',
			previous_interval BIGINT NOT NULL DEFAULT 0,
			new_interval BIGINT NOT NULL DEFAULT 0,
			actual_interval BIGINT NOT NULL DEFAULT 0,
			was_due BOOLEAN NOT NULL DEFAULT false
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create pending_reviews table: %w", err)
	}

	return nil
}
