package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	role TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS artist (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	country TEXT,
	bio TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS release_type (
	slug TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS release (
	id TEXT PRIMARY KEY,
	artist_id TEXT NOT NULL,
	title TEXT NOT NULL,
	release_type_slug TEXT NOT NULL,
	release_date DATETIME,
	label TEXT,
	catalog_number TEXT,
	deleted_at DATETIME,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (artist_id) REFERENCES artist(id) ON DELETE CASCADE,
	FOREIGN KEY (release_type_slug) REFERENCES release_type(slug)
);

CREATE TABLE IF NOT EXISTS track (
	id TEXT PRIMARY KEY,
	release_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	title TEXT NOT NULL,
	duration_seconds INTEGER,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (release_id) REFERENCES release(id) ON DELETE CASCADE,
	UNIQUE (release_id, position)
);

CREATE TABLE IF NOT EXISTS tag (
	slug TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS release_tag (
	release_id TEXT NOT NULL,
	tag_slug TEXT NOT NULL,
	PRIMARY KEY (release_id, tag_slug),
	FOREIGN KEY (release_id) REFERENCES release(id) ON DELETE CASCADE,
	FOREIGN KEY (tag_slug) REFERENCES tag(slug) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_release_artist_id ON release(artist_id);
CREATE INDEX IF NOT EXISTS idx_release_type_slug ON release(release_type_slug);
CREATE INDEX IF NOT EXISTS idx_track_release_id ON track(release_id);

INSERT OR IGNORE INTO release_type (slug, name) VALUES
	('album', 'Album'),
	('ep', 'EP'),
	('single', 'Single'),
	('compilation', 'Compilation'),
	('live', 'Live');
`

type DB struct {
	*sqlx.DB
}

func New(dbPath string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Enable WAL mode for better concurrency (allows concurrent reads/writes)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout to handle concurrent access
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables and seed the release type vocabulary
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// NullString helper for optional string fields
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullInt helper for optional int fields
func NullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// NullTime helper for optional time fields
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
