// Package database provides the local SQLite store connection and schema.
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// schema is the full local store: reference data (page texts, glossary
// entries, synced content files with their version) plus the user's
// glossary shadow records.
const schema = `
CREATE TABLE IF NOT EXISTS page_texts (
	page_number INTEGER PRIMARY KEY,
	text        TEXT NOT NULL,
	surah_name  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS glossary_entries (
	unique_key   TEXT PRIMARY KEY,
	page_number  INTEGER NOT NULL,
	word_text    TEXT NOT NULL,
	meaning      TEXT NOT NULL,
	surah_name   TEXT NOT NULL DEFAULT '',
	surah_number INTEGER NOT NULL DEFAULT 0,
	verse_number INTEGER NOT NULL DEFAULT 0,
	word_index   INTEGER NOT NULL DEFAULT 0,
	word_order   INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_glossary_entries_page ON glossary_entries (page_number, word_order);

CREATE TABLE IF NOT EXISTS glossary_overrides (
	unique_key  TEXT PRIMARY KEY,
	page_number INTEGER NOT NULL DEFAULT 0,
	op          TEXT NOT NULL,
	entry       TEXT
);
CREATE INDEX IF NOT EXISTS idx_glossary_overrides_page ON glossary_overrides (page_number);

CREATE TABLE IF NOT EXISTS content_files (
	key        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	sha256     TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS sync_meta (
	id      INTEGER PRIMARY KEY CHECK (id = 1),
	version INTEGER NOT NULL
);
`

// Open opens the SQLite database at path and ensures the schema exists.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	// one open handle keeps writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec(schema) > %w", err)
	}
	return db, nil
}
