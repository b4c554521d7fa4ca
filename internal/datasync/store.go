package datasync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Store is the local versioned content store. Commit must be atomic: either
// the whole file set and the new version land together, or nothing changes.
type Store interface {
	Version(ctx context.Context) (int, error)
	ContentFile(ctx context.Context, key string) ([]byte, error)
	Commit(ctx context.Context, version int, files []StoredFile) error
}

// DBStore implements Store on the local SQLite database. Commit runs in a
// single transaction, so concurrent readers keep serving the last committed
// version until the new one lands (read-old-until-commit).
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Version returns the committed data version, zero when nothing was ever
// synced.
func (s *DBStore) Version(ctx context.Context) (int, error) {
	var version int
	err := s.db.GetContext(ctx, &version, "SELECT version FROM sync_meta WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("db.GetContext(sync_meta) > %w", err)
	}
	return version, nil
}

// ContentFile returns the committed body for a key, or nil when the key was
// never synced.
func (s *DBStore) ContentFile(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.GetContext(ctx, &body, "SELECT body FROM content_files WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(content_files) > %w", err)
	}
	return body, nil
}

// Commit stores every file and advances the version in one transaction.
func (s *DBStore) Commit(ctx context.Context, version int, files []StoredFile) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, file := range files {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO content_files (key, body, sha256, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET body = excluded.body, sha256 = excluded.sha256, updated_at = excluded.updated_at`,
			file.Key, file.Body, file.SHA256); err != nil {
			return fmt.Errorf("tx.ExecContext(upsert content_file %s) > %w", file.Key, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sync_meta (id, version) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET version = excluded.version`, version); err != nil {
		return fmt.Errorf("tx.ExecContext(upsert sync_meta) > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
