package glossary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/glossary/mock_repository.go -package=mock_glossary

// EntryRepository defines operations for reading and writing base glossary
// entries.
type EntryRepository interface {
	FindByPage(ctx context.Context, pageNumber int) ([]Entry, error)
	FindByKey(ctx context.Context, uniqueKey string) (*Entry, error)
	Upsert(ctx context.Context, entry *Entry) error
}

// OverrideRepository defines operations for the local shadow records. These
// are never synced remotely; they survive reference-data refreshes so that a
// user's corrections are not lost when upstream content drifts.
type OverrideRepository interface {
	FindByPage(ctx context.Context, pageNumber int) ([]Override, error)
	Save(ctx context.Context, override *Override) error
	Delete(ctx context.Context, uniqueKey string) error
}

// DBEntryRepository implements EntryRepository on the local SQLite store.
type DBEntryRepository struct {
	db *sqlx.DB
}

// NewDBEntryRepository creates a new DBEntryRepository.
func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindByPage returns the base entries for a page in authored reading order.
// No entries for a page is an expected state and yields an empty slice.
func (r *DBEntryRepository) FindByPage(ctx context.Context, pageNumber int) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries,
		`SELECT unique_key, page_number, word_text, meaning, surah_name, surah_number, verse_number, word_index, word_order
		FROM glossary_entries WHERE page_number = ? ORDER BY word_order`, pageNumber); err != nil {
		return nil, fmt.Errorf("db.SelectContext(glossary_entries) > %w", err)
	}
	return entries, nil
}

// FindByKey returns the entry with the given unique key, or nil if absent.
func (r *DBEntryRepository) FindByKey(ctx context.Context, uniqueKey string) (*Entry, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry,
		`SELECT unique_key, page_number, word_text, meaning, surah_name, surah_number, verse_number, word_index, word_order
		FROM glossary_entries WHERE unique_key = ?`, uniqueKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(glossary_entry) > %w", err)
	}
	return &entry, nil
}

// Upsert inserts or replaces a base entry.
func (r *DBEntryRepository) Upsert(ctx context.Context, entry *Entry) error {
	entry.EnsureKey()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO glossary_entries (unique_key, page_number, word_text, meaning, surah_name, surah_number, verse_number, word_index, word_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(unique_key) DO UPDATE SET
			page_number = excluded.page_number,
			word_text = excluded.word_text,
			meaning = excluded.meaning,
			surah_name = excluded.surah_name,
			surah_number = excluded.surah_number,
			verse_number = excluded.verse_number,
			word_index = excluded.word_index,
			word_order = excluded.word_order`,
		entry.UniqueKey, entry.PageNumber, entry.WordText, entry.Meaning,
		entry.SurahName, entry.SurahNumber, entry.VerseNumber, entry.WordIndex, entry.Order)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert glossary_entry) > %w", err)
	}
	return nil
}

// DBOverrideRepository implements OverrideRepository on the local SQLite
// store, persisting the shadowed entry as a JSON column.
type DBOverrideRepository struct {
	db *sqlx.DB
}

// NewDBOverrideRepository creates a new DBOverrideRepository.
func NewDBOverrideRepository(db *sqlx.DB) *DBOverrideRepository {
	return &DBOverrideRepository{db: db}
}

type overrideRow struct {
	UniqueKey  string          `db:"unique_key"`
	PageNumber int             `db:"page_number"`
	Op         string          `db:"op"`
	Entry      []byte          `db:"entry"`
}

// FindByPage returns the shadow records for a page.
func (r *DBOverrideRepository) FindByPage(ctx context.Context, pageNumber int) ([]Override, error) {
	var rows []overrideRow
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT unique_key, page_number, op, entry FROM glossary_overrides WHERE page_number = ? ORDER BY unique_key", pageNumber); err != nil {
		return nil, fmt.Errorf("db.SelectContext(glossary_overrides) > %w", err)
	}

	overrides := make([]Override, 0, len(rows))
	for _, row := range rows {
		ov := Override{UniqueKey: row.UniqueKey, Op: OverrideOp(row.Op)}
		if len(row.Entry) > 0 && ov.Op != OverrideOpDelete {
			var entry Entry
			if err := json.Unmarshal(row.Entry, &entry); err != nil {
				return nil, fmt.Errorf("json.Unmarshal(glossary_override %s) > %w", row.UniqueKey, err)
			}
			ov.Entry = &entry
		}
		overrides = append(overrides, ov)
	}
	return overrides, nil
}

// Save inserts or replaces a shadow record for a key.
func (r *DBOverrideRepository) Save(ctx context.Context, override *Override) error {
	var (
		payload    []byte
		pageNumber int
		err        error
	)
	if override.Entry != nil {
		pageNumber = override.Entry.PageNumber
		payload, err = json.Marshal(override.Entry)
		if err != nil {
			return fmt.Errorf("json.Marshal(glossary_override) > %w", err)
		}
	} else {
		// tombstones keep the base entry's page so page loads still see them
		base, err := NewDBEntryRepository(r.db).FindByKey(ctx, override.UniqueKey)
		if err != nil {
			return fmt.Errorf("FindByKey(%s) > %w", override.UniqueKey, err)
		}
		if base != nil {
			pageNumber = base.PageNumber
		}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO glossary_overrides (unique_key, page_number, op, entry)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(unique_key) DO UPDATE SET page_number = excluded.page_number, op = excluded.op, entry = excluded.entry`,
		override.UniqueKey, pageNumber, string(override.Op), payload)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert glossary_override) > %w", err)
	}
	return nil
}

// Delete removes the shadow record for a key, restoring the base entry.
func (r *DBOverrideRepository) Delete(ctx context.Context, uniqueKey string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM glossary_overrides WHERE unique_key = ?", uniqueKey); err != nil {
		return fmt.Errorf("db.ExecContext(delete glossary_override) > %w", err)
	}
	return nil
}
