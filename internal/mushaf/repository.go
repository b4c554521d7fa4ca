package mushaf

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/mushaf/mock_repository.go -package=mock_mushaf

// PageRepository defines operations for reading and writing page texts.
type PageRepository interface {
	FindByNumber(ctx context.Context, pageNumber int) (*PageText, error)
	FindAll(ctx context.Context) ([]PageText, error)
	Upsert(ctx context.Context, page *PageText) error
}

// DBPageRepository implements PageRepository on the local SQLite store.
type DBPageRepository struct {
	db *sqlx.DB
}

// NewDBPageRepository creates a new DBPageRepository.
func NewDBPageRepository(db *sqlx.DB) *DBPageRepository {
	return &DBPageRepository{db: db}
}

// FindByNumber returns the page text for a page, or nil if the page has no
// stored text. An absent page is an expected state, not an error.
func (r *DBPageRepository) FindByNumber(ctx context.Context, pageNumber int) (*PageText, error) {
	var page PageText
	err := r.db.GetContext(ctx, &page,
		"SELECT page_number, text, surah_name FROM page_texts WHERE page_number = ?", pageNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(page_texts) > %w", err)
	}
	return &page, nil
}

// FindAll returns all stored page texts ordered by page number.
func (r *DBPageRepository) FindAll(ctx context.Context) ([]PageText, error) {
	var pages []PageText
	if err := r.db.SelectContext(ctx, &pages,
		"SELECT page_number, text, surah_name FROM page_texts ORDER BY page_number"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(page_texts) > %w", err)
	}
	return pages, nil
}

// Upsert inserts or replaces a page text.
func (r *DBPageRepository) Upsert(ctx context.Context, page *PageText) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO page_texts (page_number, text, surah_name)
		VALUES (?, ?, ?)
		ON CONFLICT(page_number) DO UPDATE SET text = excluded.text, surah_name = excluded.surah_name`,
		page.PageNumber, page.Text, page.SurahName)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert page_text) > %w", err)
	}
	return nil
}
