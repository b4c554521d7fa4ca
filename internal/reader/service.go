// Package reader assembles everything a rendered page needs: the page text,
// the effective glossary after local corrections, the alignment of entries
// onto tokens, and the final meaning sequence after order overrides.
package reader

import (
	"context"
	"fmt"

	"github.com/mushafapp/ghareeb/internal/align"
	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
	"github.com/mushafapp/ghareeb/internal/override"
)

// Page is a fully assembled page view.
type Page struct {
	Number    int
	Text      *mushaf.PageText
	Alignment align.PageAlignment
	// Sequence is the meaning sequence in final display order, order
	// overrides already applied.
	Sequence []align.SequenceItem
}

// Service builds page views from the stored reference data and the local
// correction layers.
type Service struct {
	pages             mushaf.PageRepository
	entries           glossary.EntryRepository
	glossaryOverrides glossary.OverrideRepository
	orderOverrides    override.Repository
}

// NewService creates a Service.
func NewService(
	pages mushaf.PageRepository,
	entries glossary.EntryRepository,
	glossaryOverrides glossary.OverrideRepository,
	orderOverrides override.Repository,
) *Service {
	return &Service{
		pages:             pages,
		entries:           entries,
		glossaryOverrides: glossaryOverrides,
		orderOverrides:    orderOverrides,
	}
}

// Page assembles the view for one page. It returns (nil, nil) when the page
// text is not in the local store.
func (s *Service) Page(ctx context.Context, pageNumber int) (*Page, error) {
	text, err := s.pages.FindByNumber(ctx, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("pages.FindByNumber() > %w", err)
	}
	if text == nil {
		return nil, nil
	}

	base, err := s.entries.FindByPage(ctx, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("entries.FindByPage() > %w", err)
	}
	corrections, err := s.glossaryOverrides.FindByPage(ctx, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("glossaryOverrides.FindByPage() > %w", err)
	}
	effective := glossary.Resolve(base, corrections)

	alignment := align.AlignPage(*text, glossary.Prepare(effective))
	sequence := alignment.Sequence()

	orderings, err := s.orderOverrides.FindByPage(pageNumber)
	if err != nil {
		return nil, fmt.Errorf("orderOverrides.FindByPage() > %w", err)
	}
	sequence = override.ApplyAll(sequence, orderings)

	return &Page{
		Number:    pageNumber,
		Text:      text,
		Alignment: alignment,
		Sequence:  sequence,
	}, nil
}

// Report assembles the alignment diagnostics for one page. Like Page it
// returns (nil, nil) when the page text is absent.
func (s *Service) Report(ctx context.Context, pageNumber int) (*align.Report, error) {
	page, err := s.Page(ctx, pageNumber)
	if err != nil {
		return nil, fmt.Errorf("Page() > %w", err)
	}
	if page == nil {
		return nil, nil
	}
	report := align.BuildReport(page.Alignment)
	return &report, nil
}
