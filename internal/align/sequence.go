package align

import (
	"github.com/mushafapp/ghareeb/internal/arabic"
	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
)

// PageAlignment is the full match result for one page: every line's tokens
// with their entry assignments, plus the prepared entries they point into.
type PageAlignment struct {
	PageNumber int
	Lines      []MatchedLine
	Entries    []glossary.MatchEntry
}

// SequenceItem is one rendered word: a matched glossary entry together with
// the position of its first consumed token.
type SequenceItem struct {
	Entry glossary.Entry
	// Line and Token locate the phrase-start token (line index within the
	// page, token index within the line).
	Line  int
	Token int
}

// AlignPage tokenizes every line of a page and matches the prepared entries
// against it. The surah context starts from the page's own surah attribute
// and is updated by each surah-header line encountered while walking down
// the page. The result is a pure function of its inputs: re-aligning the
// same page text against the same entries yields an identical alignment.
func AlignPage(page mushaf.PageText, entries []glossary.MatchEntry) PageAlignment {
	alignment := PageAlignment{
		PageNumber: page.PageNumber,
		Entries:    entries,
	}

	consumed := make(map[int]bool)
	surah := arabic.NormalizeCompact(page.SurahName)

	for number, raw := range page.Lines() {
		kind := mushaf.ClassifyLine(raw)
		if kind == mushaf.LineKindSurahHeader {
			surah = arabic.NormalizeCompact(raw)
		}

		line := MatchLine(mushaf.Tokenize(raw), surah, entries, consumed)
		line.Number = number
		line.Kind = kind
		alignment.Lines = append(alignment.Lines, line)
	}

	return alignment
}

// Sequence walks lines top to bottom and tokens in logical order within each
// line, emitting one item per phrase-start token. This reading-order
// sequence is the contract autoplay, highlighting and the coordinate
// overlays all depend on; its length never exceeds the page's entry count
// and no entry appears twice.
func (a PageAlignment) Sequence() []SequenceItem {
	var items []SequenceItem
	for _, line := range a.Lines {
		for tokenIndex := range line.Tokens {
			match, ok := line.Matches[tokenIndex]
			if !ok || !match.PhraseStart {
				continue
			}
			items = append(items, SequenceItem{
				Entry: a.Entries[match.EntryIndex].Entry,
				Line:  line.Number,
				Token: tokenIndex,
			})
		}
	}
	return items
}

// Words flattens a sequence to its entries.
func Words(items []SequenceItem) []glossary.Entry {
	words := make([]glossary.Entry, 0, len(items))
	for _, item := range items {
		words = append(words, item.Entry)
	}
	return words
}
