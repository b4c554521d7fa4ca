package align

import (
	"github.com/antzucaro/matchr"

	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
)

// An entry that never finds a token run is a silent, expected outcome (the
// glossary is hand-authored and page attribution is often imprecise), but
// the correction tooling still wants to see which entries went unmatched and
// what the nearest token on the page was.

// Unmatched describes one entry that found no token run, with the page
// token most similar to its phrase as a correction hint.
type Unmatched struct {
	Entry        glossary.Entry
	NearestToken string
	Similarity   float64
}

// Report summarizes a page alignment for diagnostics.
type Report struct {
	PageNumber int
	Matched    []glossary.Entry
	Unmatched  []Unmatched
}

// BuildReport splits a page's entries into matched and unmatched. For each
// unmatched entry it ranks every word token on the page by Jaro-Winkler
// similarity against the entry's normalized phrase. The suggestion is purely
// advisory; the deterministic matcher never consults it.
func BuildReport(a PageAlignment) Report {
	report := Report{PageNumber: a.PageNumber}

	matched := make(map[int]bool)
	for _, line := range a.Lines {
		for _, m := range line.Matches {
			matched[m.EntryIndex] = true
		}
	}

	var pageWords []string
	for _, line := range a.Lines {
		for _, token := range mushaf.WordTokens(line.Tokens) {
			if token.Normalized != "" {
				pageWords = append(pageWords, token.Normalized)
			}
		}
	}

	for entryIndex, entry := range a.Entries {
		if matched[entryIndex] {
			report.Matched = append(report.Matched, entry.Entry)
			continue
		}

		un := Unmatched{Entry: entry.Entry}
		for _, word := range pageWords {
			if score := matchr.JaroWinkler(entry.NormalizedFull, word, false); score > un.Similarity {
				un.Similarity = score
				un.NearestToken = word
			}
		}
		report.Unmatched = append(report.Unmatched, un)
	}

	return report
}
