package glossary

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mushafapp/ghareeb/internal/arabic"
)

// minWordRunes drops short connective fragments from an entry's word list.
// One-letter particles (و, ب...) appear everywhere on a page and are
// useless as match anchors.
const minWordRunes = 2

// MatchEntry wraps an Entry with the precomputed forms the matcher needs.
// Entries with WordCount zero are never eligible to match; that guards
// against records whose text reduces to nothing under normalization.
type MatchEntry struct {
	Entry           Entry
	NormalizedFull  string
	Words           []string
	WordCount       int
	NormalizedSurah string
}

// NewMatchEntry precomputes the normalized phrase, the anchor word list and
// the compact surah name for one entry.
func NewMatchEntry(entry Entry) MatchEntry {
	normalized := arabic.Normalize(entry.WordText)

	var words []string
	for _, w := range strings.Fields(normalized) {
		if utf8.RuneCountInString(w) >= minWordRunes {
			words = append(words, w)
		}
	}

	return MatchEntry{
		Entry:           entry,
		NormalizedFull:  normalized,
		Words:           words,
		WordCount:       len(words),
		NormalizedSurah: arabic.NormalizeCompact(entry.SurahName),
	}
}

// Prepare converts a page's entries into matcher form and sorts them longest
// phrase first. Matching long candidates before short ones prevents a short
// phrase from eating tokens that belong to a longer phrase sharing a prefix;
// ties fall back to the authored reading order.
func Prepare(entries []Entry) []MatchEntry {
	prepared := make([]MatchEntry, 0, len(entries))
	for _, entry := range entries {
		entry.EnsureKey()
		prepared = append(prepared, NewMatchEntry(entry))
	}

	sort.SliceStable(prepared, func(i, j int) bool {
		if prepared[i].WordCount != prepared[j].WordCount {
			return prepared[i].WordCount > prepared[j].WordCount
		}
		return prepared[i].Entry.Order < prepared[j].Entry.Order
	})
	return prepared
}
