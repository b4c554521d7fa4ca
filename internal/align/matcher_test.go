package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
)

func entry(key, wordText, surahName string, order int) glossary.Entry {
	return glossary.Entry{
		UniqueKey: key,
		WordText:  wordText,
		Meaning:   "meaning of " + key,
		SurahName: surahName,
		Order:     order,
	}
}

func TestMatchLine_SingleWord(t *testing.T) {
	entries := glossary.Prepare([]glossary.Entry{
		entry("1_2_4", "الْعَالَمِين", "الفاتحة", 1),
	})
	tokens := mushaf.Tokenize("الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ ٢")
	consumed := make(map[int]bool)

	line := MatchLine(tokens, "الفاتحه", entries, consumed)

	require.Len(t, line.Matches, 1)
	match := line.Matches[6]
	require.NotNil(t, match, "expected the fourth word token to be matched")
	assert.Equal(t, 0, match.EntryIndex)
	assert.False(t, match.IsPartOfPhrase)
	assert.True(t, match.PhraseStart)
	assert.Equal(t, []int{6}, match.TokenIndexes)
	assert.True(t, consumed[0])
}

func TestMatchLine_PhraseSpansTokens(t *testing.T) {
	entries := glossary.Prepare([]glossary.Entry{
		entry("1_6_2", "الصِّرَاط الْمُسْتَقِيم", "الفاتحة", 1),
	})
	tokens := mushaf.Tokenize("اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ ٦")
	consumed := make(map[int]bool)

	line := MatchLine(tokens, "الفاتحه", entries, consumed)

	first := line.Matches[2]
	second := line.Matches[4]
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.True(t, first.PhraseStart)
	assert.False(t, second.PhraseStart)
	assert.True(t, first.IsPartOfPhrase)
	assert.True(t, second.IsPartOfPhrase)
	assert.Equal(t, []int{2, 4}, first.TokenIndexes)
	assert.Equal(t, []int{2, 4}, second.TokenIndexes)
}

func TestMatchLine_PhraseSkipsVerseNumbers(t *testing.T) {
	// A phrase may continue across a verse-number marker: space and
	// verse-number tokens are transparent to the forward walk.
	entries := glossary.Prepare([]glossary.Entry{
		entry("1_3_1", "الرَّحِيم الْحَمْد", "الفاتحة", 1),
	})
	tokens := mushaf.Tokenize("الرَّحِيمِ ١ الْحَمْدُ")
	consumed := make(map[int]bool)

	line := MatchLine(tokens, "الفاتحه", entries, consumed)

	first := line.Matches[0]
	require.NotNil(t, first)
	assert.Equal(t, []int{0, 4}, first.TokenIndexes)
	_, verseNumberMatched := line.Matches[2]
	assert.False(t, verseNumberMatched)
}

func TestMatchLine_LongestPhraseWins(t *testing.T) {
	// Entry A's word list is a prefix of entry B's. Longest-first ordering
	// means B claims the tokens and A is never matched on this page, even
	// though A alone could have matched the first word.
	entries := glossary.Prepare([]glossary.Entry{
		entry("A", "كذلك", "يونس", 1),
		entry("B", "كذلك أنزلناه", "يونس", 2),
	})
	require.Equal(t, "B", entries[0].Entry.UniqueKey, "Prepare must sort longest first")

	tokens := mushaf.Tokenize("كَذَلِكَ أَنْزَلْنَاهُ حُكْمًا")
	consumed := make(map[int]bool)
	line := MatchLine(tokens, "يونس", entries, consumed)

	require.NotNil(t, line.Matches[0])
	assert.Equal(t, 0, line.Matches[0].EntryIndex)
	assert.True(t, consumed[0])
	assert.False(t, consumed[1], "the shorter entry must stay unmatched")
	for _, m := range line.Matches {
		assert.Equal(t, 0, m.EntryIndex)
	}
}

func TestMatchLine_SurahGate(t *testing.T) {
	tests := []struct {
		name      string
		lineSurah string
		wantMatch bool
	}{
		{
			name:      "same surah matches",
			lineSurah: "الفاتحه",
			wantMatch: true,
		},
		{
			name:      "containing header context matches",
			lineSurah: "سورهالفاتحه",
			wantMatch: true,
		},
		{
			name:      "empty context is permissive",
			lineSurah: "",
			wantMatch: true,
		},
		{
			name:      "unrelated surah never matches",
			lineSurah: "البقره",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := glossary.Prepare([]glossary.Entry{
				entry("1_6_2", "الْمُسْتَقِيم", "الفاتحة", 1),
			})
			tokens := mushaf.Tokenize("اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ")
			consumed := make(map[int]bool)

			line := MatchLine(tokens, tt.lineSurah, entries, consumed)

			if tt.wantMatch {
				assert.Len(t, line.Matches, 1)
			} else {
				assert.Empty(t, line.Matches)
			}
		})
	}
}

func TestMatchLine_ConsumedEntriesAreSkipped(t *testing.T) {
	entries := glossary.Prepare([]glossary.Entry{
		entry("1_1_1", "الرَّحِيم", "الفاتحة", 1),
	})
	tokens := mushaf.Tokenize("الرَّحْمَنِ الرَّحِيمِ")
	consumed := map[int]bool{0: true}

	line := MatchLine(tokens, "الفاتحه", entries, consumed)
	assert.Empty(t, line.Matches)
}

func TestMatchLine_ZeroWordCountNeverMatches(t *testing.T) {
	// An entry whose text is nothing but diacritics reduces to an empty
	// word list and must never be eligible.
	entries := glossary.Prepare([]glossary.Entry{
		entry("1_1_1", "ًٌٍ", "الفاتحة", 1),
	})
	require.Equal(t, 0, entries[0].WordCount)

	tokens := mushaf.Tokenize("بِسْمِ اللَّهِ")
	line := MatchLine(tokens, "الفاتحه", entries, make(map[int]bool))
	assert.Empty(t, line.Matches)
}

func TestMatchLine_SubstringVariance(t *testing.T) {
	// The glossary spells the bare stem, the page carries an inflected form.
	entries := glossary.Prepare([]glossary.Entry{
		entry("2_2_1", "ريب", "البقرة", 1),
	})
	tokens := mushaf.Tokenize("لَا رَيْبَ فِيهِ")
	line := MatchLine(tokens, "البقره", entries, make(map[int]bool))

	require.NotNil(t, line.Matches[2])
	assert.Equal(t, []int{2}, line.Matches[2].TokenIndexes)
}

func TestMatchLine_NoOverlappingClaims(t *testing.T) {
	// Two entries sharing a token: whichever is processed first claims it,
	// and no token ends up claimed by both.
	entries := glossary.Prepare([]glossary.Entry{
		entry("A", "الصِّرَاط الْمُسْتَقِيم", "الفاتحة", 1),
		entry("B", "اهْدِنَا الصِّرَاط", "الفاتحة", 2),
	})
	tokens := mushaf.Tokenize("اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ")
	line := MatchLine(tokens, "الفاتحه", entries, make(map[int]bool))

	claims := make(map[int]int)
	for tokenIndex, m := range line.Matches {
		claims[tokenIndex] = m.EntryIndex
	}
	for _, m := range line.Matches {
		for _, idx := range m.TokenIndexes {
			assert.Equal(t, m.EntryIndex, claims[idx], "token %d claimed by two entries", idx)
		}
	}
	// Exactly one of the two phrases won.
	winners := make(map[int]bool)
	for _, m := range line.Matches {
		winners[m.EntryIndex] = true
	}
	assert.Len(t, winners, 1)
}
