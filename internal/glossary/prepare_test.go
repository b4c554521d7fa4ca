package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchEntry(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantFull  string
		wantWords []string
		wantSurah string
	}{
		{
			name:      "multi word phrase",
			entry:     Entry{WordText: "ٱلصِّرَٰطَ ٱلۡمُسۡتَقِيمَ", SurahName: "الفاتحة"},
			wantFull:  "الصرط المستقيم",
			wantWords: []string{"الصرط", "المستقيم"},
			wantSurah: "الفاتحه",
		},
		{
			name:      "short connective fragments are dropped",
			entry:     Entry{WordText: "وَ بِهِ", SurahName: "البقرة"},
			wantFull:  "و به",
			wantWords: []string{"به"},
			wantSurah: "البقره",
		},
		{
			name:      "diacritics only yields zero words",
			entry:     Entry{WordText: "ًٌٍ"},
			wantFull:  "",
			wantWords: nil,
			wantSurah: "",
		},
		{
			name:      "surah name loses internal whitespace",
			entry:     Entry{WordText: "مثابة", SurahName: "آل عمران"},
			wantFull:  "مثابه",
			wantWords: []string{"مثابه"},
			wantSurah: "العمران",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMatchEntry(tt.entry)
			assert.Equal(t, tt.wantFull, got.NormalizedFull)
			assert.Equal(t, tt.wantWords, got.Words)
			assert.Equal(t, len(tt.wantWords), got.WordCount)
			assert.Equal(t, tt.wantSurah, got.NormalizedSurah)
		})
	}
}

func TestPrepare_SortsLongestFirst(t *testing.T) {
	entries := []Entry{
		{UniqueKey: "short", WordText: "كذلك", Order: 1},
		{UniqueKey: "long", WordText: "كذلك أنزلناه حكما", Order: 2},
		{UniqueKey: "mid", WordText: "كذلك أنزلناه", Order: 3},
	}

	prepared := Prepare(entries)

	require.Len(t, prepared, 3)
	assert.Equal(t, "long", prepared[0].Entry.UniqueKey)
	assert.Equal(t, "mid", prepared[1].Entry.UniqueKey)
	assert.Equal(t, "short", prepared[2].Entry.UniqueKey)
}

func TestPrepare_TiesFallBackToAuthoredOrder(t *testing.T) {
	entries := []Entry{
		{UniqueKey: "b", WordText: "ريب", Order: 2},
		{UniqueKey: "a", WordText: "هدي", Order: 1},
	}

	prepared := Prepare(entries)

	assert.Equal(t, "a", prepared[0].Entry.UniqueKey)
	assert.Equal(t, "b", prepared[1].Entry.UniqueKey)
}

func TestPrepare_FillsMissingKeys(t *testing.T) {
	prepared := Prepare([]Entry{
		{WordText: "ريب", SurahNumber: 2, VerseNumber: 2, WordIndex: 3},
	})

	assert.Equal(t, "2_2_3", prepared[0].Entry.UniqueKey)
}
