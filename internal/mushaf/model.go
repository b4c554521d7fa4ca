// Package mushaf models the paginated Quran text (Madinah-style 15-line
// pages) and splits page lines into the token stream the matcher consumes.
package mushaf

import (
	"strings"

	"github.com/mushafapp/ghareeb/internal/arabic"
)

// PageText is one page's literal content. The newline-delimited line order
// is render order; the record is immutable for the lifetime of a session and
// replaced wholesale on a data refresh.
type PageText struct {
	PageNumber int    `db:"page_number" yaml:"page_number"`
	Text       string `db:"text" yaml:"text"`
	SurahName  string `db:"surah_name" yaml:"surah_name"`
}

// Lines returns the page's lines in render order.
func (p PageText) Lines() []string {
	if p.Text == "" {
		return nil
	}
	return strings.Split(p.Text, "\n")
}

// LineKind classifies a page line.
type LineKind int

const (
	LineKindVerse LineKind = iota
	LineKindSurahHeader
	LineKindBismillah
)

// normalized bismillah, the one line that opens every surah but At-Tawbah
const bismillah = "بسم الله الرحمن الرحيم"

// header marker, normalized form of سورة
const surahWord = "سوره"

// ClassifyLine reports whether a line is a surah header, a bismillah line or
// ordinary verse text. Headers update the local surah context used by the
// matcher's surah gate.
func ClassifyLine(line string) LineKind {
	normalized := arabic.Normalize(line)
	if normalized == bismillah {
		return LineKindBismillah
	}
	if isSurahHeader(line, normalized) {
		return LineKindSurahHeader
	}
	return LineKindVerse
}

// isSurahHeader recognizes a surah title line: the word سورة followed by
// the name, two words normalized (three for آل عمران). Verse text can open
// with the same word (an-Nur 24:1, wrapped at-Tawbah lines), but there it
// is indefinite, carries tanween and runs on into the verse, so a longer
// line or a tanween on the opening word rules a header out.
func isSurahHeader(line, normalized string) bool {
	words := strings.Fields(normalized)
	switch {
	case len(words) == 2, len(words) == 3 && words[1] == "ال":
	default:
		return false
	}
	if words[0] != surahWord {
		return false
	}

	rawWords := strings.Fields(line)
	if len(rawWords) == 0 {
		return false
	}
	for _, r := range rawWords[0] {
		switch r {
		case 'ً', 'ٌ', 'ٍ': // fathatan, dammatan, kasratan
			return false
		}
	}
	return true
}
