// Package align implements the text-to-glossary alignment engine: matching a
// page's token stream against its ghareeb entries and building the rendered
// word sequence that autoplay, highlighting and overlays consume.
//
// The two data sources share no primary key. Alignment is inferred from the
// normalized forms of tokens and glossary phrases, greedily and longest
// phrase first, with the surah context gating lexically identical phrases
// that belong to a different surah.
package align

import (
	"strings"

	"github.com/mushafapp/ghareeb/internal/glossary"
	"github.com/mushafapp/ghareeb/internal/mushaf"
)

// TokenMatch is the metadata attached to a matched token. Matching never
// changes the displayed text; it only attaches this back-reference.
type TokenMatch struct {
	// EntryIndex points into the page's prepared entry slice.
	EntryIndex int
	// IsPartOfPhrase is true when the entry consumed more than one token.
	IsPartOfPhrase bool
	// PhraseStart marks the first consumed token; the sequence builder
	// emits one entry per phrase start.
	PhraseStart bool
	// TokenIndexes lists every token index the entry consumed, in order.
	TokenIndexes []int
}

// MatchedLine is one line's tokens plus the token-to-entry assignment.
type MatchedLine struct {
	Number  int
	Kind    mushaf.LineKind
	Tokens  []mushaf.Token
	Matches map[int]*TokenMatch
}

// MatchLine assigns glossary entries to a line's tokens. Entries must come
// from glossary.Prepare (longest first); consumed carries entry indexes
// already matched earlier on the page and is mutated as entries are claimed,
// so each entry matches at most once per page.
//
// lineSurah is the compact-normalized local surah context. An entry is only
// eligible when that context equals, contains or is contained by the entry's
// own compact surah name; an empty context is permissive, because the lines
// above the first header of a page carry the previous page's surah.
func MatchLine(tokens []mushaf.Token, lineSurah string, entries []glossary.MatchEntry, consumed map[int]bool) MatchedLine {
	line := MatchedLine{
		Tokens:  tokens,
		Matches: make(map[int]*TokenMatch),
	}

	for entryIndex, entry := range entries {
		if consumed[entryIndex] || entry.WordCount == 0 {
			continue
		}
		if !surahAllows(lineSurah, entry.NormalizedSurah) {
			continue
		}

		for start, token := range tokens {
			if token.Kind != mushaf.TokenWord || token.Normalized == "" {
				continue
			}
			if _, taken := line.Matches[start]; taken {
				continue
			}

			run := matchRun(tokens, start, entry.Words, line.Matches)
			if run == nil {
				continue
			}

			for i, tokenIndex := range run {
				line.Matches[tokenIndex] = &TokenMatch{
					EntryIndex:     entryIndex,
					IsPartOfPhrase: len(run) > 1,
					PhraseStart:    i == 0,
					TokenIndexes:   run,
				}
			}
			consumed[entryIndex] = true
			// first match wins; no attempt to find a better position
			break
		}
	}

	return line
}

// matchRun walks forward from start, skipping space and verse-number tokens
// transparently, and consumes one word token per phrase word. It returns the
// consumed token indexes, or nil as soon as any phrase word fails to match.
func matchRun(tokens []mushaf.Token, start int, words []string, taken map[int]*TokenMatch) []int {
	run := make([]int, 0, len(words))
	wordIndex := 0

	for tokenIndex := start; tokenIndex < len(tokens) && wordIndex < len(words); tokenIndex++ {
		token := tokens[tokenIndex]
		if token.Kind != mushaf.TokenWord {
			continue
		}
		if _, ok := taken[tokenIndex]; ok {
			return nil
		}
		if !wordMatches(token.Normalized, words[wordIndex]) {
			return nil
		}
		run = append(run, tokenIndex)
		wordIndex++
	}

	if wordIndex != len(words) {
		return nil
	}
	return run
}

// wordMatches compares a token against a phrase word under normalization:
// equal, or either a substring of the other. The substring rule absorbs
// minor inflectional variance between the glossary spelling and the page
// spelling. Empty forms never match anything.
func wordMatches(tokenNorm, phraseWord string) bool {
	if tokenNorm == "" || phraseWord == "" {
		return false
	}
	return tokenNorm == phraseWord ||
		strings.Contains(tokenNorm, phraseWord) ||
		strings.Contains(phraseWord, tokenNorm)
}

// surahAllows implements the surah gate.
func surahAllows(lineSurah, entrySurah string) bool {
	if lineSurah == "" || entrySurah == "" {
		// header ambiguity on one side or the other: be permissive
		return true
	}
	return lineSurah == entrySurah ||
		strings.Contains(lineSurah, entrySurah) ||
		strings.Contains(entrySurah, lineSurah)
}
