package mushaf

import (
	"strings"
	"unicode"

	"github.com/mushafapp/ghareeb/internal/arabic"
)

// TokenKind classifies a token within a line.
type TokenKind int

const (
	TokenSpace TokenKind = iota
	TokenVerseNumber
	TokenWord
)

// Token is an ephemeral per-render token. Raw is the exact original slice of
// the line so that rendering can reconstruct the line byte for byte;
// Normalized is empty for space and verse-number tokens.
type Token struct {
	Raw        string
	Index      int
	Kind       TokenKind
	Normalized string
}

// Tokenize splits a line into tokens, retaining whitespace runs as tokens.
// A non-whitespace token whose content is digits (Western or Arabic-Indic)
// plus decorative verse-marker glyphs is classified as a verse number and
// excluded from matching; everything else is a word candidate.
func Tokenize(line string) []Token {
	var tokens []Token
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		start := i
		isSpace := unicode.IsSpace(runes[i])
		for i < len(runes) && unicode.IsSpace(runes[i]) == isSpace {
			i++
		}
		raw := string(runes[start:i])

		token := Token{Raw: raw, Index: len(tokens)}
		switch {
		case isSpace:
			token.Kind = TokenSpace
		case isVerseMarker(raw):
			token.Kind = TokenVerseNumber
		default:
			token.Kind = TokenWord
			token.Normalized = arabic.Normalize(raw)
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// WordTokens returns only the word tokens of a line, in order.
func WordTokens(tokens []Token) []Token {
	words := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == TokenWord {
			words = append(words, t)
		}
	}
	return words
}

// isVerseMarker reports whether the token is a verse-number marker: after
// dropping decorative glyphs, at least one digit remains and nothing else.
func isVerseMarker(raw string) bool {
	stripped := strings.Map(func(r rune) rune {
		if isDecorativeMark(r) {
			return -1
		}
		return r
	}, raw)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= '٠' && r <= '٩': // ٠-٩
		return true
	case r >= '۰' && r <= '۹': // ۰-۹ (extended Arabic-Indic)
		return true
	}
	return false
}

// isDecorativeMark covers the glyphs print editions wrap around verse
// numbers: ornate parentheses, the end-of-ayah sign and section marks.
func isDecorativeMark(r rune) bool {
	switch r {
	case '﴾', '﴿', // ﴾ ﴿
		'۝', // end of ayah
		'۞', // rub el hizb
		'(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}
