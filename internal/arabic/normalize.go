// Package arabic canonicalizes Quranic Arabic text so that two renderings of
// the same lexeme compare equal regardless of diacritic density or
// letter-form convention. The glossary data and the page text are digitized
// independently and rarely agree on tashkeel or alef spellings, so every
// comparison in the matcher goes through Normalize first.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	letterHamza      = 'ء' // ء
	letterAlef       = 'ا' // ا
	letterWaw        = 'و' // و
	letterHeh        = 'ه' // ه
	letterYeh        = 'ي' // ي
	letterTatweel    = 'ـ' // ـ
	superscriptAlef  = 'ٰ' // dagger alef
	alefWasla        = 'ٱ' // ٱ
	hehWithYehAbove  = 'ۀ' // ۀ
	arabicBlockFirst = 'ء'
	arabicBlockLast  = 'ي'
)

// Normalize strips diacritics, unifies letter variants and collapses
// whitespace. The result contains only core Arabic letters and single
// spaces, which makes the function idempotent: Normalize(Normalize(s))
// always equals Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range norm.NFC.String(text) {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if isDiacritic(r) {
			continue
		}
		r = unifyLetter(r)
		if r == 0 || r < arabicBlockFirst || r > arabicBlockLast {
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeCompact is Normalize with all whitespace removed. Surah names are
// compared with this form so that spacing differences between a page header
// and a glossary record ("آل عمران" vs "آلعمران") do not break the surah gate.
func NormalizeCompact(text string) string {
	return strings.ReplaceAll(Normalize(text), " ", "")
}

// isDiacritic reports whether r is a combining mark in the Arabic tashkeel
// or Quranic annotation ranges. The dagger alef is included: Uthmani script
// writes it where other editions write a full alef, and dropping it on both
// sides keeps the rasm comparable.
func isDiacritic(r rune) bool {
	switch {
	case r >= 'ؐ' && r <= 'ؚ': // honorific and Koranic signs
		return true
	case r >= 'ً' && r <= 'ٟ': // tanween, harakat, sukun, maddah above
		return true
	case r == superscriptAlef:
		return true
	case r >= 'ۖ' && r <= 'ۜ': // small high ligatures (sad, qaf, meem...)
		return true
	case r >= '۟' && r <= 'ۨ': // small high marks, small waw/yeh
		return true
	case r >= '۪' && r <= 'ۭ': // empty centre low/high stops
		return true
	case r >= '࣓' && r <= 'ࣿ': // Arabic Extended-A annotation marks
		return true
	}
	return false
}

// unifyLetter maps letter variants onto one canonical form. Returns 0 for
// characters that are dropped outright (standalone hamza, tatweel).
func unifyLetter(r rune) rune {
	switch r {
	case 'آ', 'أ', 'إ', alefWasla, 'ٲ', 'ٳ': // آ أ إ ٱ ٲ ٳ
		return letterAlef
	case 'ؤ': // ؤ
		return letterWaw
	case 'ئ', 'ى': // ئ ى
		return letterYeh
	case 'ة', hehWithYehAbove: // ة ۀ
		return letterHeh
	case letterHamza, letterTatweel:
		return 0
	}
	return r
}
