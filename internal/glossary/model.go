// Package glossary holds the ghareeb (difficult word) records, their
// precomputed matcher form, and the local override shadow layer.
package glossary

import "fmt"

// Entry is one difficult-word meaning record. WordText is the literal phrase
// as authored, which may be one word or several and need not use the same
// diacritic conventions as the page text. UniqueKey is the stable identity
// (surah_ayah_wordIndex); it does not correspond to any token position.
type Entry struct {
	UniqueKey   string `db:"unique_key" json:"unique_key" yaml:"unique_key"`
	PageNumber  int    `db:"page_number" json:"page_number" yaml:"page_number"`
	WordText    string `db:"word_text" json:"word_text" yaml:"word_text"`
	Meaning     string `db:"meaning" json:"meaning" yaml:"meaning"`
	SurahName   string `db:"surah_name" json:"surah_name" yaml:"surah_name"`
	SurahNumber int    `db:"surah_number" json:"surah_number" yaml:"surah_number"`
	VerseNumber int    `db:"verse_number" json:"verse_number" yaml:"verse_number"`
	WordIndex   int    `db:"word_index" json:"word_index" yaml:"word_index"`
	Order       int    `db:"word_order" json:"order" yaml:"order"`
}

// DeriveKey computes the stable identity from surah, verse and word index.
func (e Entry) DeriveKey() string {
	return fmt.Sprintf("%d_%d_%d", e.SurahNumber, e.VerseNumber, e.WordIndex)
}

// EnsureKey fills UniqueKey from the derived form when the source data left
// it empty (older bundled files predate the key column).
func (e *Entry) EnsureKey() {
	if e.UniqueKey == "" {
		e.UniqueKey = e.DeriveKey()
	}
}
