/*
Package dictionary loads and indexes Klingon dictionary entries.

A dictionary is read once from a zrajm-style text source, validated and then
built into a set of read-only indices: by headword, by part of speech, and by
the English and Swedish translation terms. After Build returns, a *Dictionary
is never mutated, so a single instance can serve any number of concurrent
completion requests without locking.
*/
package dictionary

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Word is one dictionary sense.
type Word struct {
	Headword string            `json:"tlh" msgpack:"tlh"`
	Homonym  int               `json:"homonym" msgpack:"homonym"`
	Sense    int               `json:"sense" msgpack:"sense"`
	Subsense int               `json:"subsense" msgpack:"subsense"`
	English  []string          `json:"en" msgpack:"en"`
	Swedish  []string          `json:"sv" msgpack:"sv"`
	POS      POS               `json:"pos" msgpack:"pos"`
	Fields   map[string]string `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Tags     []string          `json:"tag,omitempty" msgpack:"tag,omitempty"`
	Data     []string          `json:"data,omitempty" msgpack:"data,omitempty"`
	ID       string            `json:"id" msgpack:"id"`
}

// NewWord returns an empty record with the default sense numbering.
func NewWord() Word {
	return Word{
		Homonym:  1,
		Sense:    1,
		Subsense: 1,
		POS:      Unknown,
		Fields:   make(map[string]string),
	}
}

// Canonical returns the headword without its trailing attachment hyphen.
// A leading hyphen is kept: it is matched against the boundary marker
// the engine inserts after a free morpheme.
func (w *Word) Canonical() string {
	return strings.TrimSuffix(w.Headword, "-")
}

// Bound reports whether the word must be followed by more material.
func (w *Word) Bound() bool {
	return strings.HasSuffix(w.Headword, "-")
}

// Equal compares every field.
func (w *Word) Equal(o *Word) bool {
	return w.Headword == o.Headword &&
		w.Homonym == o.Homonym &&
		w.Sense == o.Sense &&
		w.Subsense == o.Subsense &&
		w.POS == o.POS &&
		w.ID == o.ID &&
		slices.Equal(w.English, o.English) &&
		slices.Equal(w.Swedish, o.Swedish) &&
		slices.Equal(w.Tags, o.Tags) &&
		slices.Equal(w.Data, o.Data) &&
		maps.Equal(w.Fields, o.Fields)
}

// Compare orders records by headword, then homonym, sense and subsense.
func Compare(a, b *Word) int {
	return cmp.Or(
		strings.Compare(a.Headword, b.Headword),
		cmp.Compare(a.Homonym, b.Homonym),
		cmp.Compare(a.Sense, b.Sense),
		cmp.Compare(a.Subsense, b.Subsense),
	)
}

// EnglishTerms returns the index terms of every English gloss.
func (w *Word) EnglishTerms() ([]string, error) {
	return extractAll(w.English)
}

// SwedishTerms returns the index terms of every Swedish gloss.
func (w *Word) SwedishTerms() ([]string, error) {
	return extractAll(w.Swedish)
}
