// Package grammar holds the word-formation templates of Klingon.
package grammar

import (
	"github.com/bastiangx/katik/pkg/dictionary"
)

// Slot is one position of a track. An anchor slot must be filled for the
// track to advance; any other slot may be skipped.
type Slot struct {
	POS    dictionary.POS `json:"pos" msgpack:"pos"`
	Anchor bool           `json:"anchor" msgpack:"anchor"`
}

// Track is a named, ordered sequence of slots.
type Track struct {
	Name  string `json:"name" msgpack:"name"`
	Slots []Slot `json:"slots" msgpack:"slots"`
}

func anchor(pos dictionary.POS) Slot   { return Slot{POS: pos, Anchor: true} }
func optional(pos dictionary.POS) Slot { return Slot{POS: pos} }

var nounSuffixes = []Slot{
	optional(dictionary.NounSuffix1),
	optional(dictionary.NounSuffix2),
	optional(dictionary.NounSuffix3),
	optional(dictionary.NounSuffix4),
	optional(dictionary.NounSuffix5),
}

// verbSuffixes has a rover slot around each of the nine ordered classes.
var verbSuffixes = []Slot{
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix1),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix2),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix3),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix4),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix5),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix6),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix7),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix8),
	optional(dictionary.VerbSuffixRover),
	optional(dictionary.VerbSuffix9),
	optional(dictionary.VerbSuffixRover),
}

func concat(parts ...[]Slot) []Slot {
	var slots []Slot
	for _, p := range parts {
		slots = append(slots, p...)
	}
	return slots
}

var tracks = []Track{
	{Name: "verb", Slots: concat([]Slot{optional(dictionary.VerbPrefix), anchor(dictionary.Verb)}, verbSuffixes)},
	{Name: "noun", Slots: concat([]Slot{anchor(dictionary.Noun)}, nounSuffixes)},
	{Name: "name", Slots: concat([]Slot{anchor(dictionary.Name)}, nounSuffixes)},
	{Name: "pronoun", Slots: concat([]Slot{anchor(dictionary.Pronoun)}, nounSuffixes)},
	{Name: "pronoun as verb", Slots: concat([]Slot{anchor(dictionary.Pronoun)}, verbSuffixes)},
	{Name: "numeral", Slots: []Slot{anchor(dictionary.Numeral)}},
	{Name: "adverbial", Slots: []Slot{anchor(dictionary.Adverbial)}},
	{Name: "conjunction", Slots: []Slot{anchor(dictionary.Conjunction)}},
	{Name: "question word", Slots: []Slot{anchor(dictionary.QuestionWord)}},
	{Name: "exclamation", Slots: []Slot{anchor(dictionary.Exclamation)}},
}

// Tracks returns the full template table in matching order.
// The returned tracks share storage with the table and must not be modified.
func Tracks() []Track {
	return tracks
}

// Lookup returns the track with the given name.
func Lookup(name string) (Track, bool) {
	for _, t := range tracks {
		if t.Name == name {
			return t, true
		}
	}
	return Track{}, false
}
