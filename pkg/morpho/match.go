/*
Package morpho matches partially typed Klingon words against the grammar tracks.

MatchTrack walks one track greedily: every slot takes the longest morpheme of
its part of speech that starts the remaining input, optional slots that match
nothing are skipped, and an unfilled anchor slot stops the walk. The matcher
never revisits a committed slot, so the cost of a match is bounded by the track
length times the number of candidates per slot.

ParseAndSuggest runs MatchTrack over every track and turns the outcomes into
the parsed interpretations of the input plus the dictionary entries that could
complete it.
*/
package morpho

import (
	"strings"

	"github.com/bastiangx/katik/pkg/dictionary"
	"github.com/bastiangx/katik/pkg/grammar"
)

// boundary marks the start of a new morpheme in the remaining input.
const boundary = "-"

// Link is one matched morpheme of a parse.
type Link struct {
	Headword string
	POS      dictionary.POS
}

// Match is the outcome of walking a track.
type Match struct {
	// Remainder is the input the track could not consume.
	Remainder string
	// Chain holds the matched morphemes in order.
	Chain []Link
	// Tail holds the slots left unmatched, starting with the one that stopped the walk.
	Tail []grammar.Slot
}

// Complete reports whether the whole input was consumed.
func (m Match) Complete() bool {
	return m.Remainder == ""
}

// MatchTrack consumes input slot by slot.
//
// A morpheme that is not bound forward (its headword has no trailing hyphen)
// leaves the rest of the input prefixed with a hyphen, which is how suffix
// headwords such as "-Daq" are spelled.
func MatchTrack(d *dictionary.Dictionary, slots []grammar.Slot, input string) Match {
	return matchFrom(d, slots, input, nil)
}

func matchFrom(d *dictionary.Dictionary, slots []grammar.Slot, input string, chain []Link) Match {
	if len(slots) == 0 {
		return Match{Remainder: input, Chain: chain, Tail: slots}
	}

	slot := slots[0]
	for _, w := range d.ByPOS(slot.POS) {
		form := w.Canonical()
		if form == "" {
			continue
		}
		if form == input {
			return Match{Remainder: "", Chain: extend(chain, w, slot.POS), Tail: slots[1:]}
		}
		if !strings.HasPrefix(input, form) {
			continue
		}

		rest := input[len(form):]
		if !w.Bound() {
			rest = boundary + rest
		}
		// first prefix wins, shorter candidates are never tried
		return matchFrom(d, slots[1:], rest, extend(chain, w, slot.POS))
	}

	unmatched := Match{Remainder: input, Chain: chain, Tail: slots}
	if slot.Anchor {
		return unmatched
	}

	skipped := matchFrom(d, slots[1:], input, chain)
	if skipped.Remainder != input {
		return skipped
	}
	return unmatched
}

// extend returns chain plus one link without touching chain's backing array.
func extend(chain []Link, w *dictionary.Word, pos dictionary.POS) []Link {
	out := make([]Link, len(chain), len(chain)+1)
	copy(out, chain)
	return append(out, Link{Headword: w.Headword, POS: pos})
}
