package morpho

import (
	"slices"
	"strings"

	"github.com/bastiangx/katik/internal/utils"
	"github.com/bastiangx/katik/pkg/dictionary"
	"github.com/bastiangx/katik/pkg/grammar"
)

// Group is every record that shares the headword and part of speech of one
// matched morpheme: homonyms and senses of the same spelling.
type Group []*dictionary.Word

// Alternative is one interpretation of the input as a chain of morphemes.
type Alternative struct {
	// Tracks names every track that produced this chain.
	Tracks []string `json:"tracks" msgpack:"tracks"`
	Slots  []Group  `json:"slots" msgpack:"slots"`
}

// Completions is the answer to one partially typed word.
type Completions struct {
	Input       string             `json:"input" msgpack:"input"`
	Parsed      []Alternative      `json:"parsed" msgpack:"parsed"`
	Suggestions []*dictionary.Word `json:"suggestions" msgpack:"suggestions"`
}

// ParseAndSuggest matches input against every track.
//
// A track contributes its chain as an interpretation when the chain is not
// empty and the track either consumed the whole input or has suggestions for
// the rest. Suggestions are collected from the unmatched tail of each track
// and returned ranked by Rank.
func ParseAndSuggest(d *dictionary.Dictionary, tracks []grammar.Track, input string) Completions {
	var (
		parsed      []Alternative
		parsedAt    = make(map[string]int)
		suggestions []*dictionary.Word
		filter      = utils.NewIDFilter()
	)

	for _, track := range tracks {
		m := MatchTrack(d, track.Slots, input)

		var found []*dictionary.Word
		if !m.Complete() {
			found = suggestTail(d, m.Tail, m.Remainder)
		}

		if len(m.Chain) > 0 && (m.Complete() || len(found) > 0) {
			key := chainKey(m.Chain)
			if i, ok := parsedAt[key]; ok {
				parsed[i].Tracks = append(parsed[i].Tracks, track.Name)
			} else {
				parsedAt[key] = len(parsed)
				parsed = append(parsed, Alternative{
					Tracks: []string{track.Name},
					Slots:  expand(d, m.Chain),
				})
			}
		}

		for _, w := range found {
			if filter.ShouldInclude(w.ID) {
				suggestions = append(suggestions, w)
			}
		}
	}

	Rank(input, suggestions)
	return Completions{Input: input, Parsed: parsed, Suggestions: suggestions}
}

// suggestTail collects the records that continue remainder, slot by slot,
// up to and including the first anchor slot.
func suggestTail(d *dictionary.Dictionary, tail []grammar.Slot, remainder string) []*dictionary.Word {
	var found []*dictionary.Word
	for _, slot := range tail {
		found = append(found, d.WithPrefix(slot.POS, remainder)...)
		if slot.Anchor {
			break
		}
	}
	return found
}

func expand(d *dictionary.Dictionary, chain []Link) []Group {
	groups := make([]Group, 0, len(chain))
	for _, link := range chain {
		var g Group
		for _, w := range d.Lookup(link.Headword) {
			if w.POS == link.POS {
				g = append(g, w)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func chainKey(chain []Link) string {
	var b strings.Builder
	for _, link := range chain {
		b.WriteString(link.Headword)
		b.WriteByte(0)
		b.WriteString(link.POS.String())
		b.WriteByte(0x1f)
	}
	return b.String()
}

// Rank sorts words in place: headwords starting with input first, then
// dictionary order.
func Rank(input string, words []*dictionary.Word) {
	slices.SortStableFunc(words, func(a, b *dictionary.Word) int {
		aDirect := strings.HasPrefix(a.Headword, input)
		bDirect := strings.HasPrefix(b.Headword, input)
		if aDirect != bDirect {
			if aDirect {
				return -1
			}
			return 1
		}
		return dictionary.Compare(a, b)
	})
}
