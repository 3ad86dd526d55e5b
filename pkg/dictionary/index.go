package dictionary

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrDuplicateID is returned by Build when two different records share an id.
var ErrDuplicateID = errors.New("duplicate id")

// Dictionary is the immutable, indexed form of a word list.
type Dictionary struct {
	words      []*Word
	byID       map[string]*Word
	byHeadword map[string][]*Word
	byPOS      map[POS][]*Word
	posTries   map[POS]*patricia.Trie
	byEnglish  map[string][]*Word
	bySwedish  map[string][]*Word
}

// Build indexes words in a single forward pass.
//
// Ids are the identity of a record: a repeated id whose record is identical
// to the first one is dropped, a repeated id with different content fails.
func Build(words []Word) (*Dictionary, error) {
	d := &Dictionary{
		words:      make([]*Word, 0, len(words)),
		byID:       make(map[string]*Word, len(words)),
		byHeadword: make(map[string][]*Word, len(words)),
		byPOS:      make(map[POS][]*Word),
		posTries:   make(map[POS]*patricia.Trie),
		byEnglish:  make(map[string][]*Word),
		bySwedish:  make(map[string][]*Word),
	}

	for i := range words {
		w := words[i]
		if prev, ok := d.byID[w.ID]; ok {
			if prev.Equal(&w) {
				log.Debugf("Dropping identical duplicate of %q", w.ID)
				continue
			}
			return nil, fmt.Errorf("record %q (%s): %w", w.ID, w.Headword, ErrDuplicateID)
		}

		en, err := w.EnglishTerms()
		if err != nil {
			return nil, fmt.Errorf("record %q en: %w", w.ID, err)
		}
		sv, err := w.SwedishTerms()
		if err != nil {
			return nil, fmt.Errorf("record %q sv: %w", w.ID, err)
		}
		d.add(&w, en, sv)
	}

	for pos, bucket := range d.byPOS {
		sortLongestFirst(bucket)
		log.Debugf("Indexed %d words as %s", len(bucket), pos)
	}
	return d, nil
}

func (d *Dictionary) add(w *Word, enTerms, svTerms []string) {
	d.words = append(d.words, w)
	d.byID[w.ID] = w
	d.byHeadword[w.Headword] = append(d.byHeadword[w.Headword], w)
	d.byPOS[w.POS] = append(d.byPOS[w.POS], w)
	d.insertTrie(w)
	addTerms(d.byEnglish, enTerms, w)
	addTerms(d.bySwedish, svTerms, w)
}

func (d *Dictionary) insertTrie(w *Word) {
	form := w.Canonical()
	if form == "" {
		return
	}
	trie, ok := d.posTries[w.POS]
	if !ok {
		trie = patricia.NewTrie()
		d.posTries[w.POS] = trie
	}
	key := patricia.Prefix(form)
	if item := trie.Get(key); item != nil {
		trie.Set(key, append(item.([]*Word), w))
		return
	}
	trie.Insert(key, []*Word{w})
}

// addTerms files w under every term once, however often the term repeats.
func addTerms(index map[string][]*Word, terms []string, w *Word) {
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		if seen[term] {
			continue
		}
		seen[term] = true
		index[term] = append(index[term], w)
	}
}

// sortLongestFirst orders candidates by descending canonical length so the
// longest morpheme is tried first; equal lengths fall back to Compare.
func sortLongestFirst(bucket []*Word) {
	slices.SortStableFunc(bucket, func(a, b *Word) int {
		return cmp.Or(
			cmp.Compare(utf8.RuneCountInString(b.Canonical()), utf8.RuneCountInString(a.Canonical())),
			Compare(a, b),
		)
	})
}

// Words returns every record in load order.
func (d *Dictionary) Words() []*Word { return d.words }

// Len is the number of records.
func (d *Dictionary) Len() int { return len(d.words) }

// ByID returns the record with the given id.
func (d *Dictionary) ByID(id string) (*Word, bool) {
	w, ok := d.byID[id]
	return w, ok
}

// Lookup returns the records spelled exactly as headword, hyphens included.
func (d *Dictionary) Lookup(headword string) []*Word { return d.byHeadword[headword] }

// ByPOS returns the records of one part of speech, longest canonical form first.
// The slice is shared and must not be modified.
func (d *Dictionary) ByPOS(pos POS) []*Word { return d.byPOS[pos] }

// English returns the records with term among their English index terms.
func (d *Dictionary) English(term string) []*Word { return d.byEnglish[term] }

// Swedish returns the records with term among their Swedish index terms.
func (d *Dictionary) Swedish(term string) []*Word { return d.bySwedish[term] }

// WithPrefix returns the records of pos whose canonical form starts with prefix,
// in Compare order.
func (d *Dictionary) WithPrefix(pos POS, prefix string) []*Word {
	trie, ok := d.posTries[pos]
	if !ok {
		return nil
	}

	var found []*Word
	err := trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		found = append(found, item.([]*Word)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting %s trie: %v", pos, err)
		return nil
	}
	slices.SortFunc(found, Compare)
	return found
}
