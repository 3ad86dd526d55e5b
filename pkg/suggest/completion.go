package suggest

import (
	"time"

	"github.com/bastiangx/katik/pkg/dictionary"
	"github.com/bastiangx/katik/pkg/grammar"
	"github.com/bastiangx/katik/pkg/morpho"
	"github.com/charmbracelet/log"
)

// Completer answers completion requests over one loaded dictionary.
// It is safe for concurrent use.
type Completer struct {
	dict   *dictionary.Dictionary
	tracks []grammar.Track
	cache  *ResultCache
}

// NewCompleter creates a completer; cacheSize 0 disables the result cache.
func NewCompleter(dict *dictionary.Dictionary, tracks []grammar.Track, cacheSize int) *Completer {
	return &Completer{
		dict:   dict,
		tracks: tracks,
		cache:  NewResultCache(cacheSize),
	}
}

// Complete parses input on every track and returns the ranked suggestions,
// trimmed to limit when limit is positive.
func (c *Completer) Complete(input string, limit int) morpho.Completions {
	result, ok := c.cache.Get(input)
	if !ok {
		start := time.Now()
		result = morpho.ParseAndSuggest(c.dict, c.tracks, input)
		log.Debugf("Completed %q in %v: %d parses, %d suggestions",
			input, time.Since(start), len(result.Parsed), len(result.Suggestions))
		c.cache.Add(input, result)
	}

	if limit > 0 && len(result.Suggestions) > limit {
		result.Suggestions = result.Suggestions[:limit:limit]
	}
	return result
}

// Dictionary returns the dictionary the completer was built over.
func (c *Completer) Dictionary() *dictionary.Dictionary {
	return c.dict
}

// Stats returns statistics about the loaded dictionary
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": c.dict.Len(),
		"tracks":     len(c.tracks),
	}
	for k, v := range c.cache.Stats() {
		stats[k] = v
	}
	return stats
}
