package suggest

import (
	"sync/atomic"

	"github.com/bastiangx/katik/pkg/morpho"
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache keeps the completions of recently typed inputs.
// Completions are derived from an immutable dictionary and never go stale.
type ResultCache struct {
	entries *lru.Cache[string, morpho.Completions]
	hits    atomic.Int64
	misses  atomic.Int64
	size    int
}

// NewResultCache returns nil for a non-positive size, which disables caching.
func NewResultCache(size int) *ResultCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[string, morpho.Completions](size)
	if err != nil {
		log.Errorf("Failed to create result cache: %v", err)
		return nil
	}
	return &ResultCache{entries: entries, size: size}
}

// Get returns the cached completions of input.
func (rc *ResultCache) Get(input string) (morpho.Completions, bool) {
	if rc == nil {
		return morpho.Completions{}, false
	}
	c, ok := rc.entries.Get(input)
	if ok {
		rc.hits.Add(1)
	} else {
		rc.misses.Add(1)
	}
	return c, ok
}

// Add stores completions, evicting the least recently used entry when full.
func (rc *ResultCache) Add(input string, c morpho.Completions) {
	if rc == nil {
		return
	}
	if rc.entries.Add(input, c) {
		log.Debugf("Evicted oldest completion from cache")
	}
}

// Stats reports cache occupancy and hit counts.
func (rc *ResultCache) Stats() map[string]int {
	if rc == nil {
		return map[string]int{"cacheSize": 0}
	}
	return map[string]int{
		"cacheSize":    rc.size,
		"cachedInputs": rc.entries.Len(),
		"cacheHits":    int(rc.hits.Load()),
		"cacheMisses":  int(rc.misses.Load()),
	}
}
