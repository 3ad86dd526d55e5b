// Package suggest serves morphological completions to the shells: it owns the
// loaded dictionary and the track table, caches results and trims them to a limit.
package suggest

import (
	"github.com/bastiangx/katik/pkg/dictionary"
	"github.com/bastiangx/katik/pkg/morpho"
)

// ICompleter defines the interface the CLI, IPC and HTTP shells depend on
type ICompleter interface {
	// Complete returns the interpretations of input and at most limit ranked suggestions
	Complete(input string, limit int) morpho.Completions

	// Stats returns statistics about the loaded dictionary and the cache
	Stats() map[string]int

	// Dictionary returns the read-only dictionary behind the completions
	Dictionary() *dictionary.Dictionary
}
