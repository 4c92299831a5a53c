// Package normalize canonicalizes entity names into join keys usable across
// sources that spell the same entity differently ("Provincia del Guayas" vs
// "Guayas Province"). It is the single normalization point for every
// cross-source name join in the engine.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ecuadata/atlas/pkg/constants"
)

// stopWords are language markers, articles, and geographic fillers removed
// from names before joining.
var stopWords = map[string]struct{}{
	"provincia": {},
	"province":  {},
	"del":       {},
	"de":        {},
	"la":        {},
	"el":        {},
	"los":       {},
	"las":       {},
	"ecuador":   {},
	"islas":     {},
}

// Normalizer produces join keys from human-readable names. Safe for
// concurrent use. Keys are memoized in a bounded cache since the same names
// repeat on every join and every run.
type Normalizer struct {
	mu      sync.RWMutex
	memo    map[string]string
	maxSize int

	stripper transform.Transformer
}

// New creates a Normalizer with the default memo bound.
func New() *Normalizer {
	return &Normalizer{
		memo:     make(map[string]string),
		maxSize:  constants.NormalizerCacheSize,
		stripper: transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Key returns the join key for a name: diacritics stripped, lowercased,
// stop words removed, non-alphanumerics dropped, whitespace collapsed.
func (n *Normalizer) Key(name string) string {
	if name == "" {
		return ""
	}

	n.mu.RLock()
	if key, ok := n.memo[name]; ok {
		n.mu.RUnlock()
		return key
	}
	n.mu.RUnlock()

	key := n.compute(name)

	n.mu.Lock()
	// The input cardinality is tiny (province and canton names), so dumping
	// the whole memo on overflow is cheaper than tracking recency.
	if len(n.memo) >= n.maxSize {
		n.memo = make(map[string]string)
	}
	n.memo[name] = key
	n.mu.Unlock()

	return key
}

// Equal reports whether two names normalize to the same join key.
func (n *Normalizer) Equal(a, b string) bool {
	return n.Key(a) != "" && n.Key(a) == n.Key(b)
}

// Size returns the current number of memoized entries.
func (n *Normalizer) Size() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.memo)
}

func (n *Normalizer) compute(name string) string {
	stripped, _, err := transform.String(n.stripper, name)
	if err != nil {
		stripped = name
	}

	lowered := strings.ToLower(stripped)

	var words []string
	for _, word := range strings.Fields(lowered) {
		word = keepAlnum(word)
		if word == "" {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}

	return strings.Join(words, " ")
}

// keepAlnum drops every rune that is not a letter or digit.
func keepAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
