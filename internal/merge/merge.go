// Package merge joins a primary entity list with secondary detail lists
// keyed by the stable source identifier, producing one enriched record per
// primary entity. The join is anchored on the primary list: detail rows
// whose key has no primary match are dropped, because the primary source is
// authoritative about which entities exist.
package merge

import (
	"github.com/ecuadata/atlas/pkg/extract"
	"github.com/ecuadata/atlas/pkg/logging"
	"github.com/ecuadata/atlas/pkg/normalize"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Detail is one secondary facet's rows, tagged with its source and facet
// names and the variable its entity key is bound to.
type Detail struct {
	Source   string
	Facet    string
	KeyVar   string
	Bindings []sparql.Binding
}

// Enrichment is one detail row matched to a primary entity.
type Enrichment struct {
	Source  string
	Facet   string
	Binding sparql.Binding
}

// Merged is one primary entity with every matched enrichment attached.
type Merged struct {
	Key         string
	Primary     sparql.Binding
	Enrichments []Enrichment
}

// Join merges zero or more detail lists into the primary list, keyed by the
// source identifier extracted from each row's entity URI. Primary order is
// preserved; when the primary list repeats a key (UNION queries do this for
// entities in several classes), the first row wins. The merged count always
// equals the number of distinct primary keys, never primary plus orphans.
func Join(primary []sparql.Binding, keyVar string, details ...Detail) []Merged {
	merged := make([]Merged, 0, len(primary))
	index := make(map[string]int, len(primary))

	for _, b := range primary {
		key, ok := extract.QID(b.Get(keyVar))
		if !ok {
			continue
		}
		if _, seen := index[key]; seen {
			continue
		}
		index[key] = len(merged)
		merged = append(merged, Merged{Key: key, Primary: b})
	}

	dropped := 0
	for _, d := range details {
		for _, b := range d.Bindings {
			key, ok := extract.QID(b.Get(d.KeyVar))
			if !ok {
				continue
			}
			i, found := index[key]
			if !found {
				dropped++
				continue
			}
			merged[i].Enrichments = append(merged[i].Enrichments, Enrichment{
				Source:  d.Source,
				Facet:   d.Facet,
				Binding: b,
			})
		}
	}

	if dropped > 0 {
		logging.Debug().
			Int("dropped", dropped).
			Int("merged", len(merged)).
			Msg("Dropped detail rows without a primary match")
	}

	return merged
}

// EnrichmentsFrom returns the merged record's enrichment rows for one facet,
// in arrival order.
func (m *Merged) EnrichmentsFrom(facet string) []sparql.Binding {
	var out []sparql.Binding
	for _, e := range m.Enrichments {
		if e.Facet == facet {
			out = append(out, e.Binding)
		}
	}
	return out
}

// FirstEnrichment returns the first enrichment row for a facet, if any.
func (m *Merged) FirstEnrichment(facet string) (sparql.Binding, bool) {
	for _, e := range m.Enrichments {
		if e.Facet == facet {
			return e.Binding, true
		}
	}
	return nil, false
}

// NameIndex maps normalized entity names to binding rows, for secondary
// facets that carry no stable identifier (the DBpedia adapter). Lookups go
// through the shared normalizer so both sides of the join use the same key.
type NameIndex struct {
	norm *normalize.Normalizer
	rows map[string]sparql.Binding
}

// NewNameIndex builds an index over bindings, keyed by the normalized value
// of nameVar. Rows whose name normalizes to the empty key are skipped; the
// first row per key wins.
func NewNameIndex(norm *normalize.Normalizer, bindings []sparql.Binding, nameVar string) *NameIndex {
	idx := &NameIndex{
		norm: norm,
		rows: make(map[string]sparql.Binding, len(bindings)),
	}
	for _, b := range bindings {
		key := norm.Key(b.Get(nameVar))
		if key == "" {
			continue
		}
		if _, seen := idx.rows[key]; seen {
			continue
		}
		idx.rows[key] = b
	}
	return idx
}

// Lookup returns the row whose normalized name matches the given name.
func (idx *NameIndex) Lookup(name string) (sparql.Binding, bool) {
	b, ok := idx.rows[idx.norm.Key(name)]
	return b, ok
}

// Len reports the number of indexed rows.
func (idx *NameIndex) Len() int { return len(idx.rows) }
