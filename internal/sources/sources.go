// Package sources defines the source-adapter contract for the sync engine.
// A source wraps a SPARQL client with a fixed catalog of query templates
// (facets), one per subset of an entity type's attributes. Adapters are
// stateless aside from their catalog; they return raw binding rows
// unprocessed, leaving interpretation to the extractors and processors.
package sources

import (
	"context"

	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/logging"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Facet names shared between the adapters, the merger, and the
// orchestrator.
const (
	FacetProvincesBase          = "provinces_base"
	FacetProvinceCantons        = "provinces_cantons"
	FacetProvincesInfo          = "provinces_info"
	FacetProvincesFlags         = "provinces_flags"
	FacetParksBase              = "parks_base"
	FacetHeritageBase           = "heritage_base"
	FacetHeritageUNESCO         = "heritage_unesco"
	FacetHeritageArchaeological = "heritage_archaeological"
	FacetHeritageReligious      = "heritage_religious"
	FacetHeritageAbstracts      = "heritage_abstracts"
	FacetPlazasBase             = "plazas_base"
)

// Facet is one query template targeting a specific subset of an entity
// type's attributes. Primary facets anchor the enrichment join; secondary
// facets contribute detail blocks.
type Facet struct {
	// Name identifies the facet in logs and results, e.g. "heritage_unesco".
	Name string

	// CacheKey addresses the raw-query cache. Keys embed the source name so
	// the two adapters never collide.
	CacheKey string

	// Query is the full SPARQL query text.
	Query string

	// Primary marks the facet whose rows anchor the enrichment join for its
	// entity type. Every type has exactly one primary facet per source at
	// most.
	Primary bool

	// KeyVar is the binding variable holding the entity URI the source key
	// is extracted from. Empty for name-keyed facets joined through the
	// text normalizer.
	KeyVar string
}

// Source is one knowledge-graph adapter.
type Source interface {
	// Name returns the adapter's short name, e.g. "wikidata".
	Name() string

	// Facets returns the fixed facet catalog for an entity type. An empty
	// slice means the source contributes nothing to that type.
	Facets(t entities.Type) []Facet

	// Fetch executes one facet query and returns its raw binding rows.
	// Failures surface as QueryError or ParseError; the caller decides
	// whether to degrade or abort.
	Fetch(ctx context.Context, f Facet) ([]sparql.Binding, error)
}

// CachedFetch consults the raw-query cache before hitting the endpoint and
// populates it afterwards, as the adapters' common fetch path. Cache failures
// never fail the fetch.
func CachedFetch(ctx context.Context, c cache.Cache, client *sparql.Client, endpoint string, f Facet) ([]sparql.Binding, error) {
	if c != nil && f.CacheKey != "" {
		var cached []sparql.Binding
		if cache.GetJSON(ctx, c, f.CacheKey, &cached) {
			logging.Ctx(ctx).Debug().
				Str("facet", f.Name).
				Int("rows", len(cached)).
				Msg("Query served from cache")
			return cached, nil
		}
	}

	bindings, err := client.Query(ctx, endpoint, f.Query)
	if err != nil {
		return nil, err
	}

	if c != nil && f.CacheKey != "" {
		if err := cache.SetJSON(ctx, c, f.CacheKey, bindings, constants.QueryCacheTTL); err != nil {
			logging.Ctx(ctx).Debug().Err(err).Str("facet", f.Name).Msg("Failed to cache query result")
		}
	}

	return bindings, nil
}
