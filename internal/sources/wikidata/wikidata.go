// Package wikidata adapts the Wikidata SPARQL endpoint to the source
// interface. It is the primary source for every entity type: its facets
// anchor the enrichment joins and supply the stable entity identifiers used
// as upsert keys.
package wikidata

import (
	"context"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Name is the adapter's source name.
const Name = "wikidata"

// Wikidata is the Wikidata source adapter.
type Wikidata struct {
	client   *sparql.Client
	cache    cache.Cache
	endpoint string
}

// Option configures a Wikidata adapter.
type Option func(*Wikidata)

// WithEndpoint overrides the default endpoint URL.
func WithEndpoint(url string) Option {
	return func(w *Wikidata) {
		if url != "" {
			w.endpoint = url
		}
	}
}

// WithCache sets the raw-query cache consulted before the endpoint.
func WithCache(c cache.Cache) Option {
	return func(w *Wikidata) {
		w.cache = c
	}
}

// New creates a Wikidata adapter on top of the given query client.
func New(client *sparql.Client, opts ...Option) *Wikidata {
	w := &Wikidata{
		client:   client,
		endpoint: constants.WikidataEndpoint,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name implements sources.Source.
func (w *Wikidata) Name() string { return Name }

// Facets returns the fixed facet catalog for an entity type.
func (w *Wikidata) Facets(t entities.Type) []sources.Facet {
	switch t {
	case entities.TypeProvinces:
		return []sources.Facet{
			{
				Name:     sources.FacetProvincesBase,
				CacheKey: "wikidata_provinces_base",
				Query:    queryProvincesBase,
				Primary:  true,
				KeyVar:   "provincia",
			},
			{
				Name:     sources.FacetProvinceCantons,
				CacheKey: "wikidata_provinces_cantons",
				Query:    queryProvinceCantons,
				KeyVar:   "provincia",
			},
		}
	case entities.TypeParks:
		return []sources.Facet{
			{
				Name:     sources.FacetParksBase,
				CacheKey: "wikidata_parks_base",
				Query:    queryParksBase,
				Primary:  true,
				KeyVar:   "parque",
			},
		}
	case entities.TypeHeritage:
		return []sources.Facet{
			{
				Name:     sources.FacetHeritageBase,
				CacheKey: "wikidata_heritage_base",
				Query:    queryHeritageBase,
				Primary:  true,
				KeyVar:   "sitio",
			},
			{
				Name:     sources.FacetHeritageUNESCO,
				CacheKey: "wikidata_heritage_unesco",
				Query:    queryHeritageUNESCO,
				KeyVar:   "sitio",
			},
			{
				Name:     sources.FacetHeritageArchaeological,
				CacheKey: "wikidata_heritage_archaeological",
				Query:    queryHeritageArchaeological,
				KeyVar:   "sitio",
			},
			{
				Name:     sources.FacetHeritageReligious,
				CacheKey: "wikidata_heritage_religious",
				Query:    queryHeritageReligious,
				KeyVar:   "sitio",
			},
		}
	case entities.TypePlazas:
		return []sources.Facet{
			{
				Name:     sources.FacetPlazasBase,
				CacheKey: "wikidata_plazas_base",
				Query:    queryPlazasBase,
				Primary:  true,
				KeyVar:   "plaza",
			},
		}
	}
	return nil
}

// Fetch implements sources.Source.
func (w *Wikidata) Fetch(ctx context.Context, f sources.Facet) ([]sparql.Binding, error) {
	return sources.CachedFetch(ctx, w.cache, w.client, w.endpoint, f)
}
