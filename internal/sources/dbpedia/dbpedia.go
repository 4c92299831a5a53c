// Package dbpedia adapts the DBpedia SPARQL endpoint to the source
// interface. DBpedia is a secondary source: its rows carry no Wikidata
// identifiers, so its facets are joined to the primary entities by
// normalized name rather than through the key-based enrichment merger.
package dbpedia

import (
	"context"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Name is the adapter's source name.
const Name = "dbpedia"

// DBpedia is the DBpedia source adapter.
type DBpedia struct {
	client   *sparql.Client
	cache    cache.Cache
	endpoint string
}

// Option configures a DBpedia adapter.
type Option func(*DBpedia)

// WithEndpoint overrides the default endpoint URL.
func WithEndpoint(url string) Option {
	return func(d *DBpedia) {
		if url != "" {
			d.endpoint = url
		}
	}
}

// WithCache sets the raw-query cache consulted before the endpoint.
func WithCache(c cache.Cache) Option {
	return func(d *DBpedia) {
		d.cache = c
	}
}

// New creates a DBpedia adapter on top of the given query client.
func New(client *sparql.Client, opts ...Option) *DBpedia {
	d := &DBpedia{
		client:   client,
		endpoint: constants.DBpediaEndpoint,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements sources.Source.
func (d *DBpedia) Name() string { return Name }

// Facets returns the fixed facet catalog for an entity type. DBpedia only
// enriches provinces and heritage sites; it contributes nothing to parks or
// plazas.
func (d *DBpedia) Facets(t entities.Type) []sources.Facet {
	switch t {
	case entities.TypeProvinces:
		return []sources.Facet{
			{
				Name:     sources.FacetProvincesInfo,
				CacheKey: "dbpedia_provinces_info",
				Query:    queryProvincesInfo,
			},
			{
				Name:     sources.FacetProvincesFlags,
				CacheKey: "dbpedia_provinces_flags",
				Query:    queryProvinceFlags,
			},
		}
	case entities.TypeHeritage:
		return []sources.Facet{
			{
				Name:     sources.FacetHeritageAbstracts,
				CacheKey: "dbpedia_heritage_abstracts",
				Query:    queryHeritageAbstracts,
			},
		}
	}
	return nil
}

// Fetch implements sources.Source.
func (d *DBpedia) Fetch(ctx context.Context, f sources.Facet) ([]sparql.Binding, error) {
	return sources.CachedFetch(ctx, d.cache, d.client, d.endpoint, f)
}
