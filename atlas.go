// Package atlas reconciles facts about Ecuadorian geographic and cultural
// entities across linked-data knowledge graphs and persists a cleaned,
// de-duplicated record set. The root package is the sync orchestrator: it
// decides per entity type whether a refresh is due, fans the type's facet
// queries out concurrently, merges and processes the results, and writes
// idempotent upserts keyed by each entity's stable source identifier.
package atlas

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ecuadata/atlas/internal/process"
	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/internal/sources/dbpedia"
	"github.com/ecuadata/atlas/internal/sources/wikidata"
	"github.com/ecuadata/atlas/internal/store"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/normalize"
	"github.com/ecuadata/atlas/pkg/sparql"
)

// Atlas is the sync engine's public surface.
type Atlas interface {
	// Sync refreshes every requested entity type in the fixed order,
	// pacing between types. A single type's failure never aborts the run.
	Sync(ctx context.Context, opts ...SyncOption) (*Result, error)

	// SyncType refreshes one entity type.
	SyncType(ctx context.Context, t entities.Type, opts ...SyncOption) (*TypeResult, error)

	// Cleanup runs the data-quality pass: empty names, foreign province
	// keys, out-of-bounds coordinates.
	Cleanup(ctx context.Context) (*store.CleanupResult, error)

	// Stats reports per-type row counts and last-sync timestamps.
	Stats(ctx context.Context) (*Stats, error)

	// Close releases the store connection.
	Close() error
}

// atlas is the internal implementation of the Atlas interface.
type atlas struct {
	config *config

	store       store.Store
	queryCache  cache.Cache
	bookkeeping cache.Cache
	srcs        []sources.Source

	norm      *normalize.Normalizer
	processor *process.Processor

	// limiter paces consecutive type syncs against the remote endpoints.
	limiter *rate.Limiter

	// typeLocks serialize concurrent syncs of the same type. TryLock
	// failure reports the type as skipped rather than queueing a second
	// writer behind the first.
	typeLocks map[entities.Type]*sync.Mutex
}

// New creates an Atlas engine. Callers construct the caches and store
// explicitly (or accept the defaults) and pass them in; the engine holds no
// hidden process-wide state.
func New(opts ...Option) (Atlas, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	a := &atlas{
		config:      cfg,
		store:       cfg.store,
		queryCache:  cfg.queryCache,
		bookkeeping: cfg.bookkeeping,
		srcs:        cfg.sources,
		norm:        normalize.New(),
		limiter:     rate.NewLimiter(rate.Every(cfg.typeDelay), 1),
		typeLocks:   make(map[entities.Type]*sync.Mutex),
	}
	a.processor = process.New(a.norm)
	for _, t := range entities.AllTypes() {
		a.typeLocks[t] = &sync.Mutex{}
	}

	if a.queryCache == nil {
		a.queryCache = cache.NewMemory()
	}
	if a.bookkeeping == nil {
		a.bookkeeping = cache.NewMemory()
	}

	if a.store == nil {
		s, err := store.Open(cfg.databaseDSN)
		if err != nil {
			return nil, err
		}
		a.store = s
	}

	if len(a.srcs) == 0 {
		client := sparql.New(sparql.WithTimeout(cfg.queryTimeout))
		a.srcs = []sources.Source{
			wikidata.New(client,
				wikidata.WithEndpoint(cfg.wikidataEndpoint),
				wikidata.WithCache(a.queryCache)),
			dbpedia.New(client,
				dbpedia.WithEndpoint(cfg.dbpediaEndpoint),
				dbpedia.WithCache(a.queryCache)),
		}
	}

	return a, nil
}

// Close implements Atlas.
func (a *atlas) Close() error {
	return a.store.Close()
}
