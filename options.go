package atlas

import (
	"time"

	"github.com/ecuadata/atlas/internal/sources"
	"github.com/ecuadata/atlas/internal/store"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/constants"
	"github.com/ecuadata/atlas/pkg/entities"
	"github.com/ecuadata/atlas/pkg/errors"
)

// config holds the engine's construction-time settings.
type config struct {
	store       store.Store
	queryCache  cache.Cache
	bookkeeping cache.Cache
	sources     []sources.Source

	databaseDSN      string
	wikidataEndpoint string
	dbpediaEndpoint  string

	syncInterval time.Duration
	queryTimeout time.Duration
	typeDelay    time.Duration
	workers      int
}

func defaultConfig() *config {
	return &config{
		databaseDSN:      constants.DefaultDatabaseDSN,
		wikidataEndpoint: constants.WikidataEndpoint,
		dbpediaEndpoint:  constants.DBpediaEndpoint,
		syncInterval:     constants.DefaultSyncInterval,
		queryTimeout:     constants.DefaultQueryTimeout,
		typeDelay:        constants.TypeDelay,
		workers:          constants.FacetWorkers,
	}
}

// Option is a function that configures an Atlas engine.
type Option func(*config) error

// WithStore sets the record store. Without it the engine opens the default
// database DSN.
func WithStore(s store.Store) Option {
	return func(c *config) error {
		c.store = s
		return nil
	}
}

// WithDatabaseDSN sets the DSN the engine opens when no store is supplied.
func WithDatabaseDSN(dsn string) Option {
	return func(c *config) error {
		if dsn == "" {
			return errors.NewConfigError("database", "empty DSN", nil)
		}
		c.databaseDSN = dsn
		return nil
	}
}

// WithQueryCache sets the raw-query cache shared by the source adapters.
func WithQueryCache(cc cache.Cache) Option {
	return func(c *config) error {
		c.queryCache = cc
		return nil
	}
}

// WithBookkeepingCache sets the sync-bookkeeping cache holding the per-type
// last-successful-sync timestamps. Logically distinct from the query cache
// even when both point at the same server.
func WithBookkeepingCache(cc cache.Cache) Option {
	return func(c *config) error {
		c.bookkeeping = cc
		return nil
	}
}

// WithSources replaces the default Wikidata and DBpedia adapters.
func WithSources(srcs ...sources.Source) Option {
	return func(c *config) error {
		c.sources = srcs
		return nil
	}
}

// WithWikidataEndpoint overrides the Wikidata endpoint URL.
func WithWikidataEndpoint(url string) Option {
	return func(c *config) error {
		c.wikidataEndpoint = url
		return nil
	}
}

// WithDBpediaEndpoint overrides the DBpedia endpoint URL.
func WithDBpediaEndpoint(url string) Option {
	return func(c *config) error {
		c.dbpediaEndpoint = url
		return nil
	}
}

// WithSyncInterval sets the staleness threshold: data older than this is
// due for a refresh.
func WithSyncInterval(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return errors.NewConfigError("sync_interval", "must be positive", nil)
		}
		c.syncInterval = d
		return nil
	}
}

// WithQueryTimeout sets the per-facet query timeout.
func WithQueryTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return errors.NewConfigError("query_timeout", "must be positive", nil)
		}
		c.queryTimeout = d
		return nil
	}
}

// WithTypeDelay sets the pause between entity types in a full sync.
func WithTypeDelay(d time.Duration) Option {
	return func(c *config) error {
		if d < 0 {
			return errors.NewConfigError("type_delay", "must not be negative", nil)
		}
		c.typeDelay = d
		return nil
	}
}

// WithWorkers sets the bounded worker pool size for concurrent facet
// queries within one type's sync.
func WithWorkers(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return errors.NewConfigError("workers", "must be positive", nil)
		}
		c.workers = n
		return nil
	}
}

// SyncOption configures a single sync run.
type SyncOption func(*syncOptions)

// syncOptions holds per-run settings.
type syncOptions struct {
	types []entities.Type
	force bool
}

func newSyncOptions(opts ...SyncOption) *syncOptions {
	o := &syncOptions{types: entities.AllTypes()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTypes restricts the run to the given entity types, keeping the fixed
// sync order.
func WithTypes(types ...entities.Type) SyncOption {
	return func(o *syncOptions) {
		if len(types) == 0 {
			return
		}
		requested := make(map[entities.Type]struct{}, len(types))
		for _, t := range types {
			requested[t] = struct{}{}
		}
		var ordered []entities.Type
		for _, t := range entities.AllTypes() {
			if _, ok := requested[t]; ok {
				ordered = append(ordered, t)
			}
		}
		o.types = ordered
	}
}

// WithForce bypasses the staleness check so the run always fetches.
func WithForce() SyncOption {
	return func(o *syncOptions) {
		o.force = true
	}
}
