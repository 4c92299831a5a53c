// Package constants provides shared constants used throughout the atlas codebase.
// This includes timeouts, limits, cache keys, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultQueryTimeout is the per-query timeout for SPARQL requests
	DefaultQueryTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// SyncTimeout is the timeout for a full sync run across all entity types
	SyncTimeout = 30 * time.Minute

	// TypeSyncTimeout is the timeout for one entity type's sync
	TypeSyncTimeout = 5 * time.Minute

	// RedisDialTimeout is the timeout for establishing a Redis connection
	RedisDialTimeout = 5 * time.Second
)

// Sync scheduling constants
const (
	// DefaultSyncInterval is the staleness threshold: data older than this is due
	// for a refresh
	DefaultSyncInterval = 6 * time.Hour

	// TypeDelay is the pause between entity types in a full sync, to respect
	// remote endpoint rate limits
	TypeDelay = 2 * time.Second

	// FacetWorkers is the bounded worker pool size for concurrent facet queries
	// within one entity type's sync
	FacetWorkers = 3
)

// Persistence constants
const (
	// BulkBatchSize is the number of rows per batched write during upserts
	BulkBatchSize = 50
)

// Cache constants
const (
	// QueryCacheTTL is the time-to-live for raw query results
	QueryCacheTTL = 24 * time.Hour

	// BookkeepingCacheTTL is the time-to-live for sync bookkeeping entries
	BookkeepingCacheTTL = 24 * time.Hour

	// StatsCacheTTL is the time-to-live for cached dashboard statistics
	StatsCacheTTL = 30 * time.Minute

	// LastSyncKeyPrefix prefixes the per-type last-successful-sync cache keys,
	// e.g. "last_sync_provinces"
	LastSyncKeyPrefix = "last_sync_"

	// StatsCacheKey is the cache key for dashboard statistics
	StatsCacheKey = "dashboard_stats"

	// NormalizerCacheSize is the bounded memo size for the text normalizer
	NormalizerCacheSize = 200
)

// Endpoint constants
const (
	// WikidataEndpoint is the default Wikidata SPARQL endpoint
	WikidataEndpoint = "https://query.wikidata.org/sparql"

	// DBpediaEndpoint is the default DBpedia SPARQL endpoint
	DBpediaEndpoint = "https://dbpedia.org/sparql"

	// UserAgent identifies outbound SPARQL requests
	UserAgent = "ecuadata-atlas/1.0 (https://github.com/ecuadata/atlas)"
)

// Ecuador bounding box used by the cleanup pass. Coordinates outside this box
// are considered invalid for parks, heritage sites, and plazas.
const (
	// MinLatitude is the southern bound
	MinLatitude = -5.0

	// MaxLatitude is the northern bound
	MaxLatitude = 2.0

	// MinLongitude is the western bound (includes the Galápagos)
	MinLongitude = -92.0

	// MaxLongitude is the eastern bound
	MaxLongitude = -75.0
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatDate is the date-only format used for truncated source dates
	TimeFormatDate = "2006-01-02"

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"
)

// Default values
const (
	// DefaultDatabaseDSN is the fallback SQLite database path
	DefaultDatabaseDSN = "atlas.db"

	// DefaultEnvironment is the default environment (development, staging, production)
	DefaultEnvironment = "production"
)
