// Package app provides the application context and dependency management
// for the atlas CLI. It centralizes configuration, logging, and construction
// of the sync engine so commands stay thin.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ecuadata/atlas"
	"github.com/ecuadata/atlas/pkg/cache"
	"github.com/ecuadata/atlas/pkg/errors"
)

// App represents the atlas application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Engine instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	engine atlas.Atlas
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfig("config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Atlas returns the sync engine, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Atlas() (atlas.Atlas, error) {
	a.mu.RLock()
	if a.engine != nil {
		eng := a.engine
		a.mu.RUnlock()
		return eng, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.engine != nil {
		return a.engine, nil
	}

	opts := a.buildAtlasOptions()
	eng, err := atlas.New(opts...)
	if err != nil {
		return nil, err
	}

	a.engine = eng
	return eng, nil
}

// Shutdown performs graceful shutdown of the application, closing the
// database and cache connections if an engine was constructed.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	eng := a.engine
	a.mu.RUnlock()

	if eng != nil {
		return eng.Close()
	}
	return nil
}

// buildAtlasOptions constructs engine options from the app configuration.
func (a *App) buildAtlasOptions() []atlas.Option {
	opts := []atlas.Option{
		atlas.WithDatabaseDSN(a.config.DatabaseDSN),
		atlas.WithSyncInterval(a.config.SyncInterval),
		atlas.WithQueryTimeout(a.config.QueryTimeout),
	}

	if a.config.RedisURL != "" {
		// Query results and bookkeeping live in separate caches so a flush
		// of one cannot disturb the other.
		opts = append(opts,
			atlas.WithQueryCache(a.newCache("query")),
			atlas.WithBookkeepingCache(a.newCache("bookkeeping")),
		)
	}

	if a.config.WikidataEndpoint != "" {
		opts = append(opts, atlas.WithWikidataEndpoint(a.config.WikidataEndpoint))
	}
	if a.config.DBpediaEndpoint != "" {
		opts = append(opts, atlas.WithDBpediaEndpoint(a.config.DBpediaEndpoint))
	}

	return opts
}

// newCache connects to Redis, falling back to an in-memory cache when the
// server is unreachable. Sync still works without Redis, just slower.
func (a *App) newCache(role string) cache.Cache {
	c, err := cache.NewRedis(a.config.RedisURL)
	if err != nil {
		a.logger.Warn().
			Err(err).
			Str("role", role).
			Msg("Redis unavailable, using in-memory cache")
		return cache.NewMemory()
	}
	return c
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithAtlas sets a custom engine instance (useful for testing).
func WithAtlas(eng atlas.Atlas) Option {
	return func(a *App) error {
		a.engine = eng
		return nil
	}
}
