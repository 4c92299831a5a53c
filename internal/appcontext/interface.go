// Package appcontext defines the application context interface shared by
// every CLI command, so commands depend on one small accessor surface
// instead of the concrete App type.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/ecuadata/atlas"
)

// Interface is the accessor surface commands receive. The App struct from
// cmd/atlas/app implements it; tests substitute Mock.
type Interface interface {
	// Atlas returns the sync engine, creating it lazily on first use.
	Atlas() (atlas.Atlas, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
