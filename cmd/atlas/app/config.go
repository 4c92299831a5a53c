package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ecuadata/atlas/pkg/constants"
)

// envPrefix namespaces every environment variable the CLI reads, so
// ATLAS_DATABASE_DSN maps to the database_dsn key and so on.
const envPrefix = "ATLAS"

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Engine configuration
	DatabaseDSN      string
	RedisURL         string
	WikidataEndpoint string
	DBpediaEndpoint  string
	SyncInterval     time.Duration
	QueryTimeout     time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (ATLAS_ prefixed)
// 3. .env files
// 4. Config file (~/.atlas.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// .env files must land before Viper binds the environment.
	loadEnvFiles()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".atlas")
		}
	}

	// Config file is optional.
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		DatabaseDSN:      viper.GetString("database_dsn"),
		RedisURL:         viper.GetString("redis_url"),
		WikidataEndpoint: viper.GetString("wikidata_endpoint"),
		DBpediaEndpoint:  viper.GetString("dbpedia_endpoint"),
		SyncInterval:     viper.GetDuration("sync_interval"),
		QueryTimeout:     viper.GetDuration("query_timeout"),

		LogLevel:  viper.GetString("log_level"),
		LogFormat: getEnvOrDefault("ATLAS_LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("ATLAS_LOG_OUTPUT", "stderr"),
	}

	if config.DatabaseDSN == "" {
		config.DatabaseDSN = constants.DefaultDatabaseDSN
	}
	if config.SyncInterval == 0 {
		config.SyncInterval = constants.DefaultSyncInterval
	}
	if config.QueryTimeout == 0 {
		config.QueryTimeout = constants.DefaultQueryTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags so flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
