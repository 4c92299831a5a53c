package app

import (
	"os"
	"testing"
	"time"

	"github.com/ecuadata/atlas/pkg/constants"
)

// TestLoadConfig verifies defaults land when nothing is configured.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	if config.DatabaseDSN == "" {
		t.Error("DatabaseDSN not set to default")
	}
	if config.SyncInterval != constants.DefaultSyncInterval {
		t.Errorf("SyncInterval = %v, want %v", config.SyncInterval, constants.DefaultSyncInterval)
	}
	if config.QueryTimeout != constants.DefaultQueryTimeout {
		t.Errorf("QueryTimeout = %v, want %v", config.QueryTimeout, constants.DefaultQueryTimeout)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies ATLAS-prefixed env loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("ATLAS_DATABASE_DSN", "postgres://localhost/atlas_test")
	t.Setenv("ATLAS_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("ATLAS_SYNC_INTERVAL", "1h")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DatabaseDSN != "postgres://localhost/atlas_test" {
		t.Errorf("DatabaseDSN = %s, want postgres://localhost/atlas_test", config.DatabaseDSN)
	}
	if config.RedisURL != "redis://localhost:6379/1" {
		t.Errorf("RedisURL = %s, want redis://localhost:6379/1", config.RedisURL)
	}
	if config.SyncInterval != time.Hour {
		t.Errorf("SyncInterval = %v, want 1h", config.SyncInterval)
	}
}

// TestConfig_UpdateFromFlags verifies flag values override loaded config.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty flag values leave the loaded settings alone.
	config.UpdateFromFlags(false, false, false, "", "")
	if config.Format != "json" {
		t.Errorf("empty format flag overwrote config: %s", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("empty log-level flag overwrote config: %s", config.LogLevel)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	const key = "ATLAS_TEST_ENV_DEFAULT"
	os.Unsetenv(key)

	if got := getEnvOrDefault(key, "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault = %s, want fallback", got)
	}

	t.Setenv(key, "set")
	if got := getEnvOrDefault(key, "fallback"); got != "set" {
		t.Errorf("getEnvOrDefault = %s, want set", got)
	}
}
