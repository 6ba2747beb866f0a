package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "quotes-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultMongoCollection, cfg.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestLoad_LegacyEnvVars tests the flat deployment variables.
func TestLoad_LegacyEnvVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db.internal:27017")
	t.Setenv("DATABASE_NAME", "quotes")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db.internal:27017", cfg.Mongo.URI)
	assert.Equal(t, "quotes", cfg.Mongo.Database)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Mongo.Configured())
}

// TestLoad_LegacyEnvVarsBeatPrefixed tests that the flat variables win
// over the APP_ prefixed ones.
func TestLoad_LegacyEnvVarsBeatPrefixed(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "quotes-service", cfg.App.Name)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestMongoConfig_Configured tests the storage presence check.
func TestMongoConfig_Configured(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		database string
		want     bool
	}{
		{"both set", "mongodb://localhost:27017", "quotes", true},
		{"missing database", "mongodb://localhost:27017", "", false},
		{"missing uri", "", "quotes", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MongoConfig{URI: tt.uri, Database: tt.database}
			assert.Equal(t, tt.want, m.Configured())
		})
	}
}

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultMaxRequestSize, d["server.max_request_size"])
	assert.Equal(t, DefaultMongoCollection, d["mongo.collection"])
	assert.Equal(t, "", d["mongo.uri"])
}
