package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost:5432/exercise-track?sslmode=disable", cfg.Database.URI)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "development", cfg.Primary.Env)
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("EXERCISE_PRIMARY_ENV", "production")
	t.Setenv("EXERCISE_SERVER_PORT", "8080")
	t.Setenv("EXERCISE_SERVER_READ_TIMEOUT", "5")
	t.Setenv("EXERCISE_SERVER_RATE_LIMIT", "2.5")
	t.Setenv("EXERCISE_DATABASE_URI", "postgres://db:5432/tracker")
	t.Setenv("EXERCISE_OBSERVABILITY_LOGGING_LEVEL", "warn")
	t.Setenv("EXERCISE_OBSERVABILITY_LOGGING_SLOW_QUERY_THRESHOLD", "250ms")
	t.Setenv("EXERCISE_OBSERVABILITY_NEW_RELIC_LICENSE_KEY", "abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.InDelta(t, 2.5, cfg.Server.RateLimit, 0.0001)
	assert.Equal(t, "postgres://db:5432/tracker", cfg.Database.URI)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.True(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("EXERCISE_OBSERVABILITY_LOGGING_LEVEL", "loud")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"EXERCISE_SERVER_PORT":                           "server.port",
		"EXERCISE_SERVER_CORS_ALLOWED_ORIGINS":           "server.cors_allowed_origins",
		"EXERCISE_DATABASE_MAX_OPEN_CONNS":               "database.max_open_conns",
		"EXERCISE_OBSERVABILITY_SERVICE_NAME":            "observability.service_name",
		"EXERCISE_OBSERVABILITY_HEALTH_CHECKS_TIMEOUT":   "observability.health_checks.timeout",
		"EXERCISE_OBSERVABILITY_NEW_RELIC_DEBUG_LOGGING": "observability.new_relic.debug_logging",
		"EXERCISE_STANDALONE":                            "standalone",
	}

	for in, want := range cases {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestGetLogLevel(t *testing.T) {
	c := &ObservabilityConfig{Environment: "development"}
	assert.Equal(t, "debug", c.GetLogLevel())

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Logging.Level = "error"
	assert.Equal(t, "error", c.GetLogLevel())
}
