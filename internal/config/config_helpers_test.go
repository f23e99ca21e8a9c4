package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset uses default", nil, 42},
		{"valid integer", strPtr("100"), 100},
		{"negative", strPtr("-10"), -10},
		{"zero", strPtr("0"), 0},
		{"not a number", strPtr("not-a-number"), 42},
		{"float", strPtr("42.5"), 42},
		{"empty", strPtr(""), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset uses default", nil, 5 * time.Minute},
		{"minutes", strPtr("10m"), 10 * time.Minute},
		{"compound", strPtr("1h30m45s"), time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", strPtr("500ms"), 500 * time.Millisecond},
		{"invalid", strPtr("not-a-duration"), 5 * time.Minute},
		{"number without unit", strPtr("100"), 5 * time.Minute},
		{"empty", strPtr(""), 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, "TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func strPtr(s string) *string { return &s }

func setOrUnset(t *testing.T, key string, value *string) {
	t.Helper()
	if value == nil {
		t.Setenv(key, "")
		os.Unsetenv(key)
		return
	}
	t.Setenv(key, *value)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_VAR", "0")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_BOOL_VAR", "maybe")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true), "Should return default for unparsable value")
}

// TestLoad_DatabasePoolConfig tests that database pool configuration is loaded correctly
func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
	})
}
