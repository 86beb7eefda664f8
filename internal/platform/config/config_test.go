package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, uint64(2), cfg.PokeAPI.MaxRetries)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("POKEDEX_ADDR", ":9090")
	t.Setenv("POKEAPI_BASE_URL", "http://localhost:8000/api/v2")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("POKEDEX_SESSION_TTL", "30m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://localhost:8000/api/v2", cfg.PokeAPI.BaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("POKEAPI_TIMEOUT", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}
