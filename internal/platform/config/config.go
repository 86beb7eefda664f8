package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures the service configuration, read from the environment so main
// stays lean.
type Server struct {
	Addr            string        `env:"POKEDEX_ADDR" envDefault:":8080"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout  time.Duration `env:"POKEDEX_REQUEST_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"POKEDEX_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SessionTTL      time.Duration `env:"POKEDEX_SESSION_TTL" envDefault:"24h"`

	PokeAPI PokeAPIConfig
	Cache   CacheConfig
	Redis   RedisConfig
}

// PokeAPIConfig configures the upstream client.
type PokeAPIConfig struct {
	BaseURL    string        `env:"POKEAPI_BASE_URL" envDefault:"https://pokeapi.co/api/v2"`
	Timeout    time.Duration `env:"POKEAPI_TIMEOUT" envDefault:"10s"`
	MaxRetries uint64        `env:"POKEAPI_MAX_RETRIES" envDefault:"2"`

	BreakerFailures int           `env:"POKEAPI_BREAKER_FAILURES" envDefault:"5"`
	BreakerCooldown time.Duration `env:"POKEAPI_BREAKER_COOLDOWN" envDefault:"10s"`
}

// CacheConfig configures the in-memory response cache.
type CacheConfig struct {
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"5m"`
}

// RedisConfig configures the optional Redis-backed cache. An empty URL keeps
// the cache in memory.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
