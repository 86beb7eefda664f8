package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokedex/internal/cache"
	cachemetrics "pokedex/internal/cache/metrics"
	"pokedex/internal/chainsource"
	"pokedex/internal/platform/config"
	"pokedex/internal/platform/httpserver"
	"pokedex/internal/platform/logger"
	"pokedex/internal/platform/metrics"
	"pokedex/internal/platform/redis"
	"pokedex/internal/pokeapi"
	"pokedex/internal/pokemon"
	"pokedex/internal/scenario"
	"pokedex/internal/simulator"
	simmetrics "pokedex/internal/simulator/metrics"
	"pokedex/internal/suggest"
	"pokedex/pkg/platform/circuit"
)

const sessionSweepInterval = time.Minute

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	var store cache.Store
	if redisClient != nil {
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient.Client)
		log.Info("response cache backed by redis")
	} else {
		mem := cache.NewMemoryStore()
		go mem.RunJanitor(ctx, cfg.Cache.SweepInterval)
		store = mem
		log.Info("response cache in memory")
	}

	query := cache.NewQuery(store,
		cache.WithMetrics(cachemetrics.New()),
		cache.WithLogger(log),
	)
	api := pokeapi.New(cfg.PokeAPI.BaseURL,
		pokeapi.WithHTTPClient(&http.Client{Timeout: cfg.PokeAPI.Timeout}),
		pokeapi.WithCache(query),
		pokeapi.WithRetries(cfg.PokeAPI.MaxRetries),
		pokeapi.WithBreaker(circuit.New("pokeapi",
			circuit.WithFailureThreshold(cfg.PokeAPI.BreakerFailures),
			circuit.WithCooldown(cfg.PokeAPI.BreakerCooldown),
		)),
	)
	source := chainsource.New(api, query, log)
	defer source.Wait()

	catalog := scenario.Builtin()
	sessions := simulator.NewSessions(catalog, cfg.SessionTTL)
	go sessions.RunJanitor(ctx, sessionSweepInterval)

	simMetrics := simmetrics.New()
	router := newRouter(routerDeps{
		cfg:        cfg,
		logger:     log,
		service:    simulator.New(source, catalog, log, simMetrics),
		simMetrics: simMetrics,
		sessions:   sessions,
		suggester:  suggest.New(api),
		pokemon:    pokemon.New(api, log),
		cache:      query,
		chains:     source,
		redis:      redisClient,
		metrics:    metrics.New(),
	})
	srv := httpserver.New(cfg.Addr, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting pokedex", "addr", cfg.Addr, "pokeapi", cfg.PokeAPI.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
