package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	cachehandler "pokedex/internal/cache/handler"
	"pokedex/internal/platform/config"
	"pokedex/internal/platform/metrics"
	"pokedex/internal/platform/middleware"
	"pokedex/internal/platform/redis"
	pokemonhandler "pokedex/internal/pokemon/handler"
	simhandler "pokedex/internal/simulator/handler"
	simmetrics "pokedex/internal/simulator/metrics"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/httputil"
)

type routerDeps struct {
	cfg        config.Server
	logger     *slog.Logger
	service    simhandler.Service
	simMetrics *simmetrics.Metrics
	sessions   simhandler.Sessions
	suggester  simhandler.Suggester
	pokemon    pokemonhandler.Service
	cache      cachehandler.Cache
	chains     cachehandler.Chains
	redis      *redis.Client
	metrics    *metrics.Metrics
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestContext)
	r.Use(middleware.RequestLogger(d.logger))
	r.Use(d.metrics.Middleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(d.cfg.RequestTimeout))

	simhandler.New(d.service, d.sessions, d.suggester, d.logger, d.simMetrics).Register(r)
	pokemonhandler.New(d.pokemon, d.logger).Register(r)
	cachehandler.New(d.cache, d.chains, d.logger).Register(r)

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if d.redis != nil {
			if err := d.redis.Health(r.Context()); err != nil {
				httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "redis unavailable"))
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no such route"))
	})
	return r
}
