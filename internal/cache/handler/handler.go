package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pokedex/internal/cache"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/httputil"
	"pokedex/pkg/requestcontext"
)

// Cache is the subset of the response cache exposed for inspection.
type Cache interface {
	Stats(ctx context.Context) (cache.Stats, error)
	Invalidate(ctx context.Context, family, key string) error
}

// Chains drops decoded chains held outside the response cache.
type Chains interface {
	Forget(id int)
}

// Handler serves cache inspection endpoints.
type Handler struct {
	cache  Cache
	chains Chains
	logger *slog.Logger
}

// New constructs a cache handler. chains may be nil.
func New(c Cache, chains Chains, logger *slog.Logger) *Handler {
	return &Handler{cache: c, chains: chains, logger: logger}
}

// Register mounts cache endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cache/stats", h.HandleStats)
	r.Delete("/cache/evolution-chains/{chainID}", h.HandleInvalidateChain)
}

// HandleStats handles GET /cache/stats.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.cache.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "cache stats failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "cache stats unavailable"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, stats)
}

// HandleInvalidateChain handles DELETE /cache/evolution-chains/{chainID} so
// the next simulation refetches the chain.
func (h *Handler) HandleInvalidateChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "chainID"))
	if err != nil || id < 1 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "chain id must be a positive integer"))
		return
	}

	if err := h.cache.Invalidate(ctx, "evolution-chain", "/evolution-chain/"+strconv.Itoa(id)); err != nil {
		h.logger.ErrorContext(ctx, "cache invalidation failed",
			"request_id", requestcontext.RequestID(ctx),
			"chain_id", id,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "cache invalidation failed"))
		return
	}
	if h.chains != nil {
		h.chains.Forget(id)
	}

	h.logger.InfoContext(ctx, "evolution chain evicted",
		"request_id", requestcontext.RequestID(ctx),
		"chain_id", id,
	)
	w.WriteHeader(http.StatusNoContent)
}
