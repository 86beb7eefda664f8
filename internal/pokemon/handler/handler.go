package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pokedex/internal/pokemon"
	"pokedex/pkg/platform/httputil"
	"pokedex/pkg/requestcontext"
)

// Service defines the lookup operations exposed over HTTP.
type Service interface {
	Card(ctx context.Context, name string) (*pokemon.Card, error)
	Encounters(ctx context.Context, name, game string) ([]pokemon.Location, error)
	TMMoves(ctx context.Context, name, game string) ([]pokemon.Move, error)
	Move(ctx context.Context, name string) (*pokemon.Move, error)
}

// Handler wires pokémon lookup endpoints to the service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a lookup handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts lookup endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pokemon/{name}", h.HandleCard)
	r.Get("/pokemon/{name}/encounters", h.HandleEncounters)
	r.Get("/pokemon/{name}/moves", h.HandleTMMoves)
	r.Get("/moves/{name}", h.HandleMove)
}

// HandleCard handles GET /pokemon/{name}.
func (h *Handler) HandleCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	card, err := h.service.Card(ctx, chi.URLParam(r, "name"))
	if err != nil {
		h.fail(ctx, w, "pokemon lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromCard(card))
}

// HandleEncounters handles GET /pokemon/{name}/encounters?game=.
func (h *Handler) HandleEncounters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	game, _, err := pokemon.ResolveGame(r.URL.Query().Get("game"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	locations, err := h.service.Encounters(ctx, name, game)
	if err != nil {
		h.fail(ctx, w, "encounter lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromLocations(name, game, locations))
}

// HandleTMMoves handles GET /pokemon/{name}/moves?game=.
func (h *Handler) HandleTMMoves(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	game, _, err := pokemon.ResolveGame(r.URL.Query().Get("game"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	moves, err := h.service.TMMoves(ctx, name, game)
	if err != nil {
		h.fail(ctx, w, "tm move lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMoves(name, game, moves))
}

// HandleMove handles GET /moves/{name}.
func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	move, err := h.service.Move(ctx, chi.URLParam(r, "name"))
	if err != nil {
		h.fail(ctx, w, "move lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromMove(*move))
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
