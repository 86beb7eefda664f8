package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pokedex/internal/evolution/models"
	"pokedex/internal/scenario"
	"pokedex/internal/simulator"
	"pokedex/internal/simulator/metrics"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/httputil"
	"pokedex/pkg/requestcontext"
)

// Service defines the simulation operations exposed over HTTP.
type Service interface {
	Scenarios() []scenario.Scenario
	ScenarioState(id string) (models.WorldState, string, bool)
	Simulate(ctx context.Context, chainID int, state models.WorldState, wait bool) (*simulator.Result, error)
	SimulateSpecies(ctx context.Context, species string, state models.WorldState, wait bool) (*simulator.Result, error)
}

// Sessions holds per-client scenario selections.
type Sessions interface {
	Create() *simulator.Session
	Get(id string) (*simulator.Session, error)
	UpdateState(id string, patch simulator.StatePatch) (models.WorldState, error)
}

// Suggester proposes species names for a query.
type Suggester interface {
	Suggest(ctx context.Context, query, game string, limit int) ([]string, error)
}

// Handler wires simulator endpoints to the simulator service.
type Handler struct {
	service   Service
	sessions  Sessions
	suggester Suggester
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// New constructs a simulator handler with its dependencies.
func New(service Service, sessions Sessions, suggester Suggester, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service:   service,
		sessions:  sessions,
		suggester: suggester,
		logger:    logger,
		metrics:   metrics,
	}
}

// Register mounts simulator endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/scenarios", h.HandleListScenarios)

	r.Post("/sessions", h.HandleCreateSession)
	r.Get("/sessions/{sessionID}", h.HandleGetSession)
	r.Put("/sessions/{sessionID}/scenario", h.HandleSelectScenario)
	r.Patch("/sessions/{sessionID}/state", h.HandlePatchState)
	r.Get("/sessions/{sessionID}/chains/{chainID}/simulation", h.HandleSessionSimulation)

	r.Post("/chains/{chainID}/simulate", h.HandleSimulate)
	r.Get("/pokemon/suggestions", h.HandleSuggestions)
	r.Get("/pokemon/{name}/evolution/simulation", h.HandleSpeciesSimulation)
}

// HandleListScenarios handles GET /scenarios.
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromScenarios(h.service.Scenarios()))
}

// HandleCreateSession handles POST /sessions.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.sessions.Create()
	h.metrics.IncrementSessionsCreated()

	h.logger.InfoContext(ctx, "session created",
		"request_id", requestcontext.RequestID(ctx),
		"session_id", sess.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, FromSession(sess, false))
}

// HandleGetSession handles GET /sessions/{sessionID}.
func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(sess, false))
}

// HandleSelectScenario handles PUT /sessions/{sessionID}/scenario. Unknown
// scenario ids fall back to the default preset instead of failing.
func (h *Handler) HandleSelectScenario(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	sess, err := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[SelectScenarioRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	_, fallback := sess.Store.ActivateOrDefault(req.ScenarioID)
	if fallback {
		h.logger.WarnContext(ctx, "unknown scenario, using default",
			"request_id", requestID,
			"session_id", sess.ID,
			"scenario_id", req.ScenarioID,
		)
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(sess, fallback))
}

// HandlePatchState handles PATCH /sessions/{sessionID}/state.
func (h *Handler) HandlePatchState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	sessionID := chi.URLParam(r, "sessionID")

	req, ok := httputil.DecodeAndPrepare[PatchStateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if _, err := h.sessions.UpdateState(sessionID, req.StatePatch); err != nil {
		httputil.WriteError(w, err)
		return
	}
	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromSession(sess, false))
}

// HandleSessionSimulation handles GET /sessions/{sessionID}/chains/{chainID}/simulation.
func (h *Handler) HandleSessionSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	chainID, err := parseChainID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	activeID, _ := sess.Store.ActiveID()
	h.simulate(w, r, activeID, func() (*simulator.Result, error) {
		return h.service.Simulate(ctx, chainID, sess.Store.Current(), waitRequested(r))
	})
}

// HandleSimulate handles POST /chains/{chainID}/simulate. The body carries an
// optional preset and field overrides; nothing is stored.
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	chainID, err := parseChainID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[SimulateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	state := models.DefaultWorldState()
	scenarioID := ""
	if req.Scenario != "" {
		var fallback bool
		state, scenarioID, fallback = h.service.ScenarioState(req.Scenario)
		if fallback {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "unknown scenario: "+req.Scenario))
			return
		}
	}
	state = req.State.Apply(state)
	if err := simulator.ValidateState(state); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.simulate(w, r, scenarioID, func() (*simulator.Result, error) {
		return h.service.Simulate(ctx, chainID, state, waitRequested(r))
	})
}

// HandleSpeciesSimulation handles GET /pokemon/{name}/evolution/simulation.
func (h *Handler) HandleSpeciesSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	requested := r.URL.Query().Get("scenario")

	state, scenarioID, fallback := h.service.ScenarioState(requested)
	// No scenario asked for is not a fallback.
	fallback = fallback && requested != ""

	h.simulate(w, r, scenarioID, func() (*simulator.Result, error) {
		return h.service.SimulateSpecies(ctx, name, state, waitRequested(r))
	}, withFallback(fallback))
}

// HandleSuggestions handles GET /pokemon/suggestions.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSuggestions {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 20"))
			return
		}
		limit = n
	}

	names, err := h.suggester.Suggest(ctx, q.Get("q"), q.Get("game"), limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "suggestions failed",
			"request_id", requestcontext.RequestID(ctx),
			"query", q.Get("q"),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &SuggestionsResponse{
		Query:       q.Get("q"),
		Game:        q.Get("game"),
		Suggestions: names,
	})
}

type simulateOption func(*SimulationResponse)

func withFallback(fallback bool) simulateOption {
	return func(resp *SimulationResponse) {
		resp.Fallback = fallback
	}
}

func (h *Handler) simulate(w http.ResponseWriter, r *http.Request, scenarioID string, run func() (*simulator.Result, error), opts ...simulateOption) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	result, err := run()
	if err != nil {
		h.logger.ErrorContext(ctx, "simulation failed",
			"request_id", requestID,
			"scenario_id", scenarioID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "simulation completed",
		"request_id", requestID,
		"chain_id", result.ChainID,
		"status", result.Status,
		"transitions", len(result.Results),
		"truncated", result.Truncated,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	resp := FromResult(result, scenarioID)
	for _, opt := range opts {
		opt(resp)
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func parseChainID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "chainID"))
	if err != nil || id < 1 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "chain id must be a positive integer")
	}
	return id, nil
}

func waitRequested(r *http.Request) bool {
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	return wait
}
