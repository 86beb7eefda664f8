// Package simulator answers "which evolutions are reachable right now" for a
// chain fetched from the upstream API and a caller-supplied world state.
package simulator

import (
	"context"
	"log/slog"
	"time"

	"pokedex/internal/chainsource"
	"pokedex/internal/evolution"
	"pokedex/internal/evolution/models"
	"pokedex/internal/scenario"
	"pokedex/internal/simulator/metrics"
)

// ChainSource supplies evolution chains.
type ChainSource interface {
	Chain(ctx context.Context, id int) chainsource.State
	Load(ctx context.Context, id int) (*models.ChainNode, error)
	ChainIDForSpecies(ctx context.Context, species string) (int, error)
}

// Result is one simulation of a chain against a world state. Results is empty,
// never nil, while the chain is pending.
type Result struct {
	ChainID   int
	Status    chainsource.Status
	Results   []models.EvaluationResult
	Truncated bool
}

// Service runs simulations.
type Service struct {
	source  ChainSource
	catalog []scenario.Scenario
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a simulator service.
func New(source ChainSource, catalog []scenario.Scenario, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		source:  source,
		catalog: catalog,
		logger:  logger,
		metrics: m,
	}
}

// Scenarios returns the preset catalogue.
func (s *Service) Scenarios() []scenario.Scenario {
	return append([]scenario.Scenario(nil), s.catalog...)
}

// ScenarioState returns the world state of the named preset. An unknown id
// falls back to the first preset and reports fallback.
func (s *Service) ScenarioState(id string) (state models.WorldState, resolvedID string, fallback bool) {
	for _, sc := range s.catalog {
		if sc.ID == id {
			return sc.State, sc.ID, false
		}
	}
	if len(s.catalog) == 0 {
		return models.DefaultWorldState(), "", true
	}
	return s.catalog[0].State, s.catalog[0].ID, true
}

// Simulate evaluates chain chainID against state. With wait unset, a chain
// that is not yet resident yields a pending result instead of blocking; a
// chain whose load failed yields the load error.
func (s *Service) Simulate(ctx context.Context, chainID int, state models.WorldState, wait bool) (*Result, error) {
	var root *models.ChainNode
	if wait {
		loaded, err := s.source.Load(ctx, chainID)
		if err != nil {
			s.metrics.IncrementSimulation(string(chainsource.StatusFailed))
			return nil, err
		}
		root = loaded
	} else {
		cs := s.source.Chain(ctx, chainID)
		switch cs.Status {
		case chainsource.StatusPending:
			s.metrics.IncrementSimulation(string(chainsource.StatusPending))
			return &Result{
				ChainID: chainID,
				Status:  chainsource.StatusPending,
				Results: []models.EvaluationResult{},
			}, nil
		case chainsource.StatusFailed:
			s.metrics.IncrementSimulation(string(chainsource.StatusFailed))
			return nil, cs.Err
		}
		root = cs.Root
	}

	s.metrics.IncrementSimulation(string(chainsource.StatusReady))
	res := s.Evaluate(ctx, root, state)
	res.ChainID = chainID
	return res, nil
}

// SimulateSpecies resolves the species' chain and simulates it.
func (s *Service) SimulateSpecies(ctx context.Context, species string, state models.WorldState, wait bool) (*Result, error) {
	chainID, err := s.source.ChainIDForSpecies(ctx, species)
	if err != nil {
		return nil, err
	}
	return s.Simulate(ctx, chainID, state, wait)
}

// Evaluate runs the pure simulation over an already resident tree.
func (s *Service) Evaluate(ctx context.Context, root *models.ChainNode, state models.WorldState) *Result {
	start := time.Now()
	sim := evolution.Simulate(root, state)
	s.metrics.ObserveSimulateLatency(time.Since(start))

	reachable := 0
	for _, r := range sim.Results {
		if r.Reachable {
			reachable++
		}
	}
	s.metrics.ObserveTransitions(reachable, len(sim.Results)-reachable)
	s.metrics.ObserveMissing(sim.Failures)

	if sim.Truncated {
		s.logger.WarnContext(ctx, "evolution chain deeper than traversal limit",
			"max_depth", evolution.MaxDepth,
		)
	}

	return &Result{
		Status:    chainsource.StatusReady,
		Results:   sim.Results,
		Truncated: sim.Truncated,
	}
}
