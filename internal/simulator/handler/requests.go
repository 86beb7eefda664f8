package handler

import (
	"strings"

	"pokedex/internal/simulator"
	dErrors "pokedex/pkg/domain-errors"
)

const (
	maxScenarioIDLen = 64
	maxSuggestions   = 20
)

// SelectScenarioRequest is the HTTP request body for PUT /sessions/{sessionID}/scenario.
type SelectScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SelectScenarioRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.ScenarioID) > maxScenarioIDLen {
		return dErrors.New(dErrors.CodeValidation, "scenario_id must be at most 64 characters")
	}
	r.ScenarioID = strings.TrimSpace(r.ScenarioID)
	if r.ScenarioID == "" {
		return dErrors.New(dErrors.CodeValidation, "scenario_id is required")
	}
	return nil
}

// PatchStateRequest is the HTTP request body for PATCH /sessions/{sessionID}/state.
// Fields left out of the body keep their current value.
type PatchStateRequest struct {
	simulator.StatePatch
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
// Range checks run against the patched state in the session registry.
func (r *PatchStateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	trimAll(
		r.Location, r.HeldItem, r.UsedItem,
		r.KnownMove, r.PartySpecies, r.TradePartner,
	)
	return nil
}

// SimulateRequest is the HTTP request body for POST /chains/{chainID}/simulate.
// State overrides apply on top of the named scenario, or the default world
// state when no scenario is given.
type SimulateRequest struct {
	Scenario string               `json:"scenario,omitempty"`
	State    simulator.StatePatch `json:"state"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SimulateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Scenario) > maxScenarioIDLen {
		return dErrors.New(dErrors.CodeValidation, "scenario must be at most 64 characters")
	}
	r.Scenario = strings.TrimSpace(r.Scenario)
	trimAll(
		r.State.Location, r.State.HeldItem, r.State.UsedItem,
		r.State.KnownMove, r.State.PartySpecies, r.State.TradePartner,
	)
	return nil
}

func trimAll(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}
