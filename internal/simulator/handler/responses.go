package handler

import (
	"pokedex/internal/evolution/models"
	"pokedex/internal/scenario"
	"pokedex/internal/simulator"
)

// ScenarioResponse describes one preset.
type ScenarioResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	State       models.WorldState `json:"state"`
}

// ScenariosResponse is the HTTP response for GET /scenarios.
type ScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

// FromScenarios converts the preset catalogue to an HTTP response.
func FromScenarios(list []scenario.Scenario) *ScenariosResponse {
	resp := &ScenariosResponse{Scenarios: make([]ScenarioResponse, 0, len(list))}
	for _, sc := range list {
		resp.Scenarios = append(resp.Scenarios, ScenarioResponse{
			ID:          sc.ID,
			Name:        sc.DisplayName,
			Description: sc.Description,
			Icon:        sc.Icon,
			State:       sc.State,
		})
	}
	return resp
}

// SessionResponse describes a session's selection and current state.
type SessionResponse struct {
	SessionID  string            `json:"session_id"`
	ScenarioID string            `json:"scenario_id"`
	Edited     bool              `json:"edited"`
	Fallback   bool              `json:"fallback,omitempty"`
	State      models.WorldState `json:"state"`
}

// FromSession converts a session to an HTTP response.
func FromSession(sess *simulator.Session, fallback bool) *SessionResponse {
	id, edited := sess.Store.ActiveID()
	return &SessionResponse{
		SessionID:  sess.ID.String(),
		ScenarioID: id,
		Edited:     edited,
		Fallback:   fallback,
		State:      sess.Store.Current(),
	}
}

// SimulationResponse is the HTTP response for every simulation endpoint.
// Results is empty while Status is "pending".
type SimulationResponse struct {
	ChainID    int                       `json:"chain_id"`
	Status     string                    `json:"status"`
	ScenarioID string                    `json:"scenario_id,omitempty"`
	Fallback   bool                      `json:"fallback,omitempty"`
	Truncated  bool                      `json:"truncated"`
	Results    []models.EvaluationResult `json:"results"`
}

// FromResult converts a simulation result to an HTTP response.
func FromResult(result *simulator.Result, scenarioID string) *SimulationResponse {
	results := result.Results
	if results == nil {
		results = []models.EvaluationResult{}
	}
	return &SimulationResponse{
		ChainID:    result.ChainID,
		Status:     string(result.Status),
		ScenarioID: scenarioID,
		Truncated:  result.Truncated,
		Results:    results,
	}
}

// SuggestionsResponse is the HTTP response for GET /pokemon/suggestions.
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Game        string   `json:"game,omitempty"`
	Suggestions []string `json:"suggestions"`
}
