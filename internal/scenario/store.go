// Package scenario holds the preset world states and the state a client is
// currently simulating against.
package scenario

import (
	"errors"
	"fmt"
	"sync"

	"pokedex/internal/evolution/models"
)

// ErrUnknownScenario is returned when a preset id is not in the catalogue.
var ErrUnknownScenario = errors.New("unknown scenario")

// Store holds a catalogue of presets and the active world state. Activating a
// preset replaces the active state wholesale; nothing carries over from the
// previous selection.
type Store struct {
	mu       sync.RWMutex
	catalog  []Scenario
	activeID string
	state    models.WorldState
	edited   bool
}

// NewStore builds a store over catalog with the first scenario active.
// An empty catalog leaves the default world state active.
func NewStore(catalog []Scenario) *Store {
	s := &Store{
		catalog: append([]Scenario(nil), catalog...),
		state:   models.DefaultWorldState(),
	}
	if len(s.catalog) > 0 {
		s.activeID = s.catalog[0].ID
		s.state = s.catalog[0].State
	}
	return s
}

// List returns the catalogue in authoring order.
func (s *Store) List() []Scenario {
	return append([]Scenario(nil), s.catalog...)
}

// Lookup finds a scenario by id without changing the active state.
func (s *Store) Lookup(id string) (Scenario, error) {
	for _, sc := range s.catalog {
		if sc.ID == id {
			return sc, nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %q: %w", id, ErrUnknownScenario)
}

// Activate makes the scenario with the given id active and returns its state.
func (s *Store) Activate(id string) (models.WorldState, error) {
	sc, err := s.Lookup(id)
	if err != nil {
		return models.WorldState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = sc.ID
	s.state = sc.State
	s.edited = false
	return s.state, nil
}

// ActivateOrDefault activates id, falling back to the first scenario when id
// is unknown. The boolean reports whether the fallback was taken.
func (s *Store) ActivateOrDefault(id string) (models.WorldState, bool) {
	state, err := s.Activate(id)
	if err == nil {
		return state, false
	}
	if len(s.catalog) == 0 {
		return s.Current(), true
	}
	state, _ = s.Activate(s.catalog[0].ID)
	return state, true
}

// Current returns a copy of the active world state.
func (s *Store) Current() models.WorldState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ActiveID returns the id of the active scenario and whether the state has
// been edited since it was activated.
func (s *Store) ActiveID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID, s.edited
}

// Replace installs an edited world state while keeping the active scenario id.
func (s *Store) Replace(state models.WorldState) models.WorldState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.edited = true
	return s.state
}
