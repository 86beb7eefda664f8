package simulator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pokedex/internal/evolution/models"
	"pokedex/internal/scenario"
	dErrors "pokedex/pkg/domain-errors"
)

// Session is one client's scenario selection and edited world state.
type Session struct {
	ID    uuid.UUID
	Store *scenario.Store

	lastSeen time.Time
}

// Sessions keeps per-client scenario stores in memory. Idle sessions are
// dropped after the configured TTL.
type Sessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	catalog  []scenario.Scenario
	ttl      time.Duration
	now      func() time.Time
}

// NewSessions constructs a session registry over catalog.
func NewSessions(catalog []scenario.Scenario, ttl time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[uuid.UUID]*Session),
		catalog:  catalog,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a session with the first scenario active.
func (s *Sessions) Create() *Session {
	sess := &Session{
		ID:       uuid.New(),
		Store:    scenario.NewStore(s.catalog),
		lastSeen: s.now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given id and refreshes its idle timer.
func (s *Sessions) Get(id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "session id must be a UUID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[parsed]
	if !ok || s.expired(sess) {
		delete(s.sessions, parsed)
		return nil, dErrors.New(dErrors.CodeNotFound, "session not found")
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// UpdateState applies patch to the session's current state and installs the
// result as a new value.
func (s *Sessions) UpdateState(id string, patch StatePatch) (models.WorldState, error) {
	sess, err := s.Get(id)
	if err != nil {
		return models.WorldState{}, err
	}
	next := patch.Apply(sess.Store.Current())
	if err := ValidateState(next); err != nil {
		return models.WorldState{}, err
	}
	return sess.Store.Replace(next), nil
}

func (s *Sessions) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.lastSeen) > s.ttl
}

// Prune drops idle sessions and returns how many were removed.
func (s *Sessions) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// RunJanitor prunes idle sessions every interval until ctx is done.
func (s *Sessions) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}
