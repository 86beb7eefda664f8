// Package chainsource supplies evolution-chain trees to the simulator. Chains
// are loaded through the response cache; a chain that has not arrived yet is
// reported as pending rather than blocking the caller.
package chainsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"pokedex/internal/cache"
	"pokedex/internal/evolution"
	"pokedex/internal/evolution/models"
	"pokedex/internal/pokeapi"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/sentinel"
)

// Status describes the availability of a chain.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// State is the result of a non-blocking chain lookup. Root is set only when
// Status is ready; Err only when it is failed.
type State struct {
	Status Status
	Root   *models.ChainNode
	Err    error
}

// API is the upstream surface the source reads from.
type API interface {
	EvolutionChain(ctx context.Context, id int) (*pokeapi.EvolutionChain, error)
	Species(ctx context.Context, nameOrID string) (*pokeapi.Species, error)
	Pokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error)
}

// Peeker reads cached entries without triggering a load.
type Peeker interface {
	PeekEntry(ctx context.Context, family, key string) (cache.Entry, bool)
}

// DefaultRetention matches the evolution-chain GC time of the response cache.
const DefaultRetention = 2 * time.Hour

// memo is a normalized tree the Source holds on to. storedAt is the cache
// entry it was decoded from and is zero for trees loaded directly.
type memo struct {
	root     *models.ChainNode
	storedAt time.Time
	expires  time.Time
}

// Source resolves chains by id or by species name.
type Source struct {
	api         API
	peeker      Peeker
	logger      *slog.Logger
	loadTimeout time.Duration
	retention   time.Duration
	now         func() time.Time

	mu       sync.Mutex
	inflight map[int]struct{}
	failures map[int]error
	trees    map[int]memo
	wg       sync.WaitGroup
}

// Option configures a Source.
type Option func(*Source)

// WithRetention sets how long a loaded tree is kept for lookups the cache
// cannot answer.
func WithRetention(d time.Duration) Option {
	return func(s *Source) { s.retention = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// New constructs a Source. peeker may be nil; loaded trees are then served
// from the Source's own memory only.
func New(api API, peeker Peeker, logger *slog.Logger, opts ...Option) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Source{
		api:         api,
		peeker:      peeker,
		logger:      logger,
		loadTimeout: 15 * time.Second,
		retention:   DefaultRetention,
		now:         time.Now,
		inflight:    make(map[int]struct{}),
		failures:    make(map[int]error),
		trees:       make(map[int]memo),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func chainPath(id int) string {
	return "/evolution-chain/" + strconv.Itoa(id)
}

// Chain reports the chain's current availability without blocking. The
// response cache is consulted first, then trees this Source loaded itself,
// so a cache that cannot store still lets chains become ready. When neither
// has the chain and it has not failed, a background load is started and the
// result is pending.
func (s *Source) Chain(ctx context.Context, id int) State {
	if s.peeker != nil {
		if entry, ok := s.peeker.PeekEntry(ctx, pokeapi.FamilyEvolutionChain, chainPath(id)); ok {
			if root, ok := s.decode(id, entry); ok {
				return State{Status: StatusReady, Root: root}
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.trees[id]; ok {
		if s.now().Before(m.expires) {
			return State{Status: StatusReady, Root: m.root}
		}
		delete(s.trees, id)
	}
	if err, failed := s.failures[id]; failed {
		// clear so the next lookup retries; the caller owns retry policy
		delete(s.failures, id)
		return State{Status: StatusFailed, Err: err}
	}
	if _, busy := s.inflight[id]; !busy {
		s.inflight[id] = struct{}{}
		s.wg.Add(1)
		go s.background(id)
	}
	return State{Status: StatusPending}
}

// decode normalizes a cached body, reusing the previous tree while the
// entry is unchanged.
func (s *Source) decode(id int, entry cache.Entry) (*models.ChainNode, bool) {
	s.mu.Lock()
	m, ok := s.trees[id]
	s.mu.Unlock()
	if ok && !m.storedAt.IsZero() && m.storedAt.Equal(entry.StoredAt) {
		return m.root, true
	}

	var raw pokeapi.EvolutionChain
	if err := json.Unmarshal(entry.Value, &raw); err != nil {
		return nil, false
	}
	root := pokeapi.NormalizeChain(raw)
	s.remember(id, &root, entry.StoredAt)
	return &root, true
}

func (s *Source) remember(id int, root *models.ChainNode, storedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trees[id] = memo{root: root, storedAt: storedAt, expires: s.now().Add(s.retention)}
}

// Forget drops any tree held for id so the next lookup reloads it.
func (s *Source) Forget(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trees, id)
	delete(s.failures, id)
}

func (s *Source) background(id int) {
	defer s.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), s.loadTimeout)
	defer cancel()

	root, err := s.Load(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
	if err != nil {
		s.failures[id] = err
		s.logger.WarnContext(ctx, "evolution chain load failed",
			"chain_id", id,
			"error", err,
		)
		return
	}
	s.trees[id] = memo{root: root, expires: s.now().Add(s.retention)}
	s.logger.DebugContext(ctx, "evolution chain loaded",
		"chain_id", id,
		"transitions", evolution.CountTransitions(root),
	)
}

// Wait blocks until every background load has finished.
func (s *Source) Wait() {
	s.wg.Wait()
}

// Load fetches and normalizes a chain, blocking until it is available.
func (s *Source) Load(ctx context.Context, id int) (*models.ChainNode, error) {
	raw, err := s.api.EvolutionChain(ctx, id)
	if err != nil {
		return nil, pokeapi.DomainError(err, fmt.Sprintf("evolution chain %d", id))
	}
	root := pokeapi.NormalizeChain(*raw)
	return &root, nil
}

// ChainIDForSpecies resolves a species name to its evolution chain id. Form
// names such as "deoxys-normal" are not species; they resolve through the
// pokémon record.
func (s *Source) ChainIDForSpecies(ctx context.Context, species string) (int, error) {
	sp, err := s.api.Species(ctx, species)
	if errors.Is(err, sentinel.ErrNotFound) {
		sp, err = s.speciesOfPokemon(ctx, species)
	}
	if err != nil {
		return 0, pokeapi.DomainError(err, fmt.Sprintf("species %q", species))
	}
	id, ok := pokeapi.IDFromURL(sp.EvolutionChain.URL)
	if !ok {
		return 0, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("species %q has no evolution chain", species))
	}
	return id, nil
}

func (s *Source) speciesOfPokemon(ctx context.Context, name string) (*pokeapi.Species, error) {
	p, err := s.api.Pokemon(ctx, name)
	if err != nil {
		return nil, err
	}
	if p.Species.Name == "" {
		return nil, sentinel.ErrNotFound
	}
	return s.api.Species(ctx, p.Species.Name)
}
