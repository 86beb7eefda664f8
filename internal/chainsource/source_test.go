package chainsource

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/cache"
	"pokedex/internal/pokeapi"
	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/sentinel"
)

type fakeAPI struct {
	mu      sync.Mutex
	chains  map[int]*pokeapi.EvolutionChain
	species map[string]*pokeapi.Species
	pokemon map[string]*pokeapi.Pokemon
	err     error
	calls   int
	block   chan struct{}
}

func (f *fakeAPI) EvolutionChain(_ context.Context, id int) (*pokeapi.EvolutionChain, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.chains[id]
	if !ok {
		return nil, &pokeapi.APIError{Status: 404, Path: chainPath(id)}
	}
	return c, nil
}

func (f *fakeAPI) Species(_ context.Context, name string) (*pokeapi.Species, error) {
	sp, ok := f.species[name]
	if !ok {
		return nil, &pokeapi.APIError{Status: 404, Path: "/pokemon-species/" + name}
	}
	return sp, nil
}

func (f *fakeAPI) Pokemon(_ context.Context, name string) (*pokeapi.Pokemon, error) {
	p, ok := f.pokemon[name]
	if !ok {
		return nil, &pokeapi.APIError{Status: 404, Path: "/pokemon/" + name}
	}
	return p, nil
}

type mapPeeker map[string]cache.Entry

func (m mapPeeker) PeekEntry(_ context.Context, family, key string) (cache.Entry, bool) {
	e, ok := m[family+":"+key]
	return e, ok
}

// brokenStore fails every operation, as an unreachable Redis does.
type brokenStore struct{}

var errStoreDown = errors.New("redis: connection refused")

func (brokenStore) Get(context.Context, string) (cache.Entry, bool, error) {
	return cache.Entry{}, false, errStoreDown
}

func (brokenStore) Set(context.Context, string, cache.Entry, time.Duration) error {
	return errStoreDown
}

func (brokenStore) Delete(context.Context, string) error { return errStoreDown }

func (brokenStore) Len(context.Context) (int, error) { return 0, errStoreDown }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func pichuChain() *pokeapi.EvolutionChain {
	return &pokeapi.EvolutionChain{
		ID: 10,
		Chain: pokeapi.ChainLink{
			Species: pokeapi.NamedResource{Name: "pichu"},
			EvolvesTo: []pokeapi.ChainLink{{
				Species: pokeapi.NamedResource{Name: "pikachu"},
				EvolutionDetails: []pokeapi.EvolutionDetail{{
					Trigger:      &pokeapi.NamedResource{Name: "level-up"},
					MinHappiness: func() *int { v := 220; return &v }(),
				}},
			}},
		},
	}
}

func TestChain_ReadyFromCache(t *testing.T) {
	body, err := json.Marshal(pichuChain())
	require.NoError(t, err)
	api := &fakeAPI{}
	src := New(api, mapPeeker{"evolution-chain:/evolution-chain/10": {Value: body, StoredAt: time.Unix(100, 0)}}, nil)

	state := src.Chain(context.Background(), 10)

	assert.Equal(t, StatusReady, state.Status)
	require.NotNil(t, state.Root)
	assert.Equal(t, "pichu", state.Root.SpeciesName)
	assert.Equal(t, 0, api.calls, "cached chain must not hit the API")
}

func TestChain_PendingThenReady(t *testing.T) {
	api := &fakeAPI{chains: map[int]*pokeapi.EvolutionChain{10: pichuChain()}, block: make(chan struct{})}
	src := New(api, nil, nil)

	first := src.Chain(context.Background(), 10)
	second := src.Chain(context.Background(), 10)
	assert.Equal(t, StatusPending, first.Status)
	assert.Equal(t, StatusPending, second.Status)
	assert.Nil(t, first.Root)

	close(api.block)
	src.Wait()

	ready := src.Chain(context.Background(), 10)
	assert.Equal(t, StatusReady, ready.Status)
	assert.Equal(t, "pikachu", ready.Root.Children[0].Target.SpeciesName)
	assert.Equal(t, 1, api.calls, "concurrent lookups share one load")
}

func TestChain_ReusesDecodedTreeUntilEntryChanges(t *testing.T) {
	body, err := json.Marshal(pichuChain())
	require.NoError(t, err)
	peeker := mapPeeker{"evolution-chain:/evolution-chain/10": {Value: body, StoredAt: time.Unix(100, 0)}}
	src := New(&fakeAPI{}, peeker, nil)

	first := src.Chain(context.Background(), 10)
	second := src.Chain(context.Background(), 10)
	require.Equal(t, StatusReady, second.Status)
	assert.Same(t, first.Root, second.Root)

	refreshed := pichuChain()
	refreshed.Chain.Species.Name = "pichu-refreshed"
	body, err = json.Marshal(refreshed)
	require.NoError(t, err)
	peeker["evolution-chain:/evolution-chain/10"] = cache.Entry{Value: body, StoredAt: time.Unix(200, 0)}

	third := src.Chain(context.Background(), 10)
	require.Equal(t, StatusReady, third.Status)
	assert.NotSame(t, first.Root, third.Root)
	assert.Equal(t, "pichu-refreshed", third.Root.SpeciesName)
}

func TestChain_ReadyWhenCacheStoreIsDown(t *testing.T) {
	body, err := json.Marshal(pichuChain())
	require.NoError(t, err)
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer upstream.Close()

	query := cache.NewQuery(brokenStore{})
	api := pokeapi.New(upstream.URL, pokeapi.WithCache(query), pokeapi.WithRetries(0))
	src := New(api, query, nil)

	assert.Equal(t, StatusPending, src.Chain(context.Background(), 10).Status)
	src.Wait()

	for range 5 {
		state := src.Chain(context.Background(), 10)
		require.Equal(t, StatusReady, state.Status)
		assert.Equal(t, "pichu", state.Root.SpeciesName)
	}
	src.Wait()
	assert.Equal(t, int32(1), hits.Load(), "a ready chain is not reloaded")
}

func TestChain_RetentionExpires(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	api := &fakeAPI{chains: map[int]*pokeapi.EvolutionChain{10: pichuChain()}}
	src := New(api, nil, nil, WithRetention(time.Hour), WithClock(c.Now))

	src.Chain(context.Background(), 10)
	src.Wait()
	assert.Equal(t, StatusReady, src.Chain(context.Background(), 10).Status)

	c.Advance(time.Hour)
	assert.Equal(t, StatusPending, src.Chain(context.Background(), 10).Status)
	src.Wait()
	assert.Equal(t, StatusReady, src.Chain(context.Background(), 10).Status)
	assert.Equal(t, 2, api.calls)
}

func TestForget(t *testing.T) {
	api := &fakeAPI{chains: map[int]*pokeapi.EvolutionChain{10: pichuChain()}}
	src := New(api, nil, nil)

	src.Chain(context.Background(), 10)
	src.Wait()
	require.Equal(t, StatusReady, src.Chain(context.Background(), 10).Status)

	src.Forget(10)

	assert.Equal(t, StatusPending, src.Chain(context.Background(), 10).Status)
	src.Wait()
	assert.Equal(t, 2, api.calls)
}

func TestChain_FailedIsReportedOnce(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection reset")}
	src := New(api, nil, nil)

	assert.Equal(t, StatusPending, src.Chain(context.Background(), 3).Status)
	src.Wait()

	failed := src.Chain(context.Background(), 3)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.True(t, dErrors.HasCode(failed.Err, dErrors.CodeUnavailable))

	// the next lookup starts a fresh attempt
	assert.Equal(t, StatusPending, src.Chain(context.Background(), 3).Status)
	src.Wait()
}

func TestLoad_NotFound(t *testing.T) {
	src := New(&fakeAPI{}, nil, nil)

	_, err := src.Load(context.Background(), 99999)

	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestChainIDForSpecies(t *testing.T) {
	sp := &pokeapi.Species{ID: 133, Name: "eevee"}
	sp.EvolutionChain.URL = "https://pokeapi.co/api/v2/evolution-chain/67/"
	broken := &pokeapi.Species{ID: 0, Name: "glitch"}
	src := New(&fakeAPI{species: map[string]*pokeapi.Species{"eevee": sp, "glitch": broken}}, nil, nil)

	id, err := src.ChainIDForSpecies(context.Background(), "eevee")
	require.NoError(t, err)
	assert.Equal(t, 67, id)

	_, err = src.ChainIDForSpecies(context.Background(), "glitch")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = src.ChainIDForSpecies(context.Background(), "missingno")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestChainIDForSpecies_ResolvesFormNames(t *testing.T) {
	sp := &pokeapi.Species{ID: 386, Name: "deoxys"}
	sp.EvolutionChain.URL = "https://pokeapi.co/api/v2/evolution-chain/202/"
	api := &fakeAPI{
		species: map[string]*pokeapi.Species{"deoxys": sp},
		pokemon: map[string]*pokeapi.Pokemon{
			"deoxys-normal": {ID: 386, Name: "deoxys-normal", Species: pokeapi.NamedResource{Name: "deoxys"}},
		},
	}
	src := New(api, nil, nil)

	id, err := src.ChainIDForSpecies(context.Background(), "deoxys-normal")
	require.NoError(t, err)
	assert.Equal(t, 202, id)
}
