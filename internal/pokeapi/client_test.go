package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "pokedex/pkg/domain-errors"
	"pokedex/pkg/platform/circuit"
	"pokedex/pkg/platform/sentinel"
)

func noWait() backoff.BackOff { return &backoff.ZeroBackOff{} }

func TestClient_Species(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon-species/eevee", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":133,"name":"eevee","evolution_chain":{"url":"https://pokeapi.co/api/v2/evolution-chain/67/"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithBackoff(noWait))
	species, err := client.Species(context.Background(), " Eevee ")

	require.NoError(t, err)
	assert.Equal(t, 133, species.ID)
	id, ok := IDFromURL(species.EvolutionChain.URL)
	assert.True(t, ok)
	assert.Equal(t, 67, id)
}

func TestClient_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := New(srv.URL, WithBackoff(noWait))
	_, err := client.Pokemon(context.Background(), "missingno")

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"chain":{"species":{"name":"bulbasaur"},"evolves_to":[]}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithBackoff(noWait), WithRetries(2))
	chain, err := client.EvolutionChain(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "bulbasaur", chain.Chain.Species.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, WithBackoff(noWait), WithRetries(1))
	_, err := client.EvolutionChain(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_BreakerFailsFast(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	breaker := circuit.New("pokeapi", circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour))
	client := New(srv.URL, WithBackoff(noWait), WithRetries(0), WithBreaker(breaker))

	for i := 0; i < 2; i++ {
		_, err := client.EvolutionChain(context.Background(), 1)
		require.Error(t, err)
	}
	assert.True(t, breaker.IsOpen())

	_, err := client.EvolutionChain(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	assert.Equal(t, int32(2), calls.Load(), "open breaker must not reach the upstream")
}

func TestClient_NotFoundKeepsBreakerClosed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	breaker := circuit.New("pokeapi", circuit.WithFailureThreshold(1))
	client := New(srv.URL, WithBackoff(noWait), WithBreaker(breaker))

	_, err := client.Species(context.Background(), "missingno")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.False(t, breaker.IsOpen())
}

func TestClient_ListsNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon":
			assert.Equal(t, "1010", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`{"count":2,"results":[{"name":"pikachu"},{"name":"raichu"}]}`))
		case "/generation/1":
			_, _ = w.Write([]byte(`{"id":1,"name":"generation-i","pokemon_species":[{"name":"mew"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, WithBackoff(noWait))

	names, err := client.SpeciesNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"pikachu", "raichu"}, names)

	gen, err := client.GenerationSpecies(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"mew"}, gen)
}

type recordingCache struct {
	families []string
	keys     []string
}

func (c *recordingCache) Fetch(ctx context.Context, family, key string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	c.families = append(c.families, family)
	c.keys = append(c.keys, key)
	return load(ctx)
}

func TestClient_ReadsThroughCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":25,"name":"pikachu","species":{"name":"pikachu"}}`))
	}))
	defer srv.Close()

	cache := &recordingCache{}
	client := New(srv.URL, WithBackoff(noWait), WithCache(cache))

	p, err := client.Pokemon(context.Background(), "Pikachu")

	require.NoError(t, err)
	assert.Equal(t, 25, p.ID)
	assert.Equal(t, []string{FamilyPokemon}, cache.families)
	assert.Equal(t, []string{"/pokemon/pikachu"}, cache.keys)
}

func TestPokemon_ArtworkURL(t *testing.T) {
	var p Pokemon
	p.Sprites.FrontDefault = "front.png"
	assert.Equal(t, "front.png", p.ArtworkURL())
	p.Sprites.Other.OfficialArtwork.FrontDefault = "art.png"
	assert.Equal(t, "art.png", p.ArtworkURL())
}

func TestClient_EncountersAndMoveUseTheirFamilies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/25/encounters":
			_, _ = w.Write([]byte(`[{"location_area":{"name":"viridian-forest-area"},"version_details":[{"max_chance":5,"version":{"name":"red"}}]}]`))
		case "/move/thunderbolt":
			_, _ = w.Write([]byte(`{"id":85,"name":"thunderbolt","type":{"name":"electric"},"power":90,"accuracy":100}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cache := &recordingCache{}
	client := New(srv.URL, WithBackoff(noWait), WithCache(cache))

	encounters, err := client.Encounters(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, encounters, 1)
	assert.Equal(t, "viridian-forest-area", encounters[0].LocationArea.Name)
	assert.Equal(t, 5, encounters[0].VersionDetails[0].MaxChance)

	move, err := client.Move(context.Background(), "Thunderbolt")
	require.NoError(t, err)
	assert.Equal(t, "electric", move.Type.Name)
	require.NotNil(t, move.Power)
	assert.Equal(t, 90, *move.Power)

	assert.Equal(t, []string{FamilyEncounters, FamilyMove}, cache.families)
	assert.Equal(t, []string{"/pokemon/25/encounters", "/move/thunderbolt"}, cache.keys)
}

func TestDomainError(t *testing.T) {
	notFound := DomainError(&APIError{Status: http.StatusNotFound, Path: "/move/x"}, "move \"x\"")
	assert.True(t, dErrors.HasCode(notFound, dErrors.CodeNotFound))

	down := DomainError(ErrCircuitOpen, "move \"x\"")
	assert.True(t, dErrors.HasCode(down, dErrors.CodeUnavailable))

	slow := DomainError(context.DeadlineExceeded, "move \"x\"")
	assert.True(t, dErrors.HasCode(slow, dErrors.CodeTimeout))
}
