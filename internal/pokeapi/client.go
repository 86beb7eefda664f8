// Package pokeapi is the HTTP client and wire adapter for the public PokéAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pokedex/pkg/platform/circuit"
	"pokedex/pkg/platform/sentinel"
	pstrings "pokedex/pkg/platform/strings"
)

// DefaultBaseURL is the public PokéAPI v2 root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Cache families, one per upstream resource kind. Each family carries its own
// staleness policy in the cache package.
const (
	FamilyPokemon        = "pokemon"
	FamilySpecies        = "pokemon-species"
	FamilyEvolutionChain = "evolution-chain"
	FamilySpeciesList    = "pokemon-list"
	FamilyGeneration     = "generation"
	FamilyEncounters     = "encounters"
	FamilyMove           = "move"
)

const maxResponseBytes = 4 << 20

// Cache fronts upstream reads. Implementations decide freshness per family.
type Cache interface {
	Fetch(ctx context.Context, family, key string, load func(context.Context) ([]byte, error)) ([]byte, error)
}

// ErrCircuitOpen is returned without contacting the API while the breaker is
// open.
var ErrCircuitOpen = fmt.Errorf("pokeapi circuit open: %w", sentinel.ErrUnavailable)

// APIError is a non-2xx response from the upstream API.
type APIError struct {
	Status int
	Path   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pokeapi %s: status %d", e.Path, e.Status)
}

// Unwrap maps the status onto the sentinel infrastructure errors.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusNotFound:
		return sentinel.ErrNotFound
	case e.Retryable():
		return sentinel.ErrUnavailable
	default:
		return nil
	}
}

// Retryable reports whether a retry could plausibly succeed.
func (e *APIError) Retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= http.StatusInternalServerError
}

// Client reads PokéAPI resources, optionally through a Cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      Cache
	maxRetries uint64
	backoff    func() backoff.BackOff
	breaker    *circuit.Breaker
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache routes every read through cache.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRetries sets how many times a retryable failure is retried.
func WithRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBackoff overrides the retry schedule. Tests use a zero backoff.
func WithBackoff(factory func() backoff.BackOff) Option {
	return func(c *Client) { c.backoff = factory }
}

// WithBreaker makes the client fail fast while the upstream keeps failing.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

// New constructs a client for baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxRetries: 2,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
		tracer: otel.Tracer("pokedex/internal/pokeapi"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// EvolutionChain fetches /evolution-chain/{id}.
func (c *Client) EvolutionChain(ctx context.Context, id int) (*EvolutionChain, error) {
	var out EvolutionChain
	if err := c.get(ctx, FamilyEvolutionChain, "/evolution-chain/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Species fetches /pokemon-species/{nameOrID}.
func (c *Client) Species(ctx context.Context, nameOrID string) (*Species, error) {
	var out Species
	if err := c.get(ctx, FamilySpecies, "/pokemon-species/"+normalizeName(nameOrID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pokemon fetches /pokemon/{name}.
func (c *Client) Pokemon(ctx context.Context, name string) (*Pokemon, error) {
	var out Pokemon
	if err := c.get(ctx, FamilyPokemon, "/pokemon/"+normalizeName(name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Encounters fetches /pokemon/{id}/encounters.
func (c *Client) Encounters(ctx context.Context, id int) ([]Encounter, error) {
	var out []Encounter
	if err := c.get(ctx, FamilyEncounters, "/pokemon/"+strconv.Itoa(id)+"/encounters", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Move fetches /move/{name}.
func (c *Client) Move(ctx context.Context, name string) (*Move, error) {
	var out Move
	if err := c.get(ctx, FamilyMove, "/move/"+normalizeName(name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SpeciesNames lists every pokémon name the API knows about.
func (c *Client) SpeciesNames(ctx context.Context) ([]string, error) {
	var out ResourceList
	if err := c.get(ctx, FamilySpeciesList, "/pokemon?limit=1010", &out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.Results))
	for _, r := range out.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

// GenerationSpecies lists the species introduced in a generation.
func (c *Client) GenerationSpecies(ctx context.Context, generation int) ([]string, error) {
	var out Generation
	if err := c.get(ctx, FamilyGeneration, "/generation/"+strconv.Itoa(generation), &out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.PokemonSpecies))
	for _, r := range out.PokemonSpecies {
		names = append(names, r.Name)
	}
	return names, nil
}

func (c *Client) get(ctx context.Context, family, path string, dst any) error {
	load := func(ctx context.Context) ([]byte, error) {
		return c.fetch(ctx, path)
	}

	var (
		body []byte
		err  error
	)
	if c.cache != nil {
		body, err = c.cache.Fetch(ctx, family, path, load)
	} else {
		body, err = load(ctx)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// fetch performs the GET with retries on retryable failures.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "pokeapi.fetch", trace.WithAttributes(
		attribute.String("pokeapi.path", path),
	))
	defer span.End()

	if c.breaker != nil && !c.breaker.Allow() {
		span.SetStatus(codes.Error, ErrCircuitOpen.Error())
		return nil, ErrCircuitOpen
	}

	attempts := 0
	var body []byte
	op := func() error {
		attempts++
		b, err := c.do(ctx, path)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && !apiErr.Retryable() {
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		body = b
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(c.backoff(), c.maxRetries), ctx)
	err := backoff.Retry(op, policy)
	span.SetAttributes(attribute.Int("pokeapi.attempts", attempts))
	c.recordOutcome(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

// recordOutcome feeds the breaker. Only failures that say the upstream is
// unhealthy count; a 404 is a healthy answer.
func (c *Client) recordOutcome(err error) {
	if c.breaker == nil {
		return
	}
	var apiErr *APIError
	switch {
	case err == nil:
		c.breaker.RecordSuccess()
	case errors.As(err, &apiErr) && !apiErr.Retryable():
		c.breaker.RecordSuccess()
	case errors.Is(err, context.Canceled):
	default:
		c.breaker.RecordFailure()
	}
}

func (c *Client) do(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &APIError{Status: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

func normalizeName(name string) string {
	return url.PathEscape(pstrings.Slug(name))
}
