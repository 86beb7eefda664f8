package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"pokedex/internal/cache/metrics"
)

// Policy is the freshness policy of one resource family.
type Policy struct {
	// StaleTime is how long an entry is served without refreshing.
	StaleTime time.Duration
	// GCTime is how long an entry is kept at all.
	GCTime time.Duration
}

// DefaultPolicies are the per-family policies the service runs with.
func DefaultPolicies() map[string]Policy {
	return map[string]Policy{
		"pokemon":         {StaleTime: 10 * time.Minute, GCTime: time.Hour},
		"pokemon-species": {StaleTime: 15 * time.Minute, GCTime: time.Hour},
		"evolution-chain": {StaleTime: 20 * time.Minute, GCTime: 2 * time.Hour},
		"encounters":      {StaleTime: 15 * time.Minute, GCTime: time.Hour},
		"move":            {StaleTime: 30 * time.Minute, GCTime: 4 * time.Hour},
		"pokemon-list":    {StaleTime: 24 * time.Hour, GCTime: 48 * time.Hour},
		"generation":      {StaleTime: 24 * time.Hour, GCTime: 48 * time.Hour},
	}
}

var fallbackPolicy = Policy{StaleTime: 5 * time.Minute, GCTime: 30 * time.Minute}

// Stats is a snapshot of cache activity.
type Stats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Stale   int64 `json:"stale"`
	Misses  int64 `json:"misses"`
	Errors  int64 `json:"errors"`
}

// Query serves reads from a Store, loading from upstream on a miss, serving
// stale entries while refreshing them in the background, and collapsing
// concurrent loads of the same key into one.
type Query struct {
	store    Store
	policies map[string]Policy
	group    singleflight.Group
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time

	refreshTimeout time.Duration

	hits     atomic.Int64
	stale    atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64
}

// QueryOption configures a Query.
type QueryOption func(*Query)

// WithPolicies replaces the per-family policies.
func WithPolicies(p map[string]Policy) QueryOption {
	return func(q *Query) { q.policies = p }
}

// WithMetrics attaches prometheus metrics.
func WithMetrics(m *metrics.Metrics) QueryOption {
	return func(q *Query) { q.metrics = m }
}

// WithLogger attaches a logger.
func WithLogger(l *slog.Logger) QueryOption {
	return func(q *Query) { q.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) QueryOption {
	return func(q *Query) { q.now = now }
}

// NewQuery constructs a Query over store.
func NewQuery(store Store, opts ...QueryOption) *Query {
	q := &Query{
		store:          store,
		policies:       DefaultPolicies(),
		logger:         slog.New(slog.DiscardHandler),
		now:            time.Now,
		refreshTimeout: 15 * time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(q)
		}
	}
	return q
}

func (q *Query) policy(family string) Policy {
	if p, ok := q.policies[family]; ok {
		return p
	}
	return fallbackPolicy
}

func cacheKey(family, key string) string {
	return family + ":" + key
}

// Fetch returns the body for (family, key). A fresh entry is returned as is; a
// stale one is returned immediately while a background refresh runs; a miss
// blocks on load.
func (q *Query) Fetch(ctx context.Context, family, key string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	full := cacheKey(family, key)
	pol := q.policy(family)

	entry, ok, err := q.store.Get(ctx, full)
	if err != nil {
		// a broken store must not take the service down with it
		q.logger.WarnContext(ctx, "cache read failed",
			"key", full,
			"error", err,
		)
		ok = false
	}

	if ok {
		if q.now().Sub(entry.StoredAt) < pol.StaleTime {
			q.hits.Add(1)
			q.metrics.IncrementLookup(family, "hit")
			return entry.Value, nil
		}
		q.stale.Add(1)
		q.metrics.IncrementLookup(family, "stale")
		q.refresh(family, full, pol, load)
		return entry.Value, nil
	}

	q.misses.Add(1)
	q.metrics.IncrementLookup(family, "miss")
	// The shared load outlives any single waiter; each waiter still gives up
	// on its own context.
	ch := q.group.DoChan(full, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), q.refreshTimeout)
		defer cancel()
		return q.load(loadCtx, family, full, pol, load)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *Query) refresh(family, full string, pol Policy, load func(context.Context) ([]byte, error)) {
	// DoChan dedups against an in-flight refresh or miss for the same key.
	q.group.DoChan(full, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), q.refreshTimeout)
		defer cancel()
		v, err := q.load(ctx, family, full, pol, load)
		if err != nil {
			q.logger.WarnContext(ctx, "background refresh failed",
				"key", full,
				"error", err,
			)
		}
		return v, err
	})
}

func (q *Query) load(ctx context.Context, family, full string, pol Policy, load func(context.Context) ([]byte, error)) ([]byte, error) {
	body, err := load(ctx)
	if err != nil {
		q.failures.Add(1)
		q.metrics.IncrementLoad(family, "error")
		return nil, fmt.Errorf("load %s: %w", full, err)
	}
	q.metrics.IncrementLoad(family, "ok")

	entry := Entry{Value: body, StoredAt: q.now()}
	if err := q.store.Set(ctx, full, entry, pol.GCTime); err != nil {
		q.logger.WarnContext(ctx, "cache write failed",
			"key", full,
			"error", err,
		)
	}
	return body, nil
}

// Peek returns the cached body without loading. Stale entries are returned.
func (q *Query) Peek(ctx context.Context, family, key string) ([]byte, bool) {
	entry, ok := q.PeekEntry(ctx, family, key)
	return entry.Value, ok
}

// PeekEntry is Peek with the entry's store time, for callers that keep a
// decoded copy and need to know when it changes.
func (q *Query) PeekEntry(ctx context.Context, family, key string) (Entry, bool) {
	entry, ok, err := q.store.Get(ctx, cacheKey(family, key))
	if err != nil || !ok {
		return Entry{}, false
	}
	return entry, true
}

// Invalidate drops the cached entry for (family, key).
func (q *Query) Invalidate(ctx context.Context, family, key string) error {
	return q.store.Delete(ctx, cacheKey(family, key))
}

// Stats returns counters since start and the current entry count.
func (q *Query) Stats(ctx context.Context) (Stats, error) {
	n, err := q.store.Len(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Entries: n,
		Hits:    q.hits.Load(),
		Stale:   q.stale.Load(),
		Misses:  q.misses.Load(),
		Errors:  q.failures.Load(),
	}, nil
}
