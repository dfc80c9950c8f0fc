package cache

import (
	"context"
	"sync"
	"time"

	"github.com/openfpl/live/internal/platform/logging"
	"github.com/openfpl/live/internal/platform/resilience"
)

// Source reports where a fetched value came from.
type Source string

const (
	SourceCache Source = "cache"
	SourceAPI   Source = "api"
)

// Result is the outcome of one Fetch. Live is false only when the
// upstream load failed; the value is then empty and nothing is cached.
type Result struct {
	Value  any
	Source Source
	Live   bool
}

// Loader retrieves one upstream resource.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	value     any
	expiresAt time.Time
}

// Gateway is a get-or-fetch-and-store front for upstream resources,
// each cached under its own TTL. Concurrent fetches for the same cold
// key are collapsed into a single upstream call.
type Gateway struct {
	mu      sync.RWMutex
	entries map[string]entry
	flight  resilience.SingleFlight
	logger  *logging.Logger
	now     func() time.Time
}

func NewGateway(logger *logging.Logger) *Gateway {
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{
		entries: make(map[string]entry),
		logger:  logger,
		now:     time.Now,
	}
}

// Fetch returns the cached value for key when present and unexpired.
// Otherwise it runs the loader once, stores a successful result under
// ttl, and returns it. A loader failure yields an empty, non-live
// result; the failure is logged here and never retried.
func (g *Gateway) Fetch(ctx context.Context, key string, ttl time.Duration, loader Loader) Result {
	if value, ok := g.lookup(key); ok {
		return Result{Value: value, Source: SourceCache, Live: true}
	}

	value, err, _ := g.flight.Do(key, func() (any, error) {
		if cached, ok := g.lookup(key); ok {
			return cached, nil
		}
		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		g.store(key, loaded, ttl)
		return loaded, nil
	})
	if err != nil {
		g.logger.WarnContext(ctx, "upstream fetch failed", "key", key, "error", err)
		return Result{Source: SourceAPI, Live: false}
	}

	return Result{Value: value, Source: SourceAPI, Live: true}
}

func (g *Gateway) lookup(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := g.now()
	g.mu.RLock()
	e, ok := g.entries[key]
	g.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.After(now) {
		g.mu.Lock()
		delete(g.entries, key)
		g.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (g *Gateway) store(key string, value any, ttl time.Duration) {
	if key == "" || ttl <= 0 {
		return
	}

	g.mu.Lock()
	g.entries[key] = entry{
		value:     value,
		expiresAt: g.now().Add(ttl),
	}
	g.mu.Unlock()
}
