package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openfpl/live/internal/platform/cache"
)

// fetched is one cached upstream read: the decoded value plus where it
// came from. Live is false when the upstream failed and nothing was
// cached; Value is then the zero value.
type fetched[T any] struct {
	Value  T
	Source cache.Source
	Live   bool
}

// fetchCached funnels a typed loader through the cache gateway.
func fetchCached[T any](ctx context.Context, gw *cache.Gateway, key string, ttl time.Duration, load func(context.Context) (T, error)) fetched[T] {
	res := gw.Fetch(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	out := fetched[T]{Source: res.Source, Live: res.Live}
	if !res.Live {
		return out
	}
	value, ok := res.Value.(T)
	if !ok {
		out.Live = false
		return out
	}
	out.Value = value
	return out
}

type provenance interface {
	prov() (cache.Source, bool)
}

func (f fetched[T]) prov() (cache.Source, bool) { return f.Source, f.Live }

// mergeSource folds per-fetch provenance into a response-level pair:
// live only when every contributing fetch was live, source "api" when
// any fetch went upstream.
func mergeSource(parts ...provenance) (cache.Source, bool) {
	source := cache.SourceCache
	live := true
	for _, p := range parts {
		s, l := p.prov()
		if s == cache.SourceAPI {
			source = cache.SourceAPI
		}
		if !l {
			live = false
		}
	}
	return source, live
}

func cacheKey(parts ...any) string {
	key := "fpl"
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}
