package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

// CurrentGameweek is the live round plus its per-day status.
type CurrentGameweek struct {
	Gameweek Gameweek
	Days     []DayStatus
	Source   cache.Source
	Live     bool
}

// GameweekService answers round-level questions from the reference
// catalog and the event status feed.
type GameweekService struct {
	source SourceClient
	cache  *cache.Gateway
	logger *logging.Logger
	now    func() time.Time
}

func NewGameweekService(source SourceClient, gateway *cache.Gateway, logger *logging.Logger) *GameweekService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameweekService{
		source: source,
		cache:  gateway,
		logger: logger,
		now:    time.Now,
	}
}

// Current returns the round the upstream flags as current. Event
// status is preferred for the round number; the catalog supplies the
// round metadata and serves as fallback when the status feed is down.
func (s *GameweekService) Current(ctx context.Context) (CurrentGameweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.Current")
	defer span.End()

	catalog := fetchCached(ctx, s.cache, cacheKey("bootstrap"), ttlReference, s.source.Bootstrap)
	if !catalog.Live {
		return CurrentGameweek{}, fmt.Errorf("%w: reference catalog", ErrUpstreamUnavailable)
	}
	status := fetchCached(ctx, s.cache, cacheKey("event-status"), ttlVolatile, s.source.EventStatus)

	current, err := catalog.Value.CurrentGameweek()
	if err != nil {
		return CurrentGameweek{}, err
	}

	if status.Live && status.Value.Gameweek > 0 && status.Value.Gameweek != current.ID {
		for _, gw := range catalog.Value.Gameweeks {
			if gw.ID == status.Value.Gameweek {
				current = gw
				break
			}
		}
	}

	source, live := mergeSource(catalog, status)
	return CurrentGameweek{
		Gameweek: current,
		Days:     status.Value.Days,
		Source:   source,
		Live:     live,
	}, nil
}
