package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

// historyWindow is the fixed number of past rounds returned for a
// player. Not configurable.
const historyWindow = 5

// UpcomingView is one scheduled match with the opponent joined from
// the catalog.
type UpcomingView struct {
	Gameweek   int
	Opponent   Team
	IsHome     bool
	KickoffAt  time.Time
	Difficulty int
}

// PlayerDetail is one player's profile, recent history and schedule.
type PlayerDetail struct {
	Player   player.Player
	Team     Team
	History  []HistoryRound
	Upcoming []UpcomingView
	Source   cache.Source
	Live     bool
}

// PlayerService serves per-player detail views.
type PlayerService struct {
	source SourceClient
	cache  *cache.Gateway
	logger *logging.Logger
}

func NewPlayerService(source SourceClient, gateway *cache.Gateway, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		source: source,
		cache:  gateway,
		logger: logger,
	}
}

// GetPlayerDetail returns the catalog profile plus the last five
// rounds of history and the upcoming fixtures. The element summary
// degrades: when it is unavailable the profile is still served with
// empty history and a false live flag.
func (s *PlayerService) GetPlayerDetail(ctx context.Context, playerID int) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerDetail")
	defer span.End()

	if playerID <= 0 {
		return PlayerDetail{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	var (
		catalog fetched[Catalog]
		summary fetched[PlayerSummary]
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		catalog = fetchCached(ctx, s.cache, cacheKey("bootstrap"), ttlReference, s.source.Bootstrap)
	})
	wg.Go(func() {
		summary = fetchCached(ctx, s.cache, cacheKey("element", playerID), ttlVolatile, func(ctx context.Context) (PlayerSummary, error) {
			return s.source.ElementSummary(ctx, playerID)
		})
	})
	wg.Wait()

	if !catalog.Live {
		return PlayerDetail{}, fmt.Errorf("%w: reference catalog", ErrUpstreamUnavailable)
	}

	info, ok := catalog.Value.Players[playerID]
	if !ok {
		return PlayerDetail{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	source, live := mergeSource(catalog, summary)
	return PlayerDetail{
		Player:   info,
		Team:     catalog.Value.Teams[info.TeamID],
		History:  lastRounds(summary.Value.History, historyWindow),
		Upcoming: upcomingViews(catalog.Value, summary.Value.Upcoming),
		Source:   source,
		Live:     live,
	}, nil
}

// lastRounds keeps the trailing n rounds of a history ordered oldest
// to newest.
func lastRounds(history []HistoryRound, n int) []HistoryRound {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func upcomingViews(catalog Catalog, upcoming []UpcomingFixture) []UpcomingView {
	views := make([]UpcomingView, 0, len(upcoming))
	for _, u := range upcoming {
		views = append(views, UpcomingView{
			Gameweek:   u.Gameweek,
			Opponent:   catalog.Teams[u.OpponentTeamID],
			IsHome:     u.IsHome,
			KickoffAt:  u.KickoffAt,
			Difficulty: u.Difficulty,
		})
	}
	return views
}
