package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/openfpl/live/internal/domain/fixture"
	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

// BonusAwardView is one ranked player of a fixture with names joined
// from the catalog.
type BonusAwardView struct {
	PlayerID     int
	Name         string
	TeamShort    string
	RankingValue int
	BonusPoints  int
}

// FixtureBonus is one fixture's provisional bonus standing plus its
// headline match events.
type FixtureBonus struct {
	FixtureID   int
	Gameweek    int
	HomeTeam    Team
	AwayTeam    Team
	KickoffAt   time.Time
	Minutes     int
	Started     bool
	Finished    bool
	BonusFinal  bool
	Provisional bool
	Awards      []BonusAwardView
	Stats       fixture.MatchStats
}

// GameweekBonus is the bonus standing across all fixtures of a round.
type GameweekBonus struct {
	Gameweek int
	Fixtures []FixtureBonus
	Source   cache.Source
	Live     bool
}

// BonusService ranks live provisional bonus per fixture.
type BonusService struct {
	source SourceClient
	cache  *cache.Gateway
	logger *logging.Logger
	now    func() time.Time
}

func NewBonusService(source SourceClient, gateway *cache.Gateway, logger *logging.Logger) *BonusService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BonusService{
		source: source,
		cache:  gateway,
		logger: logger,
		now:    time.Now,
	}
}

// GetGameweekBonus returns every fixture of the round with its bonus
// ranking. Fixtures that are not yet thirty minutes in, or whose bonus
// the upstream already finalized, carry Provisional=false and awards
// reflecting the settled state (empty ranking means no awards).
func (s *BonusService) GetGameweekBonus(ctx context.Context, gameweek int) (GameweekBonus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BonusService.GetGameweekBonus")
	defer span.End()

	if gameweek <= 0 {
		return GameweekBonus{}, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	var (
		catalog  fetched[Catalog]
		fixtures fetched[[]fixture.Fixture]
		status   fetched[EventStatus]
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		catalog = fetchCached(ctx, s.cache, cacheKey("bootstrap"), ttlReference, s.source.Bootstrap)
	})
	wg.Go(func() {
		fixtures = fetchCached(ctx, s.cache, cacheKey("fixtures", gameweek), ttlVolatile, func(ctx context.Context) ([]fixture.Fixture, error) {
			return s.source.Fixtures(ctx, gameweek)
		})
	})
	wg.Go(func() {
		status = fetchCached(ctx, s.cache, cacheKey("event-status"), ttlVolatile, s.source.EventStatus)
	})
	wg.Wait()

	if !catalog.Live {
		return GameweekBonus{}, fmt.Errorf("%w: reference catalog", ErrUpstreamUnavailable)
	}
	if !fixtures.Live {
		return GameweekBonus{}, fmt.Errorf("%w: fixtures for gameweek %d", ErrUpstreamUnavailable, gameweek)
	}

	now := s.now().UTC()
	out := GameweekBonus{Gameweek: gameweek}
	for _, f := range fixtures.Value {
		day := f.KickoffAt.UTC().Format("2006-01-02")
		finalized := status.Value.BonusFinalized(day)

		view := FixtureBonus{
			FixtureID:   f.ID,
			Gameweek:    f.Gameweek,
			HomeTeam:    catalog.Value.Teams[f.HomeTeamID],
			AwayTeam:    catalog.Value.Teams[f.AwayTeamID],
			KickoffAt:   f.KickoffAt,
			Minutes:     f.Minutes,
			Started:     f.Started,
			Finished:    f.Finished,
			BonusFinal:  finalized,
			Provisional: f.ProvisionalBonusReady(now, finalized),
			Stats:       f.Stats,
		}
		if view.Provisional {
			view.Awards = s.awardViews(catalog.Value, fixture.RankBonus(f.ID, f.Ranking))
		}
		out.Fixtures = append(out.Fixtures, view)
	}

	out.Source, out.Live = mergeSource(catalog, fixtures, status)
	return out, nil
}

func (s *BonusService) awardViews(catalog Catalog, awards []fixture.BonusAward) []BonusAwardView {
	views := make([]BonusAwardView, 0, len(awards))
	for _, award := range awards {
		view := BonusAwardView{
			PlayerID:     award.PlayerID,
			RankingValue: award.RankingValue,
			BonusPoints:  award.BonusPoints,
		}
		if info, ok := catalog.Players[award.PlayerID]; ok {
			view.Name = info.Name
			view.TeamShort = catalog.Teams[info.TeamID].ShortName
		}
		views = append(views, view)
	}
	return views
}
