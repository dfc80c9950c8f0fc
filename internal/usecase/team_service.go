package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/openfpl/live/internal/domain/fixture"
	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/domain/squad"
	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

// TeamScore is one entry's resolved live score for a round.
type TeamScore struct {
	EntryID   int
	Gameweek  int
	Entry     EntryInfo
	State     squad.TeamGameweekState
	Transfers []Transfer
	Source    cache.Source
	Live      bool
}

// TeamService joins upstream picks, live stats, fixtures and the
// reference catalog into one entry's gameweek state.
type TeamService struct {
	source SourceClient
	cache  *cache.Gateway
	logger *logging.Logger
	now    func() time.Time
}

func NewTeamService(source SourceClient, gateway *cache.Gateway, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		source: source,
		cache:  gateway,
		logger: logger,
		now:    time.Now,
	}
}

// GetGameweekScore resolves one entry's live score for one round:
// automatic substitutions applied, captaincy credited, provisional
// bonus included while the upstream has not finalized it.
//
// The picks, live and catalog fetches are required; a failure there
// fails the request. Fixtures, event status, entry profile and
// transfers degrade: a miss only downgrades the response's live flag.
func (s *TeamService) GetGameweekScore(ctx context.Context, entryID, gameweek int) (TeamScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetGameweekScore")
	defer span.End()

	if entryID <= 0 {
		return TeamScore{}, fmt.Errorf("%w: entry id must be positive", ErrInvalidInput)
	}
	if gameweek <= 0 {
		return TeamScore{}, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	var (
		catalog   fetched[Catalog]
		picks     fetched[PicksBundle]
		live      fetched[LiveStats]
		fixtures  fetched[[]fixture.Fixture]
		status    fetched[EventStatus]
		entry     fetched[EntryInfo]
		transfers fetched[[]Transfer]
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		catalog = fetchCached(ctx, s.cache, cacheKey("bootstrap"), ttlReference, s.source.Bootstrap)
	})
	wg.Go(func() {
		picks = fetchCached(ctx, s.cache, cacheKey("picks", entryID, gameweek), ttlVolatile, func(ctx context.Context) (PicksBundle, error) {
			return s.source.Picks(ctx, entryID, gameweek)
		})
	})
	wg.Go(func() {
		live = fetchCached(ctx, s.cache, cacheKey("live", gameweek), ttlVolatile, func(ctx context.Context) (LiveStats, error) {
			return s.source.Live(ctx, gameweek)
		})
	})
	wg.Go(func() {
		fixtures = fetchCached(ctx, s.cache, cacheKey("fixtures", gameweek), ttlVolatile, func(ctx context.Context) ([]fixture.Fixture, error) {
			return s.source.Fixtures(ctx, gameweek)
		})
	})
	wg.Go(func() {
		status = fetchCached(ctx, s.cache, cacheKey("event-status"), ttlVolatile, s.source.EventStatus)
	})
	wg.Go(func() {
		entry = fetchCached(ctx, s.cache, cacheKey("entry", entryID), ttlVolatile, func(ctx context.Context) (EntryInfo, error) {
			return s.source.Entry(ctx, entryID)
		})
	})
	wg.Go(func() {
		transfers = fetchCached(ctx, s.cache, cacheKey("transfers", entryID), ttlVolatile, func(ctx context.Context) ([]Transfer, error) {
			return s.source.Transfers(ctx, entryID)
		})
	})
	wg.Wait()

	if !catalog.Live {
		return TeamScore{}, fmt.Errorf("%w: reference catalog", ErrUpstreamUnavailable)
	}
	if !picks.Live {
		return TeamScore{}, fmt.Errorf("%w: picks for entry %d gameweek %d", ErrUpstreamUnavailable, entryID, gameweek)
	}
	if !live.Live {
		return TeamScore{}, fmt.Errorf("%w: live stats for gameweek %d", ErrUpstreamUnavailable, gameweek)
	}

	currentRound := s.isCurrentRound(catalog.Value, status, gameweek)

	starting, bench, err := s.enrichSquad(catalog.Value, picks.Value, live.Value, fixtures.Value, status.Value, gameweek, currentRound)
	if err != nil {
		return TeamScore{}, err
	}

	state := squad.Resolve(starting, bench, picks.Value.ActiveChip, picks.Value.TransferCost)

	source, liveFlag := mergeSource(catalog, picks, live, fixtures, status, entry, transfers)
	return TeamScore{
		EntryID:   entryID,
		Gameweek:  gameweek,
		Entry:     entry.Value,
		State:     state,
		Transfers: roundTransfers(transfers.Value, gameweek),
		Source:    source,
		Live:      liveFlag,
	}, nil
}

func (s *TeamService) isCurrentRound(catalog Catalog, status fetched[EventStatus], gameweek int) bool {
	if status.Live && status.Value.Gameweek > 0 {
		return status.Value.Gameweek == gameweek
	}
	current, err := catalog.CurrentGameweek()
	if err != nil {
		return false
	}
	return current.ID == gameweek
}

// enrichSquad joins each pick with catalog, live and fixture data and
// splits the result into the starting XI and the bench, both in pick
// order. A pick referencing a player missing from the catalog is a
// data-shape fault; a player whose team has no fixture this round
// degrades to unplayed.
func (s *TeamService) enrichSquad(
	catalog Catalog,
	bundle PicksBundle,
	liveStats LiveStats,
	fixtures []fixture.Fixture,
	status EventStatus,
	gameweek int,
	currentRound bool,
) ([]squad.EnrichedPlayer, []squad.EnrichedPlayer, error) {
	byTeam := fixture.ByTeam(fixtures)
	provisional := provisionalBonus(fixtures, status, s.now().UTC())
	now := s.now().UTC()

	picks := make([]squad.Pick, len(bundle.Picks))
	copy(picks, bundle.Picks)
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].PickPosition < picks[j].PickPosition
	})

	var starting, bench []squad.EnrichedPlayer
	for _, pick := range picks {
		info, ok := catalog.Players[pick.PlayerID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: pick references unknown player %d", ErrDataShape, pick.PlayerID)
		}

		liveRow := liveStats[pick.PlayerID]
		match, found := byTeam[info.TeamID]

		in := player.ClassifyInput{
			FixtureFound:        found && match.Gameweek == gameweek,
			Minutes:             liveRow.Minutes,
			KickoffAt:           match.KickoffAt,
			FinishedProvisional: match.FinishedProvisional,
			CurrentRound:        currentRound,
			ChanceOfPlaying:     info.ChanceOfPlaying,
			Now:                 now,
		}

		raw := liveRow.TotalPoints
		// Provisional bonus tops up the live total only while the
		// upstream has not folded real bonus in.
		if liveRow.Bonus == 0 {
			raw += provisional[pick.PlayerID]
		}

		enriched := squad.EnrichedPlayer{
			PlayerID:       pick.PlayerID,
			Name:           info.Name,
			TeamID:         info.TeamID,
			TeamShort:      catalog.Teams[info.TeamID].ShortName,
			Position:       info.Position,
			Price:          info.Price,
			PickPosition:   pick.PickPosition,
			Status:         player.Classify(in),
			SubStatus:      squad.SubNone,
			Role:           pickRole(pick),
			RawScore:       raw,
			ExpectedPoints: info.ExpectedPoints,
		}

		if pick.PickPosition <= squad.StartingSize {
			starting = append(starting, enriched)
		} else {
			bench = append(bench, enriched)
		}
	}

	if len(starting) != squad.StartingSize || len(bench) != squad.BenchSize {
		return nil, nil, fmt.Errorf("%w: squad has %d starters and %d bench players", ErrDataShape, len(starting), len(bench))
	}

	return starting, bench, nil
}

func pickRole(p squad.Pick) squad.CaptainRole {
	switch {
	case p.IsCaptain:
		return squad.RoleCaptain
	case p.IsViceCaptain:
		return squad.RoleViceCaptain
	default:
		return squad.RoleNone
	}
}

// provisionalBonus ranks every bonus-eligible fixture and returns the
// per-player provisional bonus points.
func provisionalBonus(fixtures []fixture.Fixture, status EventStatus, now time.Time) map[int]int {
	out := make(map[int]int)
	for _, f := range fixtures {
		day := f.KickoffAt.UTC().Format("2006-01-02")
		if !f.ProvisionalBonusReady(now, status.BonusFinalized(day)) {
			continue
		}
		for _, award := range fixture.RankBonus(f.ID, f.Ranking) {
			if award.BonusPoints > 0 {
				out[award.PlayerID] += award.BonusPoints
			}
		}
	}
	return out
}

func roundTransfers(all []Transfer, gameweek int) []Transfer {
	var out []Transfer
	for _, t := range all {
		if t.Gameweek == gameweek {
			out = append(out, t)
		}
	}
	return out
}
