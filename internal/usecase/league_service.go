package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

const defaultLeagueWorkers = 8

// LiveLeagueRow is one classic-league standing row with the member's
// live gameweek score resolved alongside the official totals.
type LiveLeagueRow struct {
	LeagueRow
	LivePoints    int
	ActivePlayers int
	RemainPlayers int
	ScoreLive     bool
}

// ClassicStandings is one page of a classic league with live scores.
type ClassicStandings struct {
	LeagueID int
	Name     string
	Gameweek int
	Rows     []LiveLeagueRow
	HasNext  bool
	Source   cache.Source
	Live     bool
}

// LiveH2HMatch is one head-to-head pairing with both sides' live
// gameweek scores resolved.
type LiveH2HMatch struct {
	H2HMatch
	LivePointsA int
	LivePointsB int
	ScoreLive   bool
}

// H2HStandings is one page of head-to-head matches with live scores.
type H2HStandings struct {
	LeagueID int
	Name     string
	Gameweek int
	Matches  []LiveH2HMatch
	HasNext  bool
	Source   cache.Source
	Live     bool
}

// LeagueService resolves league pages and fans the per-member live
// scoring out over a bounded worker pool.
type LeagueService struct {
	source    SourceClient
	cache     *cache.Gateway
	team      *TeamService
	gameweeks *GameweekService
	logger    *logging.Logger
	workers   int
	now       func() time.Time
}

func NewLeagueService(source SourceClient, gateway *cache.Gateway, team *TeamService, gameweeks *GameweekService, logger *logging.Logger, workers int) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultLeagueWorkers
	}
	return &LeagueService{
		source:    source,
		cache:     gateway,
		team:      team,
		gameweeks: gameweeks,
		logger:    logger,
		workers:   workers,
		now:       time.Now,
	}
}

// GetClassicStandings returns one page of a classic league with every
// member's live score for the current round. A member whose score
// cannot be resolved keeps the official totals and a false ScoreLive
// flag; the page itself only fails when the standings fetch does.
func (s *LeagueService) GetClassicStandings(ctx context.Context, leagueID, page int) (ClassicStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetClassicStandings")
	defer span.End()

	if leagueID <= 0 {
		return ClassicStandings{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if page <= 0 {
		page = 1
	}

	current, err := s.gameweeks.Current(ctx)
	if err != nil {
		return ClassicStandings{}, err
	}
	gameweek := current.Gameweek.ID

	league := fetchCached(ctx, s.cache, cacheKey("league-classic", leagueID, page), ttlVolatile, func(ctx context.Context) (ClassicLeague, error) {
		return s.source.ClassicLeague(ctx, leagueID, page)
	})
	if !league.Live {
		return ClassicStandings{}, fmt.Errorf("%w: classic league %d", ErrUpstreamUnavailable, leagueID)
	}

	rows := make([]LiveLeagueRow, len(league.Value.Rows))
	for i, row := range league.Value.Rows {
		rows[i] = LiveLeagueRow{LeagueRow: row}
	}

	if err := s.forEachMember(ctx, len(rows), func(i int) {
		score, scoreErr := s.team.GetGameweekScore(ctx, rows[i].EntryID, gameweek)
		if scoreErr != nil {
			s.logger.WarnContext(ctx, "live score unavailable for league member",
				"league_id", leagueID, "entry_id", rows[i].EntryID, "error", scoreErr)
			return
		}
		rows[i].LivePoints = score.State.TotalScore
		rows[i].ActivePlayers = score.State.ActivePlayers
		rows[i].RemainPlayers = score.State.RemainPlayers
		rows[i].ScoreLive = score.Live
	}); err != nil {
		return ClassicStandings{}, err
	}

	source, live := mergeSource(league)
	return ClassicStandings{
		LeagueID: leagueID,
		Name:     league.Value.Name,
		Gameweek: gameweek,
		Rows:     rows,
		HasNext:  league.Value.HasNext,
		Source:   source,
		Live:     live && current.Live,
	}, nil
}

// GetH2HStandings returns one page of head-to-head matches with both
// sides' live scores for the current round.
func (s *LeagueService) GetH2HStandings(ctx context.Context, leagueID, page int) (H2HStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetH2HStandings")
	defer span.End()

	if leagueID <= 0 {
		return H2HStandings{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if page <= 0 {
		page = 1
	}

	current, err := s.gameweeks.Current(ctx)
	if err != nil {
		return H2HStandings{}, err
	}
	gameweek := current.Gameweek.ID

	league := fetchCached(ctx, s.cache, cacheKey("league-h2h", leagueID, page), ttlVolatile, func(ctx context.Context) (H2HLeague, error) {
		return s.source.H2HLeague(ctx, leagueID, page)
	})
	if !league.Live {
		return H2HStandings{}, fmt.Errorf("%w: h2h league %d", ErrUpstreamUnavailable, leagueID)
	}

	matches := make([]LiveH2HMatch, len(league.Value.Matches))
	for i, m := range league.Value.Matches {
		matches[i] = LiveH2HMatch{H2HMatch: m}
	}

	if err := s.forEachMember(ctx, len(matches), func(i int) {
		m := &matches[i]
		// An average/bye side has entry id 0 and keeps the official
		// points.
		scoreA, errA := s.memberScore(ctx, m.EntryA, gameweek)
		scoreB, errB := s.memberScore(ctx, m.EntryB, gameweek)
		if errA != nil || errB != nil {
			s.logger.WarnContext(ctx, "live score unavailable for h2h match",
				"league_id", leagueID, "entry_a", m.EntryA, "entry_b", m.EntryB)
			return
		}
		if scoreA != nil {
			m.LivePointsA = scoreA.State.TotalScore
		}
		if scoreB != nil {
			m.LivePointsB = scoreB.State.TotalScore
		}
		m.ScoreLive = (scoreA == nil || scoreA.Live) && (scoreB == nil || scoreB.Live)
	}); err != nil {
		return H2HStandings{}, err
	}

	source, live := mergeSource(league)
	return H2HStandings{
		LeagueID: leagueID,
		Name:     league.Value.Name,
		Gameweek: gameweek,
		Matches:  matches,
		HasNext:  league.Value.HasNext,
		Source:   source,
		Live:     live && current.Live,
	}, nil
}

func (s *LeagueService) memberScore(ctx context.Context, entryID, gameweek int) (*TeamScore, error) {
	if entryID <= 0 {
		return nil, nil
	}
	score, err := s.team.GetGameweekScore(ctx, entryID, gameweek)
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// forEachMember runs fn(i) for every index over the bounded pool and
// waits for all of them.
func (s *LeagueService) forEachMember(ctx context.Context, n int, fn func(i int)) error {
	if n == 0 {
		return nil
	}

	workers := s.workers
	if n < workers {
		workers = n
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			fn(i)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("submit member to worker pool: %w", err)
		}
	}
	wg.Wait()
	return nil
}
