package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/openfpl/live/internal/domain/matchup"
	"github.com/openfpl/live/internal/domain/squad"
	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

// Matchup is two entries' resolved squads aligned position by
// position for head-to-head display.
type Matchup struct {
	Gameweek int
	Left     TeamScore
	Right    TeamScore
	Groups   []matchup.PositionGroup
	Source   cache.Source
	Live     bool
}

// MatchupService builds head-to-head views on top of TeamService.
type MatchupService struct {
	team   *TeamService
	logger *logging.Logger
}

func NewMatchupService(team *TeamService, logger *logging.Logger) *MatchupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchupService{team: team, logger: logger}
}

// GetMatchup resolves both entries' gameweek scores in parallel and
// aligns their counted squads: the starting players who were not
// subbed out plus the bench players who came on.
func (s *MatchupService) GetMatchup(ctx context.Context, entry1, entry2, gameweek int) (Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.GetMatchup")
	defer span.End()

	if entry1 <= 0 || entry2 <= 0 {
		return Matchup{}, fmt.Errorf("%w: entry ids must be positive", ErrInvalidInput)
	}
	if entry1 == entry2 {
		return Matchup{}, fmt.Errorf("%w: matchup requires two distinct entries", ErrInvalidInput)
	}
	if gameweek <= 0 {
		return Matchup{}, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	var (
		left, right       TeamScore
		leftErr, rightErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		left, leftErr = s.team.GetGameweekScore(ctx, entry1, gameweek)
	})
	wg.Go(func() {
		right, rightErr = s.team.GetGameweekScore(ctx, entry2, gameweek)
	})
	wg.Wait()

	if leftErr != nil {
		return Matchup{}, fmt.Errorf("resolve entry %d: %w", entry1, leftErr)
	}
	if rightErr != nil {
		return Matchup{}, fmt.Errorf("resolve entry %d: %w", entry2, rightErr)
	}

	out := Matchup{
		Gameweek: gameweek,
		Left:     left,
		Right:    right,
		Groups:   matchup.Align(countedSquad(left.State), countedSquad(right.State)),
		Live:     left.Live && right.Live,
		Source:   cache.SourceCache,
	}
	if left.Source == cache.SourceAPI || right.Source == cache.SourceAPI {
		out.Source = cache.SourceAPI
	}
	return out, nil
}

// countedSquad is the effective XI after substitution: starters not
// subbed out plus bench players subbed in, in pick order.
func countedSquad(state squad.TeamGameweekState) []squad.EnrichedPlayer {
	out := make([]squad.EnrichedPlayer, 0, squad.StartingSize)
	for _, p := range state.Starting {
		if p.SubStatus != squad.SubOut {
			out = append(out, p)
		}
	}
	for _, p := range state.Bench {
		if p.SubStatus == squad.SubIn {
			out = append(out, p)
		}
	}
	return out
}
