package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/platform/logging"
)

func newMatchupService(src SourceClient, now time.Time) *MatchupService {
	return NewMatchupService(newTeamService(src, now), logging.NewNop())
}

func TestMatchupService_AlignsBothSquads(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
	src := fullSource(now)

	m, err := newMatchupService(src, now).GetMatchup(context.Background(), 1, 2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Groups) != len(player.PositionOrder) {
		t.Fatalf("groups = %d, want %d", len(m.Groups), len(player.PositionOrder))
	}
	// Both entries resolve to the same stub squad, so every pairing is
	// an identity match with no padding.
	for _, g := range m.Groups {
		for _, pair := range g.Pairs {
			if pair.Left == nil || pair.Right == nil {
				t.Fatalf("identical squads produced padding in %s: %+v", g.Position, pair)
			}
			if pair.Left.PlayerID != pair.Right.PlayerID {
				t.Fatalf("identity pairing broken: %+v", pair)
			}
		}
	}
	if m.Left.State.TotalScore != m.Right.State.TotalScore {
		t.Fatalf("identical squads scored differently: %d vs %d",
			m.Left.State.TotalScore, m.Right.State.TotalScore)
	}
	if !m.Live {
		t.Fatalf("fully fetched matchup not live")
	}
}

func TestMatchupService_InputValidation(t *testing.T) {
	t.Parallel()

	svc := newMatchupService(&stubSource{}, time.Now())
	if _, err := svc.GetMatchup(context.Background(), 0, 2, 7); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero entry: %v", err)
	}
	if _, err := svc.GetMatchup(context.Background(), 3, 3, 7); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("same entry twice: %v", err)
	}
}

func TestMatchupService_SideFailurePropagates(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	src := fullSource(now)
	src.picksErr = errors.New("down")

	_, err := newMatchupService(src, now).GetMatchup(context.Background(), 1, 2, 7)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
}
