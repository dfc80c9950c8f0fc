package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
)

func newLeagueService(src SourceClient, now time.Time, workers int) *LeagueService {
	gateway := cache.NewGateway(logging.NewNop())
	team := NewTeamService(src, gateway, logging.NewNop())
	team.now = func() time.Time { return now }
	gameweeks := NewGameweekService(src, gateway, logging.NewNop())
	svc := NewLeagueService(src, gateway, team, gameweeks, logging.NewNop(), workers)
	svc.now = func() time.Time { return now }
	return svc
}

func TestLeagueService_ClassicStandingsWithLiveScores(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
	src := fullSource(now)
	src.classic = ClassicLeague{
		ID:   9,
		Name: "Office League",
		Rows: []LeagueRow{
			{EntryID: 42, EntryName: "The Invincibles", Rank: 1, Total: 400},
			{EntryID: 43, EntryName: "Second Place", Rank: 2, Total: 390},
		},
	}

	standings, err := newLeagueService(src, now, 4).GetClassicStandings(context.Background(), 9, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if standings.Gameweek != 7 {
		t.Fatalf("gameweek = %d, want current round 7", standings.Gameweek)
	}
	if len(standings.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(standings.Rows))
	}
	for _, row := range standings.Rows {
		// The stub serves the same squad for every entry: 11 starters
		// at 2 points.
		if row.LivePoints != 22 {
			t.Fatalf("entry %d live points = %d, want 22", row.EntryID, row.LivePoints)
		}
		if !row.ScoreLive {
			t.Fatalf("entry %d score not live", row.EntryID)
		}
		if row.Total == 0 {
			t.Fatalf("official total dropped for entry %d", row.EntryID)
		}
	}
}

func TestLeagueService_MemberFailureKeepsOfficialRow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
	src := fullSource(now)
	src.picksErr = errors.New("picks down")
	src.classic = ClassicLeague{
		ID:   9,
		Rows: []LeagueRow{{EntryID: 42, Rank: 1, Total: 400}},
	}

	standings, err := newLeagueService(src, now, 2).GetClassicStandings(context.Background(), 9, 1)
	if err != nil {
		t.Fatalf("member failure failed the page: %v", err)
	}
	row := standings.Rows[0]
	if row.ScoreLive || row.LivePoints != 0 {
		t.Fatalf("failed member row carries live data: %+v", row)
	}
	if row.Total != 400 {
		t.Fatalf("official total lost: %+v", row)
	}
}

func TestLeagueService_H2HMatchesScored(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
	src := fullSource(now)
	src.h2h = H2HLeague{
		ID:   11,
		Name: "Cup",
		Matches: []H2HMatch{
			{Gameweek: 7, EntryA: 42, EntryB: 43, PointsA: 10, PointsB: 12},
			// Bye week: side B is the average with no entry id.
			{Gameweek: 7, EntryA: 44, EntryB: 0, PointsB: 30},
		},
	}

	standings, err := newLeagueService(src, now, 4).GetH2HStandings(context.Background(), 11, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scored := standings.Matches[0]
	if scored.LivePointsA != 22 || scored.LivePointsB != 22 {
		t.Fatalf("live points = %d/%d, want 22/22", scored.LivePointsA, scored.LivePointsB)
	}
	if !scored.ScoreLive {
		t.Fatalf("fully resolved match not live")
	}

	bye := standings.Matches[1]
	if bye.LivePointsA != 22 {
		t.Fatalf("bye match entry not scored: %+v", bye)
	}
	if bye.LivePointsB != 0 {
		t.Fatalf("average side got a live score: %+v", bye)
	}
	if !bye.ScoreLive {
		t.Fatalf("bye match not live despite resolved entry")
	}
}

func TestLeagueService_StandingsFetchFailure(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 7, 18, 0, 0, 0, time.UTC)
	src := fullSource(now)
	src.classicErr = errors.New("league down")

	_, err := newLeagueService(src, now, 2).GetClassicStandings(context.Background(), 9, 1)
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("error = %v, want ErrUpstreamUnavailable", err)
	}
}
