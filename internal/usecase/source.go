package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openfpl/live/internal/domain/fixture"
	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/domain/squad"
)

// Cache TTLs per resource class. Live-round resources move every
// minute; the reference catalog is effectively static within a round.
const (
	ttlVolatile  = 60 * time.Second
	ttlReference = 300 * time.Second
)

// Gameweek is one round from the reference catalog.
type Gameweek struct {
	ID         int
	Name       string
	DeadlineAt time.Time
	IsCurrent  bool
	IsNext     bool
	Finished   bool
}

// Team is one club from the reference catalog.
type Team struct {
	ID        int
	Name      string
	ShortName string
}

// Catalog is the decoded reference data: rounds, clubs, and players.
type Catalog struct {
	Gameweeks []Gameweek
	Teams     map[int]Team
	Players   map[int]player.Player
}

// CurrentGameweek returns the round flagged current by the upstream.
func (c Catalog) CurrentGameweek() (Gameweek, error) {
	for _, gw := range c.Gameweeks {
		if gw.IsCurrent {
			return gw, nil
		}
	}
	return Gameweek{}, fmt.Errorf("%w: no current gameweek in catalog", ErrDataShape)
}

// PlayerLive is one player's live row for a round.
type PlayerLive struct {
	PlayerID    int
	Minutes     int
	TotalPoints int
	Bonus       int
}

// LiveStats indexes live rows by player id.
type LiveStats map[int]PlayerLive

// DayStatus is one match day of the current round.
type DayStatus struct {
	Date       string
	BonusAdded bool
	PointsAt   string
}

// EventStatus is the upstream's view of the round in progress.
type EventStatus struct {
	Gameweek int
	Days     []DayStatus
}

// BonusFinalized reports whether final bonus has been folded into the
// live scores for the given match day (upstream date format
// "2006-01-02").
func (s EventStatus) BonusFinalized(day string) bool {
	for _, d := range s.Days {
		if d.Date == day {
			return d.BonusAdded
		}
	}
	return false
}

// EntryInfo is the public profile of one fantasy team.
type EntryInfo struct {
	ID            int
	Name          string
	PlayerName    string
	OverallPoints int
	OverallRank   int
}

// PicksBundle is one entry's squad for one round.
type PicksBundle struct {
	Picks        []squad.Pick
	ActiveChip   squad.Chip
	TransferCost int
}

// Transfer is one completed transfer for an entry.
type Transfer struct {
	PlayerInID  int
	PlayerOutID int
	Gameweek    int
	Time        time.Time
}

// HistoryRound is one past round from a player's element summary.
type HistoryRound struct {
	Gameweek int
	Points   int
	Minutes  int
	Goals    int
	Assists  int
	Bonus    int
}

// UpcomingFixture is one scheduled match from a player's element
// summary.
type UpcomingFixture struct {
	Gameweek       int
	OpponentTeamID int
	IsHome         bool
	KickoffAt      time.Time
	Difficulty     int
}

// PlayerSummary is the per-player history and schedule.
type PlayerSummary struct {
	History  []HistoryRound
	Upcoming []UpcomingFixture
}

// LeagueRow is one standing row of a classic league.
type LeagueRow struct {
	EntryID    int
	EntryName  string
	PlayerName string
	Rank       int
	LastRank   int
	Total      int
}

// ClassicLeague is one page of classic-league standings.
type ClassicLeague struct {
	ID      int
	Name    string
	Rows    []LeagueRow
	HasNext bool
}

// H2HMatch is one head-to-head pairing for a round.
type H2HMatch struct {
	Gameweek   int
	EntryA     int
	EntryAName string
	EntryB     int
	EntryBName string
	PointsA    int
	PointsB    int
}

// H2HLeague is one page of head-to-head matches.
type H2HLeague struct {
	ID      int
	Name    string
	Matches []H2HMatch
	HasNext bool
}

// SourceClient is the upstream fantasy API surface the services
// consume. external/fplapi provides the production implementation.
type SourceClient interface {
	Bootstrap(ctx context.Context) (Catalog, error)
	EventStatus(ctx context.Context) (EventStatus, error)
	Fixtures(ctx context.Context, gameweek int) ([]fixture.Fixture, error)
	Entry(ctx context.Context, entryID int) (EntryInfo, error)
	Picks(ctx context.Context, entryID, gameweek int) (PicksBundle, error)
	Transfers(ctx context.Context, entryID int) ([]Transfer, error)
	ElementSummary(ctx context.Context, playerID int) (PlayerSummary, error)
	Live(ctx context.Context, gameweek int) (LiveStats, error)
	ClassicLeague(ctx context.Context, leagueID, page int) (ClassicLeague, error)
	H2HLeague(ctx context.Context, leagueID, page int) (H2HLeague, error)
}
