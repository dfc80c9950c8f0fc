package fixture

import "time"

// StatValue is one (player, value) pair from a fixture stat array.
type StatValue struct {
	PlayerID int
	Value    int
}

// MatchStats are the per-fixture event arrays surfaced alongside bonus
// awards.
type MatchStats struct {
	Goals           []StatValue
	Assists         []StatValue
	OwnGoals        []StatValue
	PenaltiesSaved  []StatValue
	PenaltiesMissed []StatValue
}

// Fixture is one match of a gameweek as reported by the upstream
// source. It is refetched per request and never persisted.
type Fixture struct {
	ID                  int
	Gameweek            int
	HomeTeamID          int
	AwayTeamID          int
	KickoffAt           time.Time
	Minutes             int
	Started             bool
	Finished            bool
	FinishedProvisional bool
	// Ranking holds the merged home+away ranking metric used for
	// provisional bonus.
	Ranking []StatValue
	Stats   MatchStats
}

// bonusStableAfter is how long a match must have been live before its
// ranking metric is considered stable enough to rank provisional bonus.
const bonusStableAfter = 30 * time.Minute

// ProvisionalBonusReady reports whether provisional bonus should be
// computed for this fixture: live for at least thirty minutes and the
// final bonus not yet folded into the live scores.
func (f Fixture) ProvisionalBonusReady(now time.Time, bonusFinalized bool) bool {
	if !f.Started || bonusFinalized {
		return false
	}
	if f.KickoffAt.IsZero() {
		return false
	}
	return now.Sub(f.KickoffAt) >= bonusStableAfter
}

// ByTeam indexes fixtures by the ids of both participating teams.
func ByTeam(fixtures []Fixture) map[int]Fixture {
	out := make(map[int]Fixture, len(fixtures)*2)
	for _, f := range fixtures {
		out[f.HomeTeamID] = f
		out[f.AwayTeamID] = f
	}
	return out
}
