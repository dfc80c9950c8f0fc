package player

import "time"

// PlayStatus is a point-in-time view of whether a player has played,
// is playing, or can still play in a round. It is recomputed on every
// request and never stored.
type PlayStatus string

const (
	// StatusUnplayed means the player cannot score this round: no
	// fixture exists, the match is settled without minutes, or the
	// upstream reports a zero chance of playing.
	StatusUnplayed PlayStatus = "unplayed"
	// StatusNotPlayed means the player's match has not started.
	StatusNotPlayed PlayStatus = "notplayed"
	StatusPlaying   PlayStatus = "playing"
	StatusPlayed    PlayStatus = "played"
	// StatusBenched means the match is well underway and the player has
	// not come on.
	StatusBenched PlayStatus = "benched"
)

const (
	// matchSettledAfter approximates "the match is definitely over" when
	// the upstream has not yet flagged it finished. Heuristic, not an
	// upstream guarantee.
	matchSettledAfter = 2 * time.Hour
	// benchCutoff is how far into a match a player with zero minutes is
	// considered an unused starter candidate.
	benchCutoff = 5 * time.Minute
)

// ClassifyInput carries everything the classifier needs; it is a pure
// function of this struct and nothing else.
type ClassifyInput struct {
	// FixtureFound is false when no match record exists for the
	// player's team in the round.
	FixtureFound        bool
	Minutes             int
	KickoffAt           time.Time
	FinishedProvisional bool
	// CurrentRound marks the live gameweek; ChanceOfPlaying is only
	// meaningful there.
	CurrentRound    bool
	ChanceOfPlaying *int
	Now             time.Time
}

// Classify resolves the play status for one player. The branches are
// ordered; the first match wins.
//
// A match that kicked off less than five minutes ago with zero recorded
// minutes resolves to StatusNotPlayed: the minutes feed lags kickoff,
// so the player is treated as not yet having played rather than
// benched.
func Classify(in ClassifyInput) PlayStatus {
	if !in.FixtureFound {
		return StatusUnplayed
	}
	if in.CurrentRound && in.Minutes == 0 && in.ChanceOfPlaying != nil && *in.ChanceOfPlaying == 0 {
		return StatusUnplayed
	}

	settled := in.FinishedProvisional || !in.Now.Before(in.KickoffAt.Add(matchSettledAfter))

	if in.Minutes > 0 && !settled {
		return StatusPlaying
	}

	if !in.Now.Before(in.KickoffAt) {
		if settled {
			if in.Minutes == 0 {
				return StatusUnplayed
			}
			return StatusPlayed
		}
		if in.Now.Sub(in.KickoffAt) >= benchCutoff && in.Minutes == 0 {
			return StatusBenched
		}
		return StatusNotPlayed
	}

	return StatusNotPlayed
}
