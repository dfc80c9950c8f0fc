package squad

import "github.com/openfpl/live/internal/domain/player"

const (
	StartingSize = 11
	BenchSize    = 4
	SquadSize    = StartingSize + BenchSize
)

// SubStatus records a player's part in automatic substitution.
type SubStatus string

const (
	SubNone SubStatus = "None"
	SubIn   SubStatus = "In"
	SubOut  SubStatus = "Out"
)

// CaptainRole marks the captaincy designation on a pick.
type CaptainRole string

const (
	RoleNone        CaptainRole = "N"
	RoleCaptain     CaptainRole = "C"
	RoleViceCaptain CaptainRole = "VC"
)

// Chip is a one-off rule modifier for a gameweek. Only BB and TC alter
// scoring; FH and WC are carried through for display.
type Chip string

const (
	ChipNone          Chip = "None"
	ChipBenchBoost    Chip = "BB"
	ChipTripleCaptain Chip = "TC"
	ChipFreeHit       Chip = "FH"
	ChipWildcard      Chip = "WC"
)

// ChipFromAPI maps the upstream active-chip string.
func ChipFromAPI(raw string) Chip {
	switch raw {
	case "bboost":
		return ChipBenchBoost
	case "3xc":
		return ChipTripleCaptain
	case "freehit":
		return ChipFreeHit
	case "wildcard":
		return ChipWildcard
	default:
		return ChipNone
	}
}

// Pick is one of the fifteen roster slots for a team and gameweek.
// PickPosition 1-11 is the starting XI, 12-15 the bench, both in
// upstream order.
type Pick struct {
	PlayerID      int
	PickPosition  int
	IsCaptain     bool
	IsViceCaptain bool
}

// EnrichedPlayer joins a pick with live data for one request. It is
// discarded after the response is built.
type EnrichedPlayer struct {
	PlayerID       int
	Name           string
	TeamID         int
	TeamShort      string
	Position       player.Position
	Price          float64
	PickPosition   int
	Status         player.PlayStatus
	SubStatus      SubStatus
	Role           CaptainRole
	RawScore       int
	FinalPoints    int
	ExpectedPoints float64
}

// TeamGameweekState is one team's resolved gameweek: the post-
// substitution squad plus the aggregate score.
type TeamGameweekState struct {
	Starting       []EnrichedPlayer
	Bench          []EnrichedPlayer
	TransferCost   int
	ActiveChip     Chip
	ActivePlayers  int
	RemainPlayers  int
	TotalScore     int
	PredictedScore float64
}
