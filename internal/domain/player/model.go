package player

import "fmt"

// Position is a squad slot role in the upstream display order
// GKP, DEF, MID, FWD.
type Position string

const (
	PositionGoalkeeper Position = "GKP"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

// PositionOrder fixes the grouping order used for display and matchup
// alignment.
var PositionOrder = []Position{
	PositionGoalkeeper,
	PositionDefender,
	PositionMidfielder,
	PositionForward,
}

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

// PositionFromElementType maps the upstream numeric element type.
func PositionFromElementType(elementType int) (Position, error) {
	switch elementType {
	case 1:
		return PositionGoalkeeper, nil
	case 2:
		return PositionDefender, nil
	case 3:
		return PositionMidfielder, nil
	case 4:
		return PositionForward, nil
	default:
		return "", fmt.Errorf("unknown element type %d", elementType)
	}
}

// Player is one catalog row from the upstream reference data.
type Player struct {
	ID             int
	Name           string
	TeamID         int
	Position       Position
	Price          float64
	ExpectedPoints float64
	// ChanceOfPlaying is the upstream availability percentage for the
	// current round; nil when the upstream reports nothing.
	ChanceOfPlaying *int
}
