// Package matchup aligns two resolved squads position by position for
// head-to-head display.
package matchup

import (
	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/domain/squad"
)

// Pairing places one player from each side next to each other. Either
// side is nil when the opposing group is longer.
type Pairing struct {
	Left  *squad.EnrichedPlayer
	Right *squad.EnrichedPlayer
}

// PositionGroup is the aligned rows for a single position.
type PositionGroup struct {
	Position player.Position
	Pairs    []Pairing
}

// Align pairs two squads within each position group. Players owned by
// both sides are paired with themselves first, in the left side's
// order; the remainder is paired by order of appearance, and the
// longer side's leftovers pair against nil.
func Align(left, right []squad.EnrichedPlayer) []PositionGroup {
	leftByPos := groupByPosition(left)
	rightByPos := groupByPosition(right)

	groups := make([]PositionGroup, 0, len(player.PositionOrder))
	for _, pos := range player.PositionOrder {
		groups = append(groups, PositionGroup{
			Position: pos,
			Pairs:    alignGroup(leftByPos[pos], rightByPos[pos]),
		})
	}
	return groups
}

func groupByPosition(players []squad.EnrichedPlayer) map[player.Position][]*squad.EnrichedPlayer {
	grouped := make(map[player.Position][]*squad.EnrichedPlayer, len(player.PositionOrder))
	for i := range players {
		grouped[players[i].Position] = append(grouped[players[i].Position], &players[i])
	}
	return grouped
}

func alignGroup(left, right []*squad.EnrichedPlayer) []Pairing {
	rightByID := make(map[int]int, len(right))
	for i, p := range right {
		rightByID[p.PlayerID] = i
	}

	pairs := make([]Pairing, 0, max(len(left), len(right)))
	usedRight := make([]bool, len(right))
	usedLeft := make([]bool, len(left))

	// Shared players first, keyed on identity.
	for i, l := range left {
		j, shared := rightByID[l.PlayerID]
		if !shared {
			continue
		}
		pairs = append(pairs, Pairing{Left: l, Right: right[j]})
		usedLeft[i] = true
		usedRight[j] = true
	}

	// Remaining players pair by order of appearance.
	j := 0
	for i, l := range left {
		if usedLeft[i] {
			continue
		}
		for j < len(right) && usedRight[j] {
			j++
		}
		if j < len(right) {
			pairs = append(pairs, Pairing{Left: l, Right: right[j]})
			usedRight[j] = true
			continue
		}
		pairs = append(pairs, Pairing{Left: l})
	}
	for j < len(right) {
		if !usedRight[j] {
			pairs = append(pairs, Pairing{Right: right[j]})
		}
		j++
	}
	return pairs
}
