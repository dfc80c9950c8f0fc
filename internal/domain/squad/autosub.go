package squad

import "github.com/openfpl/live/internal/domain/player"

// formationFloor is the minimum post-substitution starting formation.
var formationFloor = map[player.Position]int{
	player.PositionGoalkeeper: 1,
	player.PositionDefender:   3,
	player.PositionMidfielder: 2,
	player.PositionForward:    1,
}

// ApplyAutoSubs runs the automatic substitution walk in place.
//
// Starting players are visited in pick order; each one that cannot play
// is marked Out and the bench is scanned in pick order for the first
// player who can play, is not already subbed in, and whose entry keeps
// the formation above the floor. An unfillable slot is left unfilled
// and the team plays short. With a bench boost active no substitution
// happens at all; every bench player counts as In.
func ApplyAutoSubs(starting, bench []EnrichedPlayer, chip Chip) {
	if chip == ChipBenchBoost {
		for i := range bench {
			bench[i].SubStatus = SubIn
		}
		return
	}

	counts := make(map[player.Position]int, len(formationFloor))
	for i := range starting {
		counts[starting[i].Position]++
	}

	for i := range starting {
		if starting[i].Status != player.StatusUnplayed {
			continue
		}
		starting[i].SubStatus = SubOut

		for j := range bench {
			candidate := &bench[j]
			if candidate.Status == player.StatusUnplayed || candidate.SubStatus == SubIn {
				continue
			}
			if !swapKeepsFormation(counts, starting[i].Position, candidate.Position) {
				continue
			}
			candidate.SubStatus = SubIn
			counts[starting[i].Position]--
			counts[candidate.Position]++
			break
		}
	}
}

func swapKeepsFormation(counts map[player.Position]int, out, in player.Position) bool {
	if out == in {
		return true
	}
	// A goalkeeper only ever covers a goalkeeper; the pitch never
	// carries two.
	if in == player.PositionGoalkeeper {
		return false
	}
	return counts[out]-1 >= formationFloor[out]
}
