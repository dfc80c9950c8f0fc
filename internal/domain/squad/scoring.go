package squad

import "github.com/openfpl/live/internal/domain/player"

// Resolve turns an enriched 15-pick squad into the team's gameweek
// state: automatic substitutions, captaincy credit, and the aggregate
// score. The starting and bench slices are modified in place and
// returned inside the state.
func Resolve(starting, bench []EnrichedPlayer, chip Chip, transferCost int) TeamGameweekState {
	ApplyAutoSubs(starting, bench, chip)

	multiplier := 2
	if chip == ChipTripleCaptain {
		multiplier = 3
	}

	total := 0
	for i := range starting {
		total += starting[i].RawScore
	}
	for i := range bench {
		if bench[i].SubStatus == SubIn {
			total += bench[i].RawScore
		}
	}
	total -= transferCost

	for i := range starting {
		starting[i].FinalPoints = starting[i].RawScore
	}
	for i := range bench {
		bench[i].FinalPoints = bench[i].RawScore
	}

	if credited := creditedCaptain(starting, bench); credited != nil {
		total += (multiplier - 1) * credited.RawScore
		// Display value only; the extra above is the single place the
		// multiplier enters the total.
		credited.FinalPoints = credited.RawScore * multiplier
	}

	state := TeamGameweekState{
		Starting:       starting,
		Bench:          bench,
		TransferCost:   transferCost,
		ActiveChip:     chip,
		TotalScore:     total,
		PredictedScore: predictScore(starting, bench, chip, multiplier),
	}

	countPlayers(&state)
	return state
}

// creditedCaptain picks who receives the multiplier: the captain when
// they can still be credited, otherwise the vice-captain, otherwise
// nobody.
func creditedCaptain(starting, bench []EnrichedPlayer) *EnrichedPlayer {
	var vice *EnrichedPlayer
	for _, group := range [][]EnrichedPlayer{starting, bench} {
		for i := range group {
			switch group[i].Role {
			case RoleCaptain:
				if group[i].Status != player.StatusUnplayed {
					return &group[i]
				}
			case RoleViceCaptain:
				if group[i].Status != player.StatusUnplayed {
					vice = &group[i]
				}
			}
		}
	}
	return vice
}

func predictScore(starting, bench []EnrichedPlayer, chip Chip, multiplier int) float64 {
	predicted := 0.0
	for i := range starting {
		predicted += starting[i].ExpectedPoints
		if starting[i].Role == RoleCaptain {
			predicted += float64(multiplier-1) * starting[i].ExpectedPoints
		}
	}
	if chip == ChipBenchBoost {
		for i := range bench {
			predicted += bench[i].ExpectedPoints
		}
	}
	return predicted
}

// countPlayers fills ActivePlayers (on the pitch or already played)
// and RemainPlayers (yet to play) over the counted set: the starting
// XI minus unreplaced slots, plus subbed-in bench players.
func countPlayers(state *TeamGameweekState) {
	tally := func(p EnrichedPlayer) {
		switch p.Status {
		case player.StatusPlaying, player.StatusPlayed:
			state.ActivePlayers++
		case player.StatusNotPlayed:
			state.RemainPlayers++
		}
	}

	for _, p := range state.Starting {
		if p.SubStatus != SubOut {
			tally(p)
		}
	}
	for _, p := range state.Bench {
		if p.SubStatus == SubIn {
			tally(p)
		}
	}
}
