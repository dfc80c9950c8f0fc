package fixture

import "sort"

// BonusAward is the provisional bonus for one player in one fixture.
// It becomes invalid once the upstream finalizes bonus for the match.
type BonusAward struct {
	FixtureID    int
	PlayerID     int
	RankingValue int
	BonusPoints  int
}

const bonusPool = 3

// RankBonus awards provisional bonus points from a fixture's merged
// ranking metric using competition ranking with pool depletion: the
// pool starts at 3, every member of the top tie-group receives the
// current pool, and the pool shrinks by the group size. A 4-way tie
// for first therefore exhausts the pool and no lower tier scores,
// while a 2-way tie for first leaves 1 point for the next player.
//
// Entries outside the awarded tiers are returned with zero points so
// callers see every ranked player. Output is ordered by ranking value
// descending, then player id ascending.
func RankBonus(fixtureID int, ranking []StatValue) []BonusAward {
	if len(ranking) == 0 {
		return nil
	}

	remaining := make([]StatValue, len(ranking))
	copy(remaining, ranking)
	sort.SliceStable(remaining, func(i, j int) bool {
		if remaining[i].Value != remaining[j].Value {
			return remaining[i].Value > remaining[j].Value
		}
		return remaining[i].PlayerID < remaining[j].PlayerID
	})

	out := make([]BonusAward, 0, len(remaining))
	pool := bonusPool
	awarded := 0

	idx := 0
	for idx < len(remaining) && pool > 0 && awarded < bonusPool {
		top := remaining[idx].Value
		groupEnd := idx
		for groupEnd < len(remaining) && remaining[groupEnd].Value == top {
			groupEnd++
		}

		for _, entry := range remaining[idx:groupEnd] {
			out = append(out, BonusAward{
				FixtureID:    fixtureID,
				PlayerID:     entry.PlayerID,
				RankingValue: entry.Value,
				BonusPoints:  pool,
			})
		}
		awarded += groupEnd - idx
		pool -= groupEnd - idx
		idx = groupEnd
	}

	for _, entry := range remaining[idx:] {
		out = append(out, BonusAward{
			FixtureID:    fixtureID,
			PlayerID:     entry.PlayerID,
			RankingValue: entry.Value,
		})
	}

	return out
}
