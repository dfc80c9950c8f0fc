package squad

import (
	"testing"

	"github.com/openfpl/live/internal/domain/player"
)

func enriched(id, pickPosition int, pos player.Position, status player.PlayStatus, raw int) EnrichedPlayer {
	return EnrichedPlayer{
		PlayerID:     id,
		PickPosition: pickPosition,
		Position:     pos,
		Status:       status,
		SubStatus:    SubNone,
		Role:         RoleNone,
		RawScore:     raw,
	}
}

// testSquad is a 4-4-2 with a standard GKP/DEF/MID/FWD bench.
func testSquad() ([]EnrichedPlayer, []EnrichedPlayer) {
	starting := []EnrichedPlayer{
		enriched(1, 1, player.PositionGoalkeeper, player.StatusPlayed, 2),
		enriched(2, 2, player.PositionDefender, player.StatusPlayed, 6),
		enriched(3, 3, player.PositionDefender, player.StatusPlayed, 1),
		enriched(4, 4, player.PositionDefender, player.StatusPlayed, 2),
		enriched(5, 5, player.PositionDefender, player.StatusPlayed, 0),
		enriched(6, 6, player.PositionMidfielder, player.StatusPlayed, 5),
		enriched(7, 7, player.PositionMidfielder, player.StatusPlayed, 3),
		enriched(8, 8, player.PositionMidfielder, player.StatusPlayed, 2),
		enriched(9, 9, player.PositionMidfielder, player.StatusPlayed, 7),
		enriched(10, 10, player.PositionForward, player.StatusPlayed, 9),
		enriched(11, 11, player.PositionForward, player.StatusPlayed, 2),
	}
	bench := []EnrichedPlayer{
		enriched(12, 12, player.PositionGoalkeeper, player.StatusPlayed, 1),
		enriched(13, 13, player.PositionDefender, player.StatusPlayed, 2),
		enriched(14, 14, player.PositionMidfielder, player.StatusPlayed, 1),
		enriched(15, 15, player.PositionForward, player.StatusPlayed, 4),
	}
	return starting, bench
}

func assertFormationFloor(t *testing.T, starting, bench []EnrichedPlayer) {
	t.Helper()

	counts := map[player.Position]int{}
	for _, p := range starting {
		if p.SubStatus != SubOut {
			counts[p.Position]++
		}
	}
	for _, p := range bench {
		if p.SubStatus == SubIn {
			counts[p.Position]++
		}
	}

	if counts[player.PositionGoalkeeper] < 1 ||
		counts[player.PositionDefender] < 3 ||
		counts[player.PositionMidfielder] < 2 ||
		counts[player.PositionForward] < 1 {
		t.Fatalf("formation floor violated: %v", counts)
	}
}

func TestApplyAutoSubs_GoalkeeperReplacedByBenchGoalkeeper(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[0].Status = player.StatusUnplayed
	bench[0].Status = player.StatusPlaying

	ApplyAutoSubs(starting, bench, ChipNone)

	if starting[0].SubStatus != SubOut {
		t.Fatalf("unplayed goalkeeper not marked out: %s", starting[0].SubStatus)
	}
	if bench[0].SubStatus != SubIn {
		t.Fatalf("bench goalkeeper not subbed in: %s", bench[0].SubStatus)
	}
	// The outfield bench players must not cover a goalkeeper slot.
	for _, p := range bench[1:] {
		if p.SubStatus == SubIn {
			t.Fatalf("outfield player %d subbed in for a goalkeeper", p.PlayerID)
		}
	}
	assertFormationFloor(t, starting, bench)
}

func TestApplyAutoSubs_DefenderFloorBlocksSecondCover(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	// Two of four defenders out; the bench goalkeeper and defender are
	// unavailable. The midfielder may cover the first slot (4-1=3
	// defenders keeps the floor) but nothing may cover the second,
	// because that would drop the defence below three.
	starting[2].Status = player.StatusUnplayed
	starting[3].Status = player.StatusUnplayed
	bench[0].Status = player.StatusUnplayed
	bench[1].Status = player.StatusUnplayed

	ApplyAutoSubs(starting, bench, ChipNone)

	if bench[2].SubStatus != SubIn {
		t.Fatalf("midfielder did not cover the first defender slot: %+v", bench)
	}
	if bench[3].SubStatus == SubIn {
		t.Fatalf("forward covered a slot that would break the defender floor")
	}
	if starting[2].SubStatus != SubOut || starting[3].SubStatus != SubOut {
		t.Fatalf("unplayed defenders not marked out")
	}
}

func TestApplyAutoSubs_NoEligibleBenchLeavesSlotUnfilled(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[10].Status = player.StatusUnplayed
	for i := range bench {
		bench[i].Status = player.StatusUnplayed
	}

	ApplyAutoSubs(starting, bench, ChipNone)

	if starting[10].SubStatus != SubOut {
		t.Fatalf("unplayed forward not marked out")
	}
	for _, p := range bench {
		if p.SubStatus == SubIn {
			t.Fatalf("unplayable bench player %d subbed in", p.PlayerID)
		}
	}
}

func TestApplyAutoSubs_BenchBoostSkipsTheWalk(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[0].Status = player.StatusUnplayed

	ApplyAutoSubs(starting, bench, ChipBenchBoost)

	if starting[0].SubStatus != SubNone {
		t.Fatalf("bench boost still marked starter out: %s", starting[0].SubStatus)
	}
	for _, p := range bench {
		if p.SubStatus != SubIn {
			t.Fatalf("bench boost did not count bench player %d", p.PlayerID)
		}
	}
}

func TestApplyAutoSubs_BenchScanFollowsPickOrder(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[8].Status = player.StatusUnplayed

	ApplyAutoSubs(starting, bench, ChipNone)

	// Bench defender sits ahead of the midfielder in pick order and a
	// 5-3-2 keeps the floor, so the defender comes on.
	if bench[1].SubStatus != SubIn {
		t.Fatalf("first eligible bench player skipped: %+v", bench)
	}
	if bench[2].SubStatus == SubIn {
		t.Fatalf("bench scan did not stop at the first eligible player")
	}
	assertFormationFloor(t, starting, bench)
}
