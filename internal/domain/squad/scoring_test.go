package squad

import (
	"testing"

	"github.com/openfpl/live/internal/domain/player"
)

func baseTotal(starting, bench []EnrichedPlayer) int {
	total := 0
	for _, p := range starting {
		total += p.RawScore
	}
	return total
}

func TestResolve_CaptainDoubledOnce(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[9].Role = RoleCaptain // forward, raw 9
	starting[1].Role = RoleViceCaptain

	base := baseTotal(starting, bench)
	state := Resolve(starting, bench, ChipNone, 0)

	if want := base + 9; state.TotalScore != want {
		t.Fatalf("total = %d, want %d", state.TotalScore, want)
	}
	if state.Starting[9].FinalPoints != 18 {
		t.Fatalf("captain final points = %d, want 18", state.Starting[9].FinalPoints)
	}
	// The vice-captain displays raw points; only the captain is
	// credited.
	if state.Starting[1].FinalPoints != state.Starting[1].RawScore {
		t.Fatalf("vice-captain final points = %d, want raw %d",
			state.Starting[1].FinalPoints, state.Starting[1].RawScore)
	}
}

func TestResolve_ViceCaptainFallback(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[9].Role = RoleCaptain
	starting[9].Status = player.StatusUnplayed
	starting[9].RawScore = 0
	starting[1].Role = RoleViceCaptain
	starting[1].RawScore = 6
	// Keep the squad full so no substitution interferes with the
	// captaincy check.
	for i := range bench {
		bench[i].Status = player.StatusUnplayed
	}

	base := baseTotal(starting, bench)
	state := Resolve(starting, bench, ChipNone, 0)

	// Exactly one extra credit of 6 beyond the base sum.
	if want := base + 6; state.TotalScore != want {
		t.Fatalf("total = %d, want %d", state.TotalScore, want)
	}
	if state.Starting[1].FinalPoints != 12 {
		t.Fatalf("vice-captain final points = %d, want 12", state.Starting[1].FinalPoints)
	}
	if state.Starting[9].FinalPoints != 0 {
		t.Fatalf("unplayed captain still credited")
	}
}

func TestResolve_NeitherCaptainNorViceQualifies(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[9].Role = RoleCaptain
	starting[9].Status = player.StatusUnplayed
	starting[9].RawScore = 0
	starting[1].Role = RoleViceCaptain
	starting[1].Status = player.StatusUnplayed
	starting[1].RawScore = 0
	for i := range bench {
		bench[i].Status = player.StatusUnplayed
	}

	base := baseTotal(starting, bench)
	state := Resolve(starting, bench, ChipNone, 0)

	if state.TotalScore != base {
		t.Fatalf("total = %d, want %d with no captaincy credit", state.TotalScore, base)
	}
}

func TestResolve_TripleCaptainMultiplier(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[9].Role = RoleCaptain // raw 9

	base := baseTotal(starting, bench)
	state := Resolve(starting, bench, ChipTripleCaptain, 0)

	if want := base + 2*9; state.TotalScore != want {
		t.Fatalf("total = %d, want %d", state.TotalScore, want)
	}
	if state.Starting[9].FinalPoints != 27 {
		t.Fatalf("captain final points = %d, want 27", state.Starting[9].FinalPoints)
	}
}

func TestResolve_BenchBoostCountsBenchScores(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	base := baseTotal(starting, bench)
	benchSum := 0
	for _, p := range bench {
		benchSum += p.RawScore
	}

	state := Resolve(starting, bench, ChipBenchBoost, 0)

	if want := base + benchSum; state.TotalScore != want {
		t.Fatalf("total = %d, want %d", state.TotalScore, want)
	}
}

func TestResolve_TransferCostDeducted(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	base := baseTotal(starting, bench)

	state := Resolve(starting, bench, ChipNone, 8)

	if want := base - 8; state.TotalScore != want {
		t.Fatalf("total = %d, want %d", state.TotalScore, want)
	}
}

func TestResolve_UnplayedKeeperSubbedScoreCounted(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[0].Status = player.StatusUnplayed
	starting[0].RawScore = 0
	bench[0].Status = player.StatusPlaying
	bench[0].RawScore = 5

	base := baseTotal(starting, bench)
	state := Resolve(starting, bench, ChipNone, 0)

	if state.Starting[0].SubStatus != SubOut {
		t.Fatalf("starter sub status = %s, want Out", state.Starting[0].SubStatus)
	}
	if state.Bench[0].SubStatus != SubIn {
		t.Fatalf("bench keeper sub status = %s, want In", state.Bench[0].SubStatus)
	}
	// The bench keeper's 5 counts; the starter contributes nothing.
	if want := base + 5; state.TotalScore != want {
		t.Fatalf("total = %d, want %d", state.TotalScore, want)
	}
}

func TestResolve_ActiveAndRemainingCounts(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	starting[3].Status = player.StatusPlaying
	starting[4].Status = player.StatusNotPlayed
	starting[5].Status = player.StatusNotPlayed
	starting[6].Status = player.StatusBenched

	state := Resolve(starting, bench, ChipNone, 0)

	// 7 played + 1 playing are active; 2 have matches still to come;
	// the benched starter is neither.
	if state.ActivePlayers != 8 {
		t.Fatalf("active = %d, want 8", state.ActivePlayers)
	}
	if state.RemainPlayers != 2 {
		t.Fatalf("remaining = %d, want 2", state.RemainPlayers)
	}
}

func TestResolve_PredictedScoreDoublesCaptain(t *testing.T) {
	t.Parallel()

	starting, bench := testSquad()
	for i := range starting {
		starting[i].ExpectedPoints = 2
	}
	for i := range bench {
		bench[i].ExpectedPoints = 1
	}
	starting[9].Role = RoleCaptain

	state := Resolve(starting, bench, ChipNone, 0)
	if state.PredictedScore != 24 { // 11*2 + captain extra 2
		t.Fatalf("predicted = %v, want 24", state.PredictedScore)
	}

	starting2, bench2 := testSquad()
	for i := range starting2 {
		starting2[i].ExpectedPoints = 2
	}
	for i := range bench2 {
		bench2[i].ExpectedPoints = 1
	}
	starting2[9].Role = RoleCaptain

	boosted := Resolve(starting2, bench2, ChipBenchBoost, 0)
	if boosted.PredictedScore != 28 { // 24 + bench 4
		t.Fatalf("bench boost predicted = %v, want 28", boosted.PredictedScore)
	}
}
