package fixture

import (
	"testing"
	"time"
)

func awardsByPlayer(t *testing.T, awards []BonusAward) map[int]int {
	t.Helper()
	out := make(map[int]int, len(awards))
	for _, award := range awards {
		if _, dup := out[award.PlayerID]; dup {
			t.Fatalf("duplicate award for player %d", award.PlayerID)
		}
		out[award.PlayerID] = award.BonusPoints
	}
	return out
}

func TestRankBonus_TieForFirstAbsorbsPool(t *testing.T) {
	t.Parallel()

	awards := RankBonus(7, []StatValue{
		{PlayerID: 1, Value: 10},
		{PlayerID: 2, Value: 10},
		{PlayerID: 3, Value: 8},
		{PlayerID: 4, Value: 5},
	})

	got := awardsByPlayer(t, awards)
	want := map[int]int{1: 3, 2: 3, 3: 1, 4: 0}
	for playerID, points := range want {
		if got[playerID] != points {
			t.Fatalf("player %d: got %d bonus, want %d (all: %v)", playerID, got[playerID], points, got)
		}
	}
}

func TestRankBonus_FourWayTieExhaustsPool(t *testing.T) {
	t.Parallel()

	awards := RankBonus(7, []StatValue{
		{PlayerID: 1, Value: 10},
		{PlayerID: 2, Value: 10},
		{PlayerID: 3, Value: 10},
		{PlayerID: 4, Value: 10},
		{PlayerID: 5, Value: 9},
	})

	got := awardsByPlayer(t, awards)
	for playerID := 1; playerID <= 4; playerID++ {
		if got[playerID] != 3 {
			t.Fatalf("player %d: got %d bonus, want 3", playerID, got[playerID])
		}
	}
	// The pool is exhausted; no second tier may be awarded.
	if got[5] != 0 {
		t.Fatalf("player 5: got %d bonus, want 0", got[5])
	}
}

func TestRankBonus_SoloTopThenTiedSecond(t *testing.T) {
	t.Parallel()

	awards := RankBonus(7, []StatValue{
		{PlayerID: 1, Value: 9},
		{PlayerID: 2, Value: 7},
		{PlayerID: 3, Value: 7},
		{PlayerID: 4, Value: 4},
	})

	got := awardsByPlayer(t, awards)
	want := map[int]int{1: 3, 2: 2, 3: 2, 4: 0}
	for playerID, points := range want {
		if got[playerID] != points {
			t.Fatalf("player %d: got %d bonus, want %d (all: %v)", playerID, got[playerID], points, got)
		}
	}
}

func TestRankBonus_OutputOrderIsDeterministic(t *testing.T) {
	t.Parallel()

	awards := RankBonus(3, []StatValue{
		{PlayerID: 9, Value: 4},
		{PlayerID: 2, Value: 7},
		{PlayerID: 5, Value: 7},
		{PlayerID: 1, Value: 9},
	})

	wantOrder := []int{1, 2, 5, 9}
	if len(awards) != len(wantOrder) {
		t.Fatalf("got %d awards, want %d", len(awards), len(wantOrder))
	}
	for i, playerID := range wantOrder {
		if awards[i].PlayerID != playerID {
			t.Fatalf("award[%d].PlayerID = %d, want %d", i, awards[i].PlayerID, playerID)
		}
	}
}

func TestProvisionalBonusReady(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2026, time.January, 10, 15, 0, 0, 0, time.UTC)
	f := Fixture{ID: 1, KickoffAt: kickoff, Started: true}

	if f.ProvisionalBonusReady(kickoff.Add(20*time.Minute), false) {
		t.Fatal("bonus ranked before the thirty minute mark")
	}
	if !f.ProvisionalBonusReady(kickoff.Add(45*time.Minute), false) {
		t.Fatal("bonus not ranked for a live fixture past thirty minutes")
	}
	if f.ProvisionalBonusReady(kickoff.Add(45*time.Minute), true) {
		t.Fatal("bonus ranked after upstream finalized it")
	}

	notStarted := Fixture{ID: 2, KickoffAt: kickoff}
	if notStarted.ProvisionalBonusReady(kickoff.Add(time.Hour), false) {
		t.Fatal("bonus ranked for a fixture that never started")
	}
}
