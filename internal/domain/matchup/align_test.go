package matchup

import (
	"testing"

	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/domain/squad"
)

func pick(id int, pos player.Position) squad.EnrichedPlayer {
	return squad.EnrichedPlayer{PlayerID: id, Position: pos}
}

func groupFor(t *testing.T, groups []PositionGroup, pos player.Position) PositionGroup {
	t.Helper()
	for _, g := range groups {
		if g.Position == pos {
			return g
		}
	}
	t.Fatalf("no group for %s", pos)
	return PositionGroup{}
}

func TestAlign_SharedPlayersPairFirst(t *testing.T) {
	t.Parallel()

	left := []squad.EnrichedPlayer{
		pick(1, player.PositionMidfielder),
		pick(2, player.PositionMidfielder),
		pick(3, player.PositionMidfielder),
	}
	// Player 3 sits first on the right; identity still wins over order.
	right := []squad.EnrichedPlayer{
		pick(3, player.PositionMidfielder),
		pick(4, player.PositionMidfielder),
		pick(5, player.PositionMidfielder),
	}

	mids := groupFor(t, Align(left, right), player.PositionMidfielder)
	if len(mids.Pairs) != 3 {
		t.Fatalf("pairs = %d, want 3", len(mids.Pairs))
	}
	if mids.Pairs[0].Left.PlayerID != 3 || mids.Pairs[0].Right.PlayerID != 3 {
		t.Fatalf("shared player not paired with itself: %+v", mids.Pairs[0])
	}
	if mids.Pairs[1].Left.PlayerID != 1 || mids.Pairs[1].Right.PlayerID != 4 {
		t.Fatalf("leftover order pairing wrong: %+v", mids.Pairs[1])
	}
	if mids.Pairs[2].Left.PlayerID != 2 || mids.Pairs[2].Right.PlayerID != 5 {
		t.Fatalf("leftover order pairing wrong: %+v", mids.Pairs[2])
	}
}

func TestAlign_UnevenGroupsPadWithNil(t *testing.T) {
	t.Parallel()

	left := []squad.EnrichedPlayer{
		pick(1, player.PositionForward),
		pick(2, player.PositionForward),
		pick(3, player.PositionForward),
	}
	right := []squad.EnrichedPlayer{
		pick(4, player.PositionForward),
	}

	fwds := groupFor(t, Align(left, right), player.PositionForward)
	if len(fwds.Pairs) != 3 {
		t.Fatalf("pairs = %d, want 3", len(fwds.Pairs))
	}
	if fwds.Pairs[1].Right != nil || fwds.Pairs[2].Right != nil {
		t.Fatalf("longer side not padded against nil: %+v", fwds.Pairs)
	}
	if fwds.Pairs[1].Left == nil || fwds.Pairs[2].Left == nil {
		t.Fatalf("left players dropped from uneven group")
	}
}

func TestAlign_RightOnlyGroup(t *testing.T) {
	t.Parallel()

	left := []squad.EnrichedPlayer{pick(1, player.PositionDefender)}
	right := []squad.EnrichedPlayer{
		pick(2, player.PositionDefender),
		pick(3, player.PositionForward),
	}

	groups := Align(left, right)

	fwds := groupFor(t, groups, player.PositionForward)
	if len(fwds.Pairs) != 1 || fwds.Pairs[0].Left != nil || fwds.Pairs[0].Right.PlayerID != 3 {
		t.Fatalf("right-only player misaligned: %+v", fwds.Pairs)
	}
	gks := groupFor(t, groups, player.PositionGoalkeeper)
	if len(gks.Pairs) != 0 {
		t.Fatalf("empty group produced pairs: %+v", gks.Pairs)
	}
}

func TestAlign_GroupsFollowPositionOrder(t *testing.T) {
	t.Parallel()

	groups := Align(nil, nil)
	if len(groups) != len(player.PositionOrder) {
		t.Fatalf("groups = %d, want %d", len(groups), len(player.PositionOrder))
	}
	for i, pos := range player.PositionOrder {
		if groups[i].Position != pos {
			t.Fatalf("group %d = %s, want %s", i, groups[i].Position, pos)
		}
	}
}
