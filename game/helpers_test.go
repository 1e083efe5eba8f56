package game

import (
	"bytes"
	"testing"

	"skirmish/random"

	"github.com/stretchr/testify/require"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

var testCatalog = []Unit{
	{Name: "Bronze Guard", Category: Guard, Attack: 500, Defense: 800},
	{Name: "Silver Maid", Category: Maid, Attack: 700, Defense: 300},
	{Name: "Golden Builder", Category: Builder, Attack: 600, Defense: 300},
}

// newTestGame sets up a game over a 10 card deck and wipes both hands so each
// test starts from a known position.
func newTestGame(t *testing.T) (*Game, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	g, err := NewGame(random.NewWithSource(zeroSource{}), testCatalog, []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1}, WithOutput(out))
	require.NoError(t, err)
	g.players[Self].hand = []Unit{}
	g.players[Opponent].hand = []Unit{}
	out.Reset()
	return g, out
}

// put places u for side directly, keeping the board count in step.
func put(g *Game, p Position, u Unit, side Side) *PlacedUnit {
	pu := NewPlacedUnit(u, side)
	g.board.Place(p, pu)
	g.players[side].incrementBoardCount()
	return pu
}

func pos(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParsePosition(s)
	require.NoError(t, err)
	return p
}

// requireCountsMatchBoard checks that every board count equals the number of
// non-king units the side has on the grid.
func requireCountsMatchBoard(t *testing.T, g *Game) {
	t.Helper()
	for _, side := range []Side{Self, Opponent} {
		require.Equal(t, g.board.Units(side), g.players[side].BoardCount(), "Board count of %s should match the grid", side)
	}
}
