package game

import (
	"testing"

	"skirmish/meta"
	"skirmish/random"

	"github.com/stretchr/testify/require"
)

var (
	guard   = Unit{Name: "Bronze Guard", Category: Guard, Attack: 500, Defense: 800}
	maid    = Unit{Name: "Silver Maid", Category: Maid, Attack: 700, Defense: 300}
	builder = Unit{Name: "Golden Builder", Category: Builder, Attack: 600, Defense: 300}
	wild    = Unit{Name: "Wild Maid", Category: Maid, Attack: 300, Defense: 600}
	odd     = Unit{Name: "Odd One", Category: Operator, Attack: 150, Defense: 50}
)

func TestNewGame(t *testing.T) {
	t.Run("setup deals hands and places kings", func(t *testing.T) {
		g, err := NewGame(random.New(7), testCatalog, []int{1, 2, 3, 1, 2, 3, 1, 2, 3, 1})
		require.NoError(t, err)

		require.Equal(t, Self, g.Active())
		require.Equal(t, AwaitingSelfAction, g.Phase())
		require.Equal(t, meta.INITIAL_HAND_SIZE+1, g.Player(Self).HandSize())
		require.Equal(t, meta.INITIAL_HAND_SIZE, g.Player(Opponent).HandSize())
		require.Equal(t, 5, g.Player(Self).DeckSize())
		require.Equal(t, 6, g.Player(Opponent).DeckSize())

		for _, side := range []Side{Self, Opponent} {
			p, ok := g.Board().FindKing(side)
			require.True(t, ok)
			require.Equal(t, HomeCell(side), p)
			require.Equal(t, 0, g.Player(side).BoardCount())
			require.Equal(t, meta.MAX_LIFE_POINTS, g.Player(side).LifePoints())
		}
		require.Equal(t, "D1", HomeCell(Self).String())
		require.Equal(t, "D7", HomeCell(Opponent).String())
	})

	t.Run("same seed deals the same hands", func(t *testing.T) {
		blueprint := []int{1, 2, 3, 3, 2, 1, 2, 2, 3, 1}
		g1, err := NewGame(random.New(99), testCatalog, blueprint)
		require.NoError(t, err)
		g2, err := NewGame(random.New(99), testCatalog, blueprint)
		require.NoError(t, err)

		require.Equal(t, g1.Player(Self).Hand(), g2.Player(Self).Hand())
		require.Equal(t, g1.Player(Opponent).Hand(), g2.Player(Opponent).Hand())
	})

	t.Run("bad blueprint", func(t *testing.T) {
		_, err := NewGame(random.New(1), testCatalog, []int{1, 9})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("too few cards for the opening draw", func(t *testing.T) {
		g, err := NewGame(random.New(1), testCatalog, []int{1, 2, 3, 1})
		require.NoError(t, err)
		require.Equal(t, GameOver, g.Phase())
		require.Equal(t, Opponent, g.Winner())
	})
}

func TestMove(t *testing.T) {
	t.Run("rejected moves leave the state unchanged", func(t *testing.T) {
		g, _ := newTestGame(t)
		own := put(g, pos(t, "C3"), guard, Self)
		put(g, pos(t, "C5"), maid, Opponent)

		require.ErrorIs(t, g.Move(pos(t, "C4")), ErrIllegalState, "No selection")

		require.NoError(t, g.Select(pos(t, "A5")))
		require.ErrorIs(t, g.Move(pos(t, "A6")), ErrIllegalState, "Empty selection")

		require.NoError(t, g.Select(pos(t, "C5")))
		require.ErrorIs(t, g.Move(pos(t, "C4")), ErrIllegalState, "Enemy unit")

		require.NoError(t, g.Select(pos(t, "C3")))
		require.ErrorIs(t, g.Move(pos(t, "C5")), ErrIllegalState, "Two steps")
		require.ErrorIs(t, g.Move(pos(t, "D4")), ErrIllegalState, "Diagonal")

		require.False(t, own.Moved)
		got, _ := g.Board().At(pos(t, "C3"))
		require.Same(t, own, got)
	})

	t.Run("step onto an empty cell", func(t *testing.T) {
		g, out := newTestGame(t)
		u := put(g, pos(t, "C3"), guard, Self)

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Move(pos(t, "C4")))

		require.True(t, g.Board().IsEmpty(pos(t, "C3")))
		got, ok := g.Board().At(pos(t, "C4"))
		require.True(t, ok)
		require.Same(t, u, got)
		require.True(t, u.Moved)
		sel, ok := g.Selected()
		require.True(t, ok)
		require.Equal(t, pos(t, "C4"), sel)
		require.Contains(t, out.String(), "Bronze Guard moves to C4.")

		require.ErrorIs(t, g.Move(pos(t, "C5")), ErrIllegalState, "A unit acts once per turn")
	})

	t.Run("staying in place uses the action", func(t *testing.T) {
		g, _ := newTestGame(t)
		u := put(g, pos(t, "C3"), guard, Self)

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Move(pos(t, "C3")))
		require.True(t, u.Moved)
		got, _ := g.Board().At(pos(t, "C3"))
		require.Same(t, u, got)
	})

	t.Run("moving clears a block", func(t *testing.T) {
		g, out := newTestGame(t)
		u := put(g, pos(t, "C3"), guard, Self)
		u.Blocking = true

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Move(pos(t, "B3")))
		require.False(t, u.Blocking)
		require.Contains(t, out.String(), "Bronze Guard no longer blocks.")
	})

	t.Run("king restrictions", func(t *testing.T) {
		g, _ := newTestGame(t)
		put(g, pos(t, "D2"), guard, Self)
		put(g, pos(t, "C1"), maid, Opponent)

		require.NoError(t, g.Select(pos(t, "D2")))
		require.ErrorIs(t, g.Move(pos(t, "D1")), ErrIllegalState, "Units cannot step onto their own king")

		require.NoError(t, g.Select(pos(t, "D1")))
		require.ErrorIs(t, g.Move(pos(t, "C1")), ErrIllegalState, "Kings cannot attack")
	})

	t.Run("king moving onto a friendly unit eliminates it", func(t *testing.T) {
		g, _ := newTestGame(t)
		put(g, pos(t, "D2"), guard, Self)

		require.NoError(t, g.Select(pos(t, "D1")))
		require.NoError(t, g.Move(pos(t, "D2")))

		got, ok := g.Board().At(pos(t, "D2"))
		require.True(t, ok)
		require.True(t, got.IsKing())
		requireCountsMatchBoard(t, g)
	})
}

func TestMoveWithoutEnemyKing(t *testing.T) {
	g, out := newTestGame(t)
	put(g, pos(t, "C3"), guard, Self)
	g.board.Remove(HomeCell(Opponent))

	require.NoError(t, g.Select(pos(t, "C3")))
	require.NoError(t, g.Move(pos(t, "C4")))

	require.Equal(t, GameOver, g.Phase())
	require.Equal(t, Self, g.Winner())
	require.Contains(t, out.String(), "Player wins!\n")
}

func TestMoveUnion(t *testing.T) {
	t.Run("successful merge", func(t *testing.T) {
		g, out := newTestGame(t)
		mover := put(g, pos(t, "C2"), builder, Self)
		resident := put(g, pos(t, "C3"), wild, Self)
		mover.Flipped = true

		require.NoError(t, g.Select(pos(t, "C2")))
		require.NoError(t, g.Move(pos(t, "C3")))

		require.True(t, g.Board().IsEmpty(pos(t, "C2")))
		got, _ := g.Board().At(pos(t, "C3"))
		require.Same(t, resident, got)
		require.Equal(t, 600, got.Attack())
		require.Equal(t, 600, got.Defense())
		require.Equal(t, "Wild Golden Maid", got.Name())
		require.False(t, got.Flipped, "Flipped only when both were flipped")
		require.True(t, got.Moved)
		require.ErrorIs(t, g.Move(pos(t, "C4")), ErrIllegalState, "The merged unit has used its action")
		require.Equal(t, 1, g.Player(Self).BoardCount())
		require.Contains(t, out.String(), "Golden Builder and Wild Maid on C3 join forces!\nSuccess!\n")
		requireCountsMatchBoard(t, g)
	})

	t.Run("failed merge eliminates the resident", func(t *testing.T) {
		g, out := newTestGame(t)
		mover := put(g, pos(t, "C2"), odd, Self)
		put(g, pos(t, "C3"), guard, Self)

		require.NoError(t, g.Select(pos(t, "C2")))
		require.NoError(t, g.Move(pos(t, "C3")))

		got, _ := g.Board().At(pos(t, "C3"))
		require.Same(t, mover, got)
		require.True(t, g.Board().IsEmpty(pos(t, "C2")))
		require.Equal(t, 1, g.Player(Self).BoardCount())
		require.Contains(t, out.String(), "Union failed. Bronze Guard was eliminated.")
		requireCountsMatchBoard(t, g)
	})
}

func TestMoveDuel(t *testing.T) {
	t.Run("attacker wins and advances", func(t *testing.T) {
		g, out := newTestGame(t)
		attacker := put(g, pos(t, "C3"), maid, Self)
		put(g, pos(t, "C4"), guard, Opponent)

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Move(pos(t, "C4")))

		got, _ := g.Board().At(pos(t, "C4"))
		require.Same(t, attacker, got)
		require.True(t, attacker.Flipped)
		require.Equal(t, 7800, g.Player(Opponent).LifePoints())
		require.Equal(t, 0, g.Player(Opponent).BoardCount())
		require.Contains(t, out.String(), "Silver Maid (700/300) attacks Bronze Guard (500/800) on C4!")
		require.Contains(t, out.String(), "Bronze Guard (500/800) was flipped on C4!")
		require.Contains(t, out.String(), "Enemy takes 200 damage!")
		requireCountsMatchBoard(t, g)
	})

	t.Run("blocker reflects damage", func(t *testing.T) {
		g, _ := newTestGame(t)
		attacker := put(g, pos(t, "C3"), guard, Self)
		blocker := put(g, pos(t, "C4"), Unit{Name: "Stone Wall", Attack: 100, Defense: 800}, Opponent)
		blocker.Blocking = true

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Move(pos(t, "C4")))

		require.Equal(t, 7700, g.Player(Self).LifePoints())
		got, _ := g.Board().At(pos(t, "C3"))
		require.Same(t, attacker, got)
		sel, _ := g.Selected()
		require.Equal(t, pos(t, "C3"), sel)
		requireCountsMatchBoard(t, g)
	})

	t.Run("losing attacker is removed", func(t *testing.T) {
		g, _ := newTestGame(t)
		put(g, pos(t, "C3"), odd, Self)
		put(g, pos(t, "C4"), guard, Opponent)

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Move(pos(t, "C4")))

		require.True(t, g.Board().IsEmpty(pos(t, "C3")))
		require.Equal(t, 8000-350, g.Player(Self).LifePoints())
		_, ok := g.Selected()
		require.False(t, ok)
		requireCountsMatchBoard(t, g)
	})

	t.Run("attacking the king and winning on damage", func(t *testing.T) {
		g, out := newTestGame(t)
		put(g, pos(t, "D6"), maid, Self)
		g.players[Opponent].lifePoints = 500

		require.NoError(t, g.Select(pos(t, "D6")))
		require.NoError(t, g.Move(pos(t, "D7")))

		require.Equal(t, 0, g.Player(Opponent).LifePoints())
		require.Equal(t, GameOver, g.Phase())
		require.Equal(t, Self, g.Winner())
		require.False(t, g.Running())
		_, ok := g.Board().FindKing(Opponent)
		require.True(t, ok, "Kings are never removed by a duel")
		require.Contains(t, out.String(), "Enemy's life points dropped to 0!\nPlayer wins!\n")

		require.ErrorIs(t, g.Yield(), ErrIllegalState, "No commands after the game is over")
	})
}

func TestBlock(t *testing.T) {
	g, out := newTestGame(t)
	u := put(g, pos(t, "C3"), guard, Self)

	require.ErrorIs(t, g.Block(), ErrIllegalState, "No selection")

	require.NoError(t, g.Select(pos(t, "D1")))
	require.ErrorIs(t, g.Block(), ErrIllegalState, "Kings cannot block")

	require.NoError(t, g.Select(pos(t, "C3")))
	require.NoError(t, g.Block())
	require.True(t, u.Blocking)
	require.True(t, u.Moved)
	require.Contains(t, out.String(), "Bronze Guard (C3) blocks!")

	require.ErrorIs(t, g.Block(), ErrIllegalState, "Blocking uses the action")
}

func TestPlace(t *testing.T) {
	t.Run("argument checks", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.players[Self].hand = []Unit{guard, maid}

		require.ErrorIs(t, g.Place([]int{0}), ErrIllegalState, "No selection")
		require.NoError(t, g.Select(pos(t, "C3")))
		require.ErrorIs(t, g.Place(nil), ErrInvalidArgument)
		require.ErrorIs(t, g.Place([]int{2}), ErrInvalidArgument)
		require.ErrorIs(t, g.Place([]int{-1}), ErrInvalidArgument)
		require.ErrorIs(t, g.Place([]int{1, 1}), ErrInvalidArgument)
		require.Equal(t, 2, g.Player(Self).HandSize())
		require.False(t, g.Player(Self).PlacedThisTurn())
	})

	t.Run("illegal targets", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.players[Self].hand = []Unit{guard}
		put(g, pos(t, "C5"), maid, Opponent)

		require.NoError(t, g.Select(pos(t, "C5")))
		require.ErrorIs(t, g.Place([]int{0}), ErrIllegalState, "Enemy cell")
		require.NoError(t, g.Select(pos(t, "D1")))
		require.ErrorIs(t, g.Place([]int{0}), ErrIllegalState, "King cell")
		require.Equal(t, 1, g.Player(Self).HandSize())
	})

	t.Run("full board rejects before spending cards", func(t *testing.T) {
		g, _ := newTestGame(t)
		for i, cell := range []string{"A1", "A2", "A3", "A4", "A5"} {
			put(g, pos(t, cell), Unit{Name: "Filler", Attack: 100 * (i + 1)}, Self)
		}
		g.players[Self].hand = []Unit{guard}

		require.NoError(t, g.Select(pos(t, "B1")))
		require.ErrorIs(t, g.Place([]int{0}), ErrIllegalState)
		require.Equal(t, 1, g.Player(Self).HandSize())
	})

	t.Run("single placement", func(t *testing.T) {
		g, out := newTestGame(t)
		g.players[Self].hand = []Unit{guard, maid}

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Place([]int{1}))

		got, ok := g.Board().At(pos(t, "C3"))
		require.True(t, ok)
		require.Equal(t, maid, got.Unit)
		require.Equal(t, Self, got.Owner)
		require.Equal(t, []Unit{guard}, g.Player(Self).Hand())
		require.Equal(t, 1, g.Player(Self).BoardCount())
		require.Contains(t, out.String(), "Player places Silver Maid on C3.")

		require.NoError(t, g.Select(pos(t, "C4")))
		require.ErrorIs(t, g.Place([]int{0}), ErrIllegalState, "Only one placement per turn")
		requireCountsMatchBoard(t, g)
	})

	t.Run("donated cards merge in the given order", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.players[Self].hand = []Unit{builder, guard, wild}

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Place([]int{2, 0}))

		got, _ := g.Board().At(pos(t, "C3"))
		require.Equal(t, "Wild Golden Maid", got.Name())
		require.Equal(t, 600, got.Attack())
		require.Equal(t, 600, got.Defense())
		require.Equal(t, []Unit{guard}, g.Player(Self).Hand())
		require.Equal(t, 1, g.Player(Self).BoardCount())
	})

	t.Run("failed merge forfeits the remaining cards", func(t *testing.T) {
		g, out := newTestGame(t)
		g.players[Self].hand = []Unit{guard, odd, maid, wild}

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Place([]int{0, 1, 2}))

		require.True(t, g.Board().IsEmpty(pos(t, "C3")))
		require.Equal(t, []Unit{wild}, g.Player(Self).Hand())
		require.Equal(t, 0, g.Player(Self).BoardCount())
		require.NotContains(t, out.String(), "Silver Maid and")
		requireCountsMatchBoard(t, g)
	})

	t.Run("placing onto a friendly unit", func(t *testing.T) {
		g, _ := newTestGame(t)
		put(g, pos(t, "C3"), wild, Self)
		g.players[Self].hand = []Unit{builder}

		require.NoError(t, g.Select(pos(t, "C3")))
		require.NoError(t, g.Place([]int{0}))

		got, _ := g.Board().At(pos(t, "C3"))
		require.Equal(t, 600, got.Defense())
		require.Equal(t, 1, g.Player(Self).BoardCount())
	})
}

func TestYield(t *testing.T) {
	t.Run("discard rules", func(t *testing.T) {
		g, _ := newTestGame(t)
		g.players[Self].hand = []Unit{guard, maid}
		require.ErrorIs(t, g.Yield(0), ErrIllegalState, "Cannot discard below the limit")

		g.players[Self].hand = []Unit{guard, maid, builder, wild, odd}
		require.ErrorIs(t, g.Yield(), ErrIllegalState, "Must discard at the limit")
		require.ErrorIs(t, g.Yield(5), ErrInvalidArgument)
		require.ErrorIs(t, g.Yield(0, 1), ErrInvalidArgument)
		require.Equal(t, Self, g.Active())
	})

	t.Run("turn passes to the other side", func(t *testing.T) {
		g, out := newTestGame(t)
		u := put(g, pos(t, "C3"), guard, Self)
		u.Moved = true
		g.players[Self].placedThisTurn = true
		g.players[Self].hand = []Unit{guard, maid, builder, wild, odd}
		require.NoError(t, g.Select(pos(t, "C3")))

		require.NoError(t, g.Yield(4))

		require.Equal(t, Opponent, g.Active())
		require.Equal(t, AwaitingOpponentAction, g.Phase())
		require.Equal(t, 4, g.Player(Self).HandSize())
		require.Equal(t, 1, g.Player(Opponent).HandSize())
		require.False(t, u.Moved)
		_, ok := g.Selected()
		require.False(t, ok)
		require.Contains(t, out.String(), "Player discarded Odd One (150/50).\nIt is Enemy's turn!\n")

		require.NoError(t, g.Yield())
		require.Equal(t, Self, g.Active())
		require.False(t, g.Player(Self).PlacedThisTurn())
	})

	t.Run("empty deck loses the game", func(t *testing.T) {
		g, out := newTestGame(t)
		g.players[Opponent].deck = NewDeck()

		require.NoError(t, g.Yield())

		require.Equal(t, GameOver, g.Phase())
		require.Equal(t, Self, g.Winner())
		require.Contains(t, out.String(), "Enemy has no cards left in the deck!\nPlayer wins!\n")
	})
}

func TestPhaseSide(t *testing.T) {
	require.Equal(t, Self, AwaitingSelfAction.Side())
	require.Equal(t, Opponent, AwaitingOpponentAction.Side())
	require.Equal(t, NoSide, GameOver.Side())
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t)
	g.Quit()
	require.Equal(t, GameOver, g.Phase())
	require.Equal(t, NoSide, g.Winner())
	require.ErrorIs(t, g.Select(pos(t, "A1")), ErrIllegalState)
}
