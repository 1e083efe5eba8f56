package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveDuel(t *testing.T) {
	unit := func(owner Side, atk, def int) *PlacedUnit {
		return NewPlacedUnit(Unit{Name: "Test Unit", Attack: atk, Defense: def}, owner)
	}

	t.Run("stronger attacker beats open defender", func(t *testing.T) {
		got := ResolveDuel(unit(Self, 700, 100), unit(Opponent, 500, 900))
		require.Equal(t, DuelResult{Victim: Opponent, Damage: 200, DefenderEliminated: true, AttackerAdvances: true}, got)
	})

	t.Run("weaker attacker loses open combat", func(t *testing.T) {
		got := ResolveDuel(unit(Self, 300, 100), unit(Opponent, 500, 100))
		require.Equal(t, DuelResult{Victim: Self, Damage: 200, AttackerEliminated: true}, got)
	})

	t.Run("equal attacks eliminate both", func(t *testing.T) {
		got := ResolveDuel(unit(Self, 500, 100), unit(Opponent, 500, 900))
		require.Equal(t, DuelResult{Victim: NoSide, AttackerEliminated: true, DefenderEliminated: true}, got)
	})

	t.Run("blocker holds and reflects damage", func(t *testing.T) {
		defender := unit(Opponent, 100, 800)
		defender.Blocking = true

		got := ResolveDuel(unit(Self, 500, 100), defender)
		require.Equal(t, DuelResult{Victim: Self, Damage: 300}, got)
	})

	t.Run("blocker broken without damage", func(t *testing.T) {
		defender := unit(Opponent, 100, 400)
		defender.Blocking = true

		got := ResolveDuel(unit(Self, 500, 100), defender)
		require.Equal(t, DuelResult{Victim: NoSide, DefenderEliminated: true, AttackerAdvances: true}, got)
	})

	t.Run("equal attack against blocker changes nothing", func(t *testing.T) {
		defender := unit(Opponent, 100, 500)
		defender.Blocking = true

		got := ResolveDuel(unit(Self, 500, 100), defender)
		require.Equal(t, DuelResult{Victim: NoSide}, got)
	})

	t.Run("attacking a king damages its owner", func(t *testing.T) {
		got := ResolveDuel(unit(Self, 900, 100), NewPlacedUnit(NewKing(), Opponent))
		require.Equal(t, DuelResult{Victim: Opponent, Damage: 900}, got)
	})

	t.Run("resolution leaves both units untouched", func(t *testing.T) {
		attacker := unit(Self, 700, 100)
		defender := unit(Opponent, 500, 100)
		ResolveDuel(attacker, defender)
		require.False(t, attacker.Flipped)
		require.False(t, defender.Flipped)
	})
}

func TestFlip(t *testing.T) {
	u := NewPlacedUnit(Unit{Name: "Test Unit"}, Self)
	require.True(t, u.flip())
	require.False(t, u.flip(), "A unit flips only once")

	king := NewPlacedUnit(NewKing(), Self)
	require.False(t, king.flip())
	require.False(t, king.Flipped)
}
