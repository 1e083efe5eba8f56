package ui

import (
	"fmt"
	"strings"

	"skirmish/game"
	"skirmish/meta"
)

const NoUnit = "<no unit>"

// FormatState summarises one player: life points, deck size and board count.
func FormatState(p *game.Player) string {
	return fmt.Sprintf("%s\n%d/%d LP\nDC: %d/%d\nBC: %d/%d",
		p.Side(),
		p.LifePoints(), meta.MAX_LIFE_POINTS,
		p.DeckSize(), meta.MAX_DECK_SIZE,
		p.BoardCount(), meta.MAX_BOARD_COUNT)
}

// FormatHand lists the hand with 1-based indices, one card per two lines.
func FormatHand(hand []game.Unit) string {
	var sb strings.Builder
	for i, u := range hand {
		fmt.Fprintf(&sb, "[%d] %s\n(%d/%d)\n", i+1, u.Name, u.Attack, u.Defense)
	}
	return sb.String()
}

// FormatUnit describes a placed unit, or returns NoUnit for nil.
func FormatUnit(u *game.PlacedUnit) string {
	if u == nil {
		return NoUnit
	}
	return fmt.Sprintf("%s (Team %s)\nATK: %d\nDEF: %d", u.Name(), u.Owner, u.Attack(), u.Defense())
}
