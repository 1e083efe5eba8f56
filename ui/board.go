package ui

import (
	"fmt"
	"strings"

	"skirmish/game"
	"skirmish/meta"
)

const (
	symbolSelf      = "X"
	symbolOpponent  = "Y"
	symbolHighlight = "*"
	symbolEmpty     = " "
	columnFooter    = "    A   B   C   D   E   F   G"
)

// RenderBoard draws the grid top row first. Units show as X (Self) or Y
// (Opponent); the highlighted cell is prefixed with '*'.
// It satisfies game.Renderer.
func RenderBoard(board *game.Board, highlight game.Position, highlighted bool) string {
	var sb strings.Builder
	for row := meta.BOARD_SIZE - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d |", row+1)
		for col := 0; col < meta.BOARD_SIZE; col++ {
			p := game.Position{Col: col, Row: row}

			content := symbolEmpty
			if u, ok := board.At(p); ok {
				content = symbolOpponent
				if u.Owner == game.Self {
					content = symbolSelf
				}
			}

			prefix := symbolEmpty
			if highlighted && p == highlight {
				prefix = symbolHighlight
			}
			fmt.Fprintf(&sb, "%s%s |", prefix, content)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(columnFooter)
	sb.WriteString("\n")
	return sb.String()
}
