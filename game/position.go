package game

import (
	"fmt"
	"strings"

	"skirmish/meta"
	"skirmish/utils"
)

// Position is a cell on the board. Col 0 is column 'A', Row 0 is row '1'.
type Position struct {
	Col int
	Row int
}

// Direction is a (col, row) offset.
type Direction struct {
	DCol int
	DRow int
}

// Orthogonal directions in scan order: up, right, down, left.
var Dir4 = []Direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// All eight surrounding directions, clockwise from up.
var Dir8 = []Direction{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

// ParsePosition parses cell notation such as "D5" (column letter is case-insensitive).
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, invalidArgument("position must be exactly 2 characters long")
	}
	col := int(strings.ToUpper(s[:1])[0]) - 'A'
	row := int(s[1]) - '1'
	p := Position{Col: col, Row: row}
	if !p.Valid() {
		return Position{}, invalidArgument(fmt.Sprintf("position %s is out of bounds", s))
	}
	return p, nil
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Col >= 0 && p.Col < meta.BOARD_SIZE && p.Row >= 0 && p.Row < meta.BOARD_SIZE
}

// DistanceTo returns the Manhattan distance between two positions.
func (p Position) DistanceTo(other Position) int {
	return utils.Abs(p.Col-other.Col) + utils.Abs(p.Row-other.Row)
}

func (p Position) Offset(d Direction) Position {
	return Position{Col: p.Col + d.DCol, Row: p.Row + d.DRow}
}

// Around returns the valid positions reached by dirs, in dirs order.
func (p Position) Around(dirs []Direction) []Position {
	out := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		if q := p.Offset(d); q.Valid() {
			out = append(out, q)
		}
	}
	return out
}

func (p Position) String() string {
	return string(rune('A'+p.Col)) + string(rune('1'+p.Row))
}
