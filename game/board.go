package game

import (
	"fmt"

	"skirmish/meta"
	"skirmish/utils"
)

// Board is the fixed grid of cells, each holding at most one unit.
type Board struct {
	grid [meta.BOARD_SIZE][meta.BOARD_SIZE]*PlacedUnit // [col][row]
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) IsEmpty(p Position) bool {
	return b.grid[p.Col][p.Row] == nil
}

// At returns the unit on p, if any.
func (b *Board) At(p Position) (*PlacedUnit, bool) {
	u := b.grid[p.Col][p.Row]
	return u, u != nil
}

// Place puts a unit on an empty cell.
func (b *Board) Place(p Position, u *PlacedUnit) {
	if !b.IsEmpty(p) {
		panic(fmt.Sprintf("position %s is already occupied", p))
	}
	b.grid[p.Col][p.Row] = u
}

// Remove clears p and returns whatever was there.
func (b *Board) Remove(p Position) *PlacedUnit {
	u := b.grid[p.Col][p.Row]
	b.grid[p.Col][p.Row] = nil
	return u
}

// Move relocates the unit on from to the empty cell to.
func (b *Board) Move(from, to Position) {
	if b.IsEmpty(from) {
		panic(fmt.Sprintf("no unit at source position %s", from))
	}
	b.Place(to, b.Remove(from))
}

// Positions returns occupied cells in scan order (row by row, bottom row first)
// that satisfy keep.
func (b *Board) Positions(keep func(*PlacedUnit) bool) []Position {
	var out []Position
	for row := 0; row < meta.BOARD_SIZE; row++ {
		for col := 0; col < meta.BOARD_SIZE; col++ {
			if u := b.grid[col][row]; u != nil && keep(u) {
				out = append(out, Position{Col: col, Row: row})
			}
		}
	}
	return out
}

// FindKing returns the position of side's king.
func (b *Board) FindKing(side Side) (Position, bool) {
	found := b.Positions(func(u *PlacedUnit) bool { return u.Owner == side && u.IsKing() })
	if len(found) == 0 {
		return Position{}, false
	}
	return found[0], true
}

// Count returns how many units of side stand on cells around center,
// ignoring any excluded positions.
func (b *Board) Count(center Position, dirs []Direction, side Side, exclude ...Position) int {
	count := 0
	for _, p := range center.Around(dirs) {
		if utils.FindIndex(exclude, p) >= 0 {
			continue
		}
		if u, ok := b.At(p); ok && u.Owner == side {
			count++
		}
	}
	return count
}

// MaxAdjacentAttack returns the highest attack among units of side
// orthogonally adjacent to center, or 0.
func (b *Board) MaxAdjacentAttack(center Position, side Side) int {
	highest := 0
	for _, p := range center.Around(Dir4) {
		if u, ok := b.At(p); ok && u.Owner == side {
			highest = max(highest, u.Attack())
		}
	}
	return highest
}

// Units returns the number of non-king units side has on the board.
func (b *Board) Units(side Side) int {
	return len(b.Positions(func(u *PlacedUnit) bool { return u.Owner == side && !u.IsKing() }))
}

// ResetMoved clears the per-turn action flag of every unit.
func (b *Board) ResetMoved() {
	for _, p := range b.Positions(func(*PlacedUnit) bool { return true }) {
		b.grid[p.Col][p.Row].Moved = false
	}
}
