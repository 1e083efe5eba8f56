package game

import (
	"slices"

	"skirmish/meta"
)

// Place donates the hand cards at indices (0-based, in the given order) to the
// selected cell. On an empty cell the first card becomes a new unit and the
// rest merge into it one by one; on a friendly cell every card merges into
// the resident. The first failed merge eliminates the resident and forfeits
// the remaining cards.
func (g *Game) Place(indices []int) error {
	if err := g.checkRunning(); err != nil {
		return err
	}
	if !g.hasSelection {
		return illegalState("no field selected")
	}
	active := g.players[g.active]
	if active.placedThisTurn {
		return illegalState("you have already placed units this turn")
	}
	if len(indices) == 0 {
		return invalidArgument("at least one hand index is required")
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(active.hand) {
			return invalidArgument("one or more provided hand indices are invalid")
		}
		if slices.Contains(indices[:i], idx) {
			return invalidArgument("an index cannot be provided multiple times")
		}
	}

	target := g.selected
	resident, occupied := g.board.At(target)
	switch {
	case occupied && resident.Owner != g.active:
		return illegalState("cannot place on a field occupied by the enemy")
	case occupied && resident.IsKing():
		return illegalState("cannot place on a field occupied by a king")
	case !occupied && active.boardCount >= meta.MAX_BOARD_COUNT:
		return illegalState("maximum board capacity reached")
	}

	units := make([]Unit, 0, len(indices))
	for _, idx := range indices {
		units = append(units, active.hand[idx])
	}
	desc := slices.Clone(indices)
	slices.Sort(desc)
	slices.Reverse(desc)
	for _, idx := range desc {
		active.removeFromHand(idx)
	}
	active.placedThisTurn = true

	if !occupied {
		first := units[0]
		units = units[1:]
		resident = NewPlacedUnit(first, g.active)
		g.board.Place(target, resident)
		active.incrementBoardCount()
		g.say(fmtPlaces, g.active, first.Name, target)
		g.mergeInto(resident, target, units, false)
	} else {
		g.mergeInto(resident, target, units, true)
	}

	g.showBoard()
	return nil
}

func (g *Game) mergeInto(resident *PlacedUnit, target Position, units []Unit, announceFirst bool) {
	for i, u := range units {
		if i > 0 || announceFirst {
			g.say(fmtPlaces, g.active, u.Name, target)
		}
		g.say(fmtJoinForces, u.Name, resident.Name(), target)

		combined, ok := Combine(u, resident.Unit)
		if !ok {
			g.say(fmtUnionFailed, resident.Name())
			g.board.Remove(target)
			g.players[resident.Owner].decrementBoardCount()
			return
		}
		g.say(msgSuccess)
		resident.Unit = combined
	}
}
