package game

import (
	"fmt"
)

// Select marks p as the target of the following commands. Selecting is
// allowed on any cell, occupied or not.
func (g *Game) Select(p Position) error {
	if err := g.checkRunning(); err != nil {
		return err
	}
	if !p.Valid() {
		return invalidArgument(fmt.Sprintf("position %s is out of bounds", p))
	}
	g.setSelection(p)
	return nil
}

// selectedOwn returns the selected unit when it belongs to the active side.
func (g *Game) selectedOwn() (Position, *PlacedUnit, error) {
	if !g.hasSelection {
		return Position{}, nil, illegalState("no field selected or selected field is empty")
	}
	u, ok := g.board.At(g.selected)
	if !ok {
		return Position{}, nil, illegalState("no field selected or selected field is empty")
	}
	if u.Owner != g.active {
		return Position{}, nil, illegalState("the selected unit belongs to the other side")
	}
	return g.selected, u, nil
}

// Move acts with the selected unit on target: stay in place, step onto an
// empty cell, merge into a friendly unit or attack an enemy one.
func (g *Game) Move(target Position) error {
	if err := g.checkRunning(); err != nil {
		return err
	}
	source, mover, err := g.selectedOwn()
	if err != nil {
		return err
	}
	if !target.Valid() {
		return invalidArgument(fmt.Sprintf("position %s is out of bounds", target))
	}
	if mover.Moved {
		return illegalState("this unit has already moved this turn")
	}
	if source.DistanceTo(target) > 1 {
		return illegalState("invalid move distance, only 1 step horizontally or vertically or en place allowed")
	}
	if resident, ok := g.board.At(target); ok && target != source {
		if resident.IsKing() && resident.Owner == mover.Owner {
			return illegalState("kings cannot be moved onto by their own units")
		}
		if mover.IsKing() && resident.Owner != mover.Owner {
			return illegalState("kings cannot attack")
		}
	}

	if mover.Blocking {
		mover.Blocking = false
		g.say(fmtNoLonger, mover.Name())
	}

	if target == source {
		mover.Moved = true
		g.say(fmtMovesTo, mover.Name(), target)
		g.showBoard()
		return nil
	}

	resident, occupied := g.board.At(target)
	switch {
	case !occupied:
		g.board.Move(source, target)
		g.setSelection(target)
		g.say(fmtMovesTo, mover.Name(), target)
	case resident.Owner == mover.Owner:
		g.unite(mover, resident, source, target)
	default:
		g.duel(mover, resident, source, target)
	}
	mover.Moved = true

	if g.running {
		g.checkKings()
	}
	g.showBoard()
	return nil
}

// unite merges mover into the friendly resident on target. On failure the
// resident is eliminated and the mover takes its place.
func (g *Game) unite(mover, resident *PlacedUnit, source, target Position) {
	g.say(fmtMovesTo, mover.Name(), target)
	g.say(fmtJoinForces, mover.Name(), resident.Name(), target)

	combined, ok := Combine(mover.Unit, resident.Unit)
	if ok {
		g.say(msgSuccess)
		g.board.Remove(source)
		resident.Unit = combined
		resident.Flipped = mover.Flipped && resident.Flipped
		resident.Blocking = false
		// the merged unit has used this turn's action, whichever half moved
		resident.Moved = true
		g.players[mover.Owner].decrementBoardCount()
	} else {
		g.say(fmtUnionFailed, resident.Name())
		g.board.Remove(target)
		g.board.Move(source, target)
		g.players[resident.Owner].decrementBoardCount()
	}
	g.setSelection(target)
}

func (g *Game) duel(attacker, defender *PlacedUnit, source, target Position) {
	atkStats := fmt.Sprintf(fmtStats, attacker.Attack(), attacker.Defense())
	defStats := ""
	if !defender.IsKing() {
		defStats = fmt.Sprintf(fmtStats, defender.Attack(), defender.Defense())
	}
	g.say(fmtAttacks, attacker.Name(), atkStats, defender.Name(), defStats, target)

	if attacker.flip() {
		g.say(fmtFlipped, attacker.Name(), attacker.Attack(), attacker.Defense(), source)
	}
	if defender.flip() {
		g.say(fmtFlipped, defender.Name(), defender.Attack(), defender.Defense(), target)
	}

	result := ResolveDuel(attacker, defender)
	if result.Damage > 0 {
		g.damage(result.Victim, result.Damage)
	}

	if result.DefenderEliminated {
		g.say(fmtEliminated, defender.Name())
		g.board.Remove(target)
		g.players[defender.Owner].decrementBoardCount()
	}
	if result.AttackerEliminated {
		g.say(fmtEliminated, attacker.Name())
		g.board.Remove(source)
		g.players[attacker.Owner].decrementBoardCount()
		g.clearSelection()
		return
	}
	if result.AttackerAdvances {
		g.say(fmtMovesTo, attacker.Name(), target)
		g.board.Move(source, target)
		g.setSelection(target)
		return
	}
	g.setSelection(source)
}

func (g *Game) damage(victim Side, amount int) {
	p := g.players[victim]
	p.TakeDamage(amount)
	g.say(fmtDamage, victim, amount)
	if p.Defeated() && g.running {
		g.say(fmtDroppedZero, victim)
		g.declareWinner(victim.Other())
	}
}

// checkKings ends the game when a side has lost its king.
func (g *Game) checkKings() {
	for _, side := range []Side{Self, Opponent} {
		if _, ok := g.board.FindKing(side); !ok {
			g.declareWinner(side.Other())
			return
		}
	}
}

// Block puts the selected unit into its defensive stance, ending its action
// for this turn.
func (g *Game) Block() error {
	if err := g.checkRunning(); err != nil {
		return err
	}
	_, u, err := g.selectedOwn()
	if err != nil {
		return err
	}
	if u.IsKing() {
		return illegalState("kings cannot block")
	}
	if u.Moved {
		return illegalState("this unit has already moved this turn")
	}
	u.Blocking = true
	u.Moved = true
	g.say(fmtBlocks, u.Name(), g.selected)
	g.showBoard()
	return nil
}
