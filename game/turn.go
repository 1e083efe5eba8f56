package game

import "skirmish/meta"

// Yield ends the active side's turn. With a full hand exactly one discard
// index (0-based) is required; otherwise none may be given.
func (g *Game) Yield(discard ...int) error {
	if err := g.checkRunning(); err != nil {
		return err
	}
	active := g.players[g.active]
	full := len(active.hand) == meta.HAND_LIMIT

	if len(discard) > 1 {
		return invalidArgument("at most one hand index can be discarded")
	}
	if full && len(discard) == 0 {
		return illegalState("you hold 5 units and must discard one")
	}
	if !full && len(discard) > 0 {
		return illegalState("you hold less than 5 units and cannot discard")
	}

	if len(discard) == 1 {
		idx := discard[0]
		if idx < 0 || idx >= len(active.hand) {
			return invalidArgument("the provided index is invalid")
		}
		u := active.removeFromHand(idx)
		g.say(fmtDiscarded, g.active, u.Name, u.Attack, u.Defense)
	}

	g.switchTurn()
	return nil
}
