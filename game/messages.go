package game

// Narration written to the game's output as commands take effect.
const (
	msgSuccess     = "Success!\n"
	fmtUnionFailed = "Union failed. %s was eliminated.\n"
	fmtJoinForces  = "%s and %s on %s join forces!\n"
	fmtMovesTo     = "%s moves to %s.\n"
	fmtEliminated  = "%s was eliminated!\n"
	fmtBlocks      = "%s (%s) blocks!\n"
	fmtNoLonger    = "%s no longer blocks.\n"
	fmtStats       = " (%d/%d)"
	fmtAttacks     = "%s%s attacks %s%s on %s!\n"
	fmtDamage      = "%s takes %d damage!\n"
	fmtDroppedZero = "%s's life points dropped to 0!\n"
	fmtWins        = "%s wins!\n"
	fmtFlipped     = "%s (%d/%d) was flipped on %s!\n"
	fmtPlaces      = "%s places %s on %s.\n"
	fmtDiscarded   = "%s discarded %s (%d/%d).\n"
	fmtNoCards     = "%s has no cards left in the deck!\n"
	fmtTurn        = "It is %s's turn!\n"
)
