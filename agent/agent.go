package agent

import (
	"skirmish/experiments/metrics"
	"skirmish/game"
)

type Agent interface {
	// PlayTurn takes the active side's whole turn, ending it with a yield,
	// and returns metrics for the turn (if collected).
	PlayTurn(g *game.Game) metrics.TurnMetric
}
