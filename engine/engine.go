package engine

import (
	"skirmish/experiments/metrics"
	"skirmish/game"
)

type Engine interface {
	// Run plays until there's a winner, input ends, or the turn cap is reached
	Run() (winner game.Side, turnMetrics []metrics.TurnMetric)
}
