package agent

import (
	"math"

	"skirmish/experiments/metrics"
	"skirmish/game"
	"skirmish/meta"

	"github.com/rs/zerolog/log"
)

const (
	hundred         = 100
	unflippedRisk   = 500
	emptyCellBase   = 10
	enemyMultiplier = 2
	fellowPenalty   = 3
)

// Heuristic scores every candidate action with fixed weights and breaks
// ties with the game's shared random stream. All actions go through the
// game's commands, so a rejected candidate is dropped, never surfaced.
type Heuristic struct {
	metrics metrics.Collector
}

type Option func(h *Heuristic)

func WithMetrics() Option {
	return func(h *Heuristic) {
		h.metrics = metrics.NewCollector()
	}
}

func NewHeuristic(options ...Option) *Heuristic {
	h := &Heuristic{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// PlayTurn runs the four phases in order: king relocation, placement, unit
// actions and the closing yield.
func (h *Heuristic) PlayTurn(g *game.Game) metrics.TurnMetric {
	if !g.Running() {
		return metrics.TurnMetric{}
	}
	t := &turn{
		g:       g,
		side:    g.Active(),
		metrics: h.metrics,
	}
	h.metrics.Start(g.Turn(), t.side.String())
	log.Debug().Msgf("%s starts turn %d", t.side, g.Turn())

	t.moveKing()
	if g.Running() {
		t.place()
	}
	if g.Running() {
		t.actUnits()
	}
	if g.Running() {
		t.endTurn()
	}
	return h.metrics.Complete()
}

// turn holds the state of one agent turn.
type turn struct {
	g       *game.Game
	side    game.Side
	metrics metrics.Collector
}

func (t *turn) enemy() game.Side {
	return t.side.Other()
}

// try reports whether the game accepted a command.
func (t *turn) try(what string, err error) bool {
	if err != nil {
		t.metrics.AddRejected()
		log.Debug().Err(err).Msgf("%s dropped %s", t.side, what)
		return false
	}
	t.metrics.AddAction()
	return true
}

// pickBest returns the index of the highest score, breaking ties uniformly.
func (t *turn) pickBest(scores []int) int {
	best := math.MinInt
	var ties []int
	for i, s := range scores {
		if s > best {
			best = s
			ties = ties[:0]
		}
		if s == best {
			ties = append(ties, i)
		}
	}
	if len(ties) > 1 {
		return ties[t.g.Selector().Uniform(len(ties))]
	}
	return ties[0]
}

func (t *turn) moveKing() {
	board := t.g.Board()
	king, ok := board.FindKing(t.side)
	if !ok {
		return
	}

	var options []game.Position
	var scores []int
	for _, p := range append(king.Around(game.Dir4), king) {
		resident, occupied := board.At(p)
		if occupied && resident.Owner == t.enemy() {
			continue
		}
		fellows := board.Count(p, game.Dir8, t.side, king)
		enemies := board.Count(p, game.Dir8, t.enemy())
		fellowPresent := 0
		if occupied && p != king {
			fellowPresent = 1
		}
		options = append(options, p)
		scores = append(scores, fellows-enemyMultiplier*enemies-king.DistanceTo(p)-fellowPenalty*fellowPresent)
	}
	if len(options) == 0 {
		return
	}

	target := options[t.pickBest(scores)]
	log.Debug().Msgf("%s king moves from %s to %s", t.side, king, target)
	if t.try("select", t.g.Select(king)) {
		t.try("king move to "+target.String(), t.g.Move(target))
	}
}

func (t *turn) place() {
	board := t.g.Board()
	player := t.g.Player(t.side)
	if player.HandSize() == 0 || player.BoardCount() >= meta.MAX_BOARD_COUNT {
		return
	}
	king, ok := board.FindKing(t.side)
	if !ok {
		return
	}
	enemyKing, ok := board.FindKing(t.enemy())
	if !ok {
		return
	}

	var cells []game.Position
	var scores []int
	for _, p := range king.Around(game.Dir8) {
		if resident, occupied := board.At(p); occupied && resident.Owner != t.side {
			continue
		}
		steps := p.DistanceTo(enemyKing)
		enemies := board.Count(p, game.Dir4, t.enemy())
		fellows := board.Count(p, game.Dir4, t.side)
		cells = append(cells, p)
		scores = append(scores, -steps+enemyMultiplier*enemies-fellows)
	}
	if len(cells) == 0 {
		return
	}

	cell := cells[t.pickBest(scores)]
	hand := player.Hand()
	attacks := make([]int, len(hand))
	for i, u := range hand {
		attacks[i] = u.Attack
	}
	idx := t.g.Selector().Weighted(attacks)

	log.Debug().Msgf("%s places %s on %s", t.side, hand[idx].Name, cell)
	if t.try("select", t.g.Select(cell)) {
		t.try("placement on "+cell.String(), t.g.Place([]int{idx}))
	}
}

func (t *turn) endTurn() {
	hand := t.g.Player(t.side).Hand()
	if len(hand) != meta.HAND_LIMIT {
		t.try("yield", t.g.Yield())
		return
	}
	values := make([]int, len(hand))
	for i, u := range hand {
		values[i] = u.Attack + u.Defense
	}
	idx := t.g.Selector().ReverseWeighted(values)
	log.Debug().Msgf("%s discards %s", t.side, hand[idx].Name)
	t.try("yield", t.g.Yield(idx))
}
