package engine

import (
	"bufio"
	"io"
	"strings"

	"skirmish/agent"
	"skirmish/experiments/metrics"
	"skirmish/game"
	"skirmish/meta"
	"skirmish/ui"

	"github.com/rs/zerolog/log"
)

// LocalEngine drives one game from a line-oriented input, handing the turn to
// an agent whenever the active side has one.
type LocalEngine struct {
	game     *game.Game
	agents   map[game.Side]agent.Agent
	in       *bufio.Scanner
	out      io.Writer
	errOut   io.Writer
	compact  bool
	maxTurns int
}

type Option func(e *LocalEngine)

// WithAgent lets a computer player take every turn of side.
func WithAgent(side game.Side, a agent.Agent) Option {
	return func(e *LocalEngine) {
		e.agents[side] = a
	}
}

// WithCompactOutput suppresses the board printed by select and board.
func WithCompactOutput() Option {
	return func(e *LocalEngine) {
		e.compact = true
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// NewLocalEngine wires a game to its input and output streams. Narration and
// boards go to out, rejected commands to errOut.
func NewLocalEngine(g *game.Game, in io.Reader, out, errOut io.Writer, options ...Option) *LocalEngine {
	e := &LocalEngine{
		game:     g,
		agents:   map[game.Side]agent.Agent{},
		in:       bufio.NewScanner(in),
		out:      out,
		errOut:   errOut,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until there's a winner, the input is exhausted,
// someone quits or the turn cap is hit.
func (e *LocalEngine) Run() (game.Side, []metrics.TurnMetric) {
	var turnMetrics []metrics.TurnMetric
	prompted := false

	log.Info().Msgf("%s is starting", e.game.Active())
	for e.game.Turn() <= e.maxTurns {
		phase := e.game.Phase()
		if phase == game.GameOver {
			break
		}
		if a, ok := e.agents[phase.Side()]; ok {
			turnMetrics = append(turnMetrics, a.PlayTurn(e.game))
			continue
		}

		if !prompted {
			io.WriteString(e.out, usage+"\n")
			prompted = true
		}
		if !e.in.Scan() {
			log.Info().Msg("input closed")
			break
		}
		line := strings.TrimSpace(e.in.Text())
		if line == "" {
			continue
		}
		e.dispatch(line)
	}

	if e.game.Running() && e.game.Turn() > e.maxTurns {
		log.Warn().Msgf("stopped after %d turns without a winner", e.maxTurns)
	}
	return e.game.Winner(), turnMetrics
}

func (e *LocalEngine) selectedUnit() *game.PlacedUnit {
	p, ok := e.game.Selected()
	if !ok {
		return nil
	}
	u, _ := e.game.Board().At(p)
	return u
}

func (e *LocalEngine) board() string {
	if e.compact {
		return ""
	}
	p, ok := e.game.Selected()
	return ui.RenderBoard(e.game.Board(), p, ok)
}
