package game

import (
	"fmt"
	"io"

	"skirmish/meta"
	"skirmish/random"

	"github.com/rs/zerolog/log"
)

type Phase int

const (
	AwaitingSelfAction Phase = iota
	AwaitingOpponentAction
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingSelfAction:
		return "awaiting self action"
	case AwaitingOpponentAction:
		return "awaiting opponent action"
	default:
		return "game over"
	}
}

// Side is the side whose command the game is waiting for, or NoSide once the
// game is over.
func (p Phase) Side() Side {
	switch p {
	case AwaitingSelfAction:
		return Self
	case AwaitingOpponentAction:
		return Opponent
	default:
		return NoSide
	}
}

// Renderer draws the board, optionally highlighting one cell.
type Renderer func(board *Board, highlight Position, highlighted bool) string

// Game is the aggregate every command operates on. It is not safe for
// concurrent use; one goroutine drives it turn by turn.
type Game struct {
	selector *random.Selector
	board    *Board
	players  [2]*Player
	active   Side

	selected     Position
	hasSelection bool

	running bool
	winner  Side
	turn    int

	out    io.Writer
	render Renderer
}

type Option func(*Game)

// WithOutput directs narration to w. Without it narration is discarded.
func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		g.out = w
	}
}

// WithRenderer draws the board after every state-changing command.
func WithRenderer(r Renderer) Option {
	return func(g *Game) {
		g.render = r
	}
}

// NewGame builds both decks from blueprint, shuffles them (Self first) from
// sel, deals the initial hands, puts the kings on their home cells and gives
// Self the first turn with one extra card.
func NewGame(sel *random.Selector, catalog []Unit, blueprint []int, opts ...Option) (*Game, error) {
	g := &Game{
		selector: sel,
		board:    NewBoard(),
		active:   Self,
		running:  true,
		winner:   NoSide,
		turn:     1,
		out:      io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}

	for _, side := range []Side{Self, Opponent} {
		deck, err := BuildDeck(catalog, blueprint)
		if err != nil {
			return nil, fmt.Errorf("cannot build deck for %s: %w", side, err)
		}
		deck.Shuffle(sel)
		g.players[side] = NewPlayer(side, deck)
	}
	for _, p := range g.players {
		p.DrawInitialHand()
	}

	g.board.Place(HomeCell(Self), NewPlacedUnit(NewKing(), Self))
	g.board.Place(HomeCell(Opponent), NewPlacedUnit(NewKing(), Opponent))

	if !g.players[Self].Draw() {
		g.noCardsLeft(Self)
	}

	log.Debug().Msgf("game set up with %d units per deck", len(blueprint))
	return g, nil
}

// HomeCell is where side's king starts: D1 for Self, D7 for Opponent.
func HomeCell(side Side) Position {
	if side == Opponent {
		return Position{Col: meta.BOARD_SIZE / 2, Row: meta.BOARD_SIZE - 1}
	}
	return Position{Col: meta.BOARD_SIZE / 2, Row: 0}
}

func (g *Game) Board() *Board              { return g.board }
func (g *Game) Player(side Side) *Player   { return g.players[side] }
func (g *Game) ActivePlayer() *Player      { return g.players[g.active] }
func (g *Game) Active() Side               { return g.active }
func (g *Game) Running() bool              { return g.running }
func (g *Game) Winner() Side               { return g.winner }
func (g *Game) Turn() int                  { return g.turn }
func (g *Game) Selector() *random.Selector { return g.selector }
func (g *Game) Selected() (Position, bool) { return g.selected, g.hasSelection }

func (g *Game) Phase() Phase {
	switch {
	case !g.running:
		return GameOver
	case g.active == Self:
		return AwaitingSelfAction
	default:
		return AwaitingOpponentAction
	}
}

// Quit stops the game without a winner.
func (g *Game) Quit() {
	g.running = false
}

func (g *Game) say(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

func (g *Game) setSelection(p Position) {
	g.selected = p
	g.hasSelection = true
}

func (g *Game) clearSelection() {
	g.hasSelection = false
}

// Render returns the board with the current selection highlighted, or "" when
// no renderer is configured.
func (g *Game) Render() string {
	if g.render == nil {
		return ""
	}
	return g.render(g.board, g.selected, g.hasSelection)
}

func (g *Game) showBoard() {
	if g.running && g.render != nil {
		io.WriteString(g.out, g.Render())
	}
}

func (g *Game) checkRunning() error {
	if !g.running {
		return illegalState("the game is over, no moves allowed")
	}
	return nil
}

// declareWinner ends the game in favour of side.
func (g *Game) declareWinner(side Side) {
	g.say(fmtWins, side)
	g.winner = side
	g.running = false
	log.Info().Msgf("%s won after %d turns", side, g.turn)
}

func (g *Game) noCardsLeft(side Side) {
	g.say(fmtNoCards, side)
	g.declareWinner(side.Other())
}

// switchTurn hands control to the other side, which draws a card or loses.
func (g *Game) switchTurn() {
	g.clearSelection()
	g.board.ResetMoved()
	g.active = g.active.Other()
	g.turn++

	next := g.players[g.active]
	next.placedThisTurn = false
	if !next.Draw() {
		g.noCardsLeft(g.active)
		return
	}
	g.say(fmtTurn, g.active)
}
