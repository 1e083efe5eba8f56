package game

import (
	"skirmish/meta"
)

// Player holds one side's deck, hand, life points and board quota.
type Player struct {
	side           Side
	deck           *Deck
	hand           []Unit
	lifePoints     int
	boardCount     int
	placedThisTurn bool
}

func NewPlayer(side Side, deck *Deck) *Player {
	return &Player{
		side:       side,
		deck:       deck,
		hand:       []Unit{},
		lifePoints: meta.MAX_LIFE_POINTS,
	}
}

func (p *Player) Side() Side           { return p.side }
func (p *Player) LifePoints() int      { return p.lifePoints }
func (p *Player) BoardCount() int      { return p.boardCount }
func (p *Player) DeckSize() int        { return p.deck.Len() }
func (p *Player) PlacedThisTurn() bool { return p.placedThisTurn }

// Hand returns a copy of the hand in display order.
func (p *Player) Hand() []Unit {
	return append([]Unit(nil), p.hand...)
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

// Draw moves the top card of the deck into the hand. It reports false when
// the deck is empty.
func (p *Player) Draw() bool {
	u, ok := p.deck.Draw()
	if !ok {
		return false
	}
	p.hand = append(p.hand, u)
	return true
}

func (p *Player) DrawInitialHand() {
	for i := 0; i < meta.INITIAL_HAND_SIZE; i++ {
		p.Draw()
	}
}

func (p *Player) removeFromHand(i int) Unit {
	u := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return u
}

// TakeDamage lowers life points, never below zero.
func (p *Player) TakeDamage(amount int) {
	if amount < 0 {
		panic("damage cannot be negative")
	}
	p.lifePoints = max(0, p.lifePoints-amount)
}

func (p *Player) Defeated() bool {
	return p.lifePoints <= 0
}

func (p *Player) incrementBoardCount() {
	if p.boardCount >= meta.MAX_BOARD_COUNT {
		panic("maximum board capacity reached")
	}
	p.boardCount++
}

func (p *Player) decrementBoardCount() {
	if p.boardCount <= 0 {
		panic("board count is already zero")
	}
	p.boardCount--
}
