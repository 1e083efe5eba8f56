package game

import (
	"fmt"

	"skirmish/random"
)

// Deck is an ordered draw pile; index 0 is the top.
type Deck struct {
	units []Unit
}

// BuildDeck copies catalog entries named by 1-based blueprint indices
// (repeats allowed) into a new deck.
func BuildDeck(catalog []Unit, blueprint []int) (*Deck, error) {
	d := &Deck{units: make([]Unit, 0, len(blueprint))}
	for _, idx := range blueprint {
		if idx < 1 || idx > len(catalog) {
			return nil, invalidArgument(fmt.Sprintf("deck references unit %d but only %d units are defined", idx, len(catalog)))
		}
		d.units = append(d.units, catalog[idx-1])
	}
	return d, nil
}

func NewDeck(units ...Unit) *Deck {
	return &Deck{units: append([]Unit(nil), units...)}
}

func (d *Deck) Shuffle(sel *random.Selector) {
	sel.Shuffle(len(d.units), func(i, j int) {
		d.units[i], d.units[j] = d.units[j], d.units[i]
	})
}

// Draw removes and returns the top unit.
func (d *Deck) Draw() (Unit, bool) {
	if len(d.units) == 0 {
		return Unit{}, false
	}
	u := d.units[0]
	d.units = d.units[1:]
	return u, true
}

func (d *Deck) Len() int {
	return len(d.units)
}
