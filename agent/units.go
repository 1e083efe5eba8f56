package agent

import (
	"math"

	"skirmish/game"

	"github.com/rs/zerolog/log"
)

type actionKind int

const (
	moveTo actionKind = iota
	block
	stay
)

func (k actionKind) String() string {
	switch k {
	case block:
		return "block"
	case stay:
		return "stay"
	default:
		return "move"
	}
}

type option struct {
	kind   actionKind
	target game.Position
	score  int
}

// actUnits lets every unmoved non-king unit act, strongest options first,
// until none is left. A unit whose chosen action and fallback block are both
// refused is given up on for this turn.
func (t *turn) actUnits() {
	board := t.g.Board()
	enemyKing, ok := board.FindKing(t.enemy())
	if !ok {
		return
	}

	exhausted := map[*game.PlacedUnit]bool{}
	for t.g.Running() {
		ready := board.Positions(func(u *game.PlacedUnit) bool {
			return u.Owner == t.side && !u.IsKing() && !u.Moved && !exhausted[u]
		})
		if len(ready) == 0 {
			return
		}

		bestTotal := math.MinInt
		var bestPos game.Position
		var bestOptions []option
		for _, p := range ready {
			options, total := t.evaluate(p, enemyKing)
			if total > bestTotal {
				bestTotal, bestPos, bestOptions = total, p, options
			}
		}

		u, _ := board.At(bestPos)
		t.perform(u, bestPos, bestOptions)
		if !u.Moved && t.g.Running() {
			exhausted[u] = true
			log.Debug().Msgf("%s gives up on %s at %s", t.side, u.Name(), bestPos)
		}
	}
}

// evaluate scores the four orthogonal steps (own king excluded) plus
// blocking and staying for the unit on p.
func (t *turn) evaluate(p game.Position, enemyKing game.Position) ([]option, int) {
	board := t.g.Board()
	u, _ := board.At(p)

	var options []option
	total := 0
	for _, target := range p.Around(game.Dir4) {
		resident, occupied := board.At(target)
		if occupied && resident.IsKing() && resident.Owner == t.side {
			continue
		}
		s := t.scoreTarget(u, resident, occupied, target, enemyKing)
		options = append(options, option{kind: moveTo, target: target, score: s})
		total += s
	}

	threat := board.MaxAdjacentAttack(p, t.enemy())
	blockScore := max(1, (u.Defense()-threat)/hundred)
	stayScore := max(0, (u.Attack()-threat)/hundred)
	options = append(options,
		option{kind: block, target: p, score: blockScore},
		option{kind: stay, target: p, score: stayScore},
	)
	return options, total + blockScore + stayScore
}

func (t *turn) scoreTarget(u, resident *game.PlacedUnit, occupied bool, target, enemyKing game.Position) int {
	if !occupied {
		steps := target.DistanceTo(enemyKing)
		enemies := t.g.Board().Count(target, game.Dir4, t.enemy())
		return emptyCellBase - steps - enemies
	}

	if resident.Owner == t.side {
		if combined, ok := game.Combine(u.Unit, resident.Unit); ok {
			return combined.Attack + combined.Defense - u.Attack() - u.Defense()
		}
		return -resident.Attack() - resident.Defense()
	}

	switch {
	case resident.IsKing():
		return u.Attack()
	case !resident.Flipped:
		return u.Attack() - unflippedRisk
	case resident.Blocking:
		return u.Attack() - resident.Defense()
	default:
		return enemyMultiplier * (u.Attack() - resident.Attack())
	}
}

// perform blocks when nothing scores positive, otherwise draws an option
// weighted by score. A refused move falls back to blocking.
func (t *turn) perform(u *game.PlacedUnit, p game.Position, options []option) {
	if !t.try("select", t.g.Select(p)) {
		return
	}

	positive := false
	weights := make([]int, len(options))
	for i, o := range options {
		weights[i] = o.score
		positive = positive || o.score > 0
	}
	if !positive {
		t.try("block of "+u.Name(), t.g.Block())
		return
	}

	chosen := options[t.g.Selector().Weighted(weights)]
	log.Debug().Msgf("%s chooses %s with %s on %s (score %d)", t.side, chosen.kind, u.Name(), chosen.target, chosen.score)

	switch chosen.kind {
	case block:
		t.try("block of "+u.Name(), t.g.Block())
	case stay, moveTo:
		if !t.try("move of "+u.Name()+" to "+chosen.target.String(), t.g.Move(chosen.target)) {
			t.try("fallback block of "+u.Name(), t.g.Block())
		}
	}
}
