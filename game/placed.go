package game

// PlacedUnit is a unit standing on the board together with its per-turn state.
type PlacedUnit struct {
	Unit     Unit
	Owner    Side
	Flipped  bool // revealed in combat
	Moved    bool // acted this turn
	Blocking bool // in defensive stance
}

func NewPlacedUnit(u Unit, owner Side) *PlacedUnit {
	return &PlacedUnit{Unit: u, Owner: owner}
}

func (p *PlacedUnit) IsKing() bool { return p.Unit.King }
func (p *PlacedUnit) Name() string { return p.Unit.Name }
func (p *PlacedUnit) Attack() int  { return p.Unit.Attack }
func (p *PlacedUnit) Defense() int { return p.Unit.Defense }

// flip reveals a covered non-king unit. It reports whether anything changed.
func (p *PlacedUnit) flip() bool {
	if p.Flipped || p.IsKing() {
		return false
	}
	p.Flipped = true
	return true
}

// DuelResult is the outcome of one attack. Victim is NoSide when nobody takes damage.
type DuelResult struct {
	Victim             Side
	Damage             int
	AttackerEliminated bool
	DefenderEliminated bool
	AttackerAdvances   bool
}

// ResolveDuel computes the outcome of attacker moving onto defender's cell.
// It does not touch the board or either unit.
func ResolveDuel(attacker, defender *PlacedUnit) DuelResult {
	atk := attacker.Attack()

	switch {
	case defender.IsKing():
		return DuelResult{Victim: defender.Owner, Damage: atk}

	case defender.Blocking:
		def := defender.Defense()
		if atk > def {
			return DuelResult{Victim: NoSide, DefenderEliminated: true, AttackerAdvances: true}
		}
		if atk < def {
			return DuelResult{Victim: attacker.Owner, Damage: def - atk}
		}
		return DuelResult{Victim: NoSide}
	}

	defAtk := defender.Attack()
	if atk > defAtk {
		return DuelResult{Victim: defender.Owner, Damage: atk - defAtk, DefenderEliminated: true, AttackerAdvances: true}
	}
	if atk < defAtk {
		return DuelResult{Victim: attacker.Owner, Damage: defAtk - atk, AttackerEliminated: true}
	}
	return DuelResult{Victim: NoSide, AttackerEliminated: true, DefenderEliminated: true}
}
