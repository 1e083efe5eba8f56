package game

// Side identifies one of the two players.
type Side int

const (
	NoSide   Side = -1
	Self     Side = 0
	Opponent Side = 1
)

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case Self:
		return Opponent
	case Opponent:
		return Self
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case Self:
		return "Player"
	case Opponent:
		return "Enemy"
	default:
		return "None"
	}
}
