package entity

// Mark is the content of a board cell and also identifies a player.
type Mark string

const (
	PlayerO Mark = "O"
	PlayerX Mark = "X"

	EmptyCell Mark = ""
)

// Randomizer is the source used to pick the starting player.
type Randomizer interface {
	Intn(n int) int
}

// Opponent returns the other player. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerO:
		return PlayerX
	case PlayerX:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerO || that == PlayerX
}

func (that Mark) String() string {
	return string(that)
}

// RandomMark picks the starting player uniformly.
func RandomMark(r Randomizer) Mark {
	if r.Intn(2) == 0 {
		return PlayerO
	}
	return PlayerX
}
