package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	MaxSteps = BoardSide * BoardSide
)

var (
	ErrInvalidCell = errors.New("invalid cell index")

	// WinCombos lists the winning triples: rows top to bottom, columns left
	// to right, then the main and anti diagonals.
	WinCombos = [8][3]Pos{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
)

type Board [BoardSide][BoardSide]Mark

func (that *Board) At(pos Pos) Mark {
	return that[pos.Row][pos.Col]
}

// WinResult is set once per game and never changes afterwards.
type WinResult struct {
	Winner Mark
	Line   [3]Pos
	From   Point
	To     Point
}

// Game is one playthrough. A restart replaces it with a new value.
type Game struct {
	ID    string
	Board Board
	Turn  Mark
	Steps int
	Win   *WinResult
}

func NewGame(id string, first Mark) *Game {
	return &Game{
		ID:   id,
		Turn: first,
	}
}

// Place puts the current player's mark on pos and passes the turn.
// The game is left untouched when an error is returned.
func (that *Game) Place(pos Pos) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: row %d col %d", ErrInvalidCell, pos.Row, pos.Col)
	}

	if that.IsWon() {
		return apperror.ErrGameFinished
	}

	if that.Board.At(pos) != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[pos.Row][pos.Col] = that.Turn
	that.Turn = that.Turn.Opponent()
	that.Steps++

	return nil
}

// WinningLine returns the first complete triple in WinCombos order.
func (that *Game) WinningLine() (Mark, [3]Pos, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.Board.At(combo[0]), that.Board.At(combo[1]), that.Board.At(combo[2])
		if a != EmptyCell && a == b && b == c {
			return a, combo, true
		}
	}

	return EmptyCell, [3]Pos{}, false
}

func (that *Game) IsWon() bool {
	return that.Win != nil
}

func (that *Game) IsDraw() bool {
	return !that.IsWon() && that.Steps == MaxSteps
}

func (that *Game) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

func (that *Game) Status() string {
	switch {
	case that.IsWon():
		return StatusWon
	case that.IsDraw():
		return StatusDraw
	default:
		return StatusOngoing
	}
}
