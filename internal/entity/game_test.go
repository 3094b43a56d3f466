package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123", PlayerX)

	// Then: the board is empty and the first player is to move
	expectedGame := &Game{
		ID:   "123",
		Turn: PlayerX,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, StatusOngoing, game.Status())
}

func TestGame_Place(t *testing.T) {
	t.Run("Successful placement", func(t *testing.T) {
		// Given: a new game with O to move
		game := NewGame("123", PlayerO)

		// When: O takes the top-left cell
		err := game.Place(Pos{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the mark is on the board and X is to move
		expectedGame := &Game{
			ID:    "123",
			Board: Board{{PlayerO, EmptyCell, EmptyCell}},
			Turn:  PlayerX,
			Steps: 1,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the top-left cell is taken
		game := NewGame("123", PlayerO)
		require.NoError(t, game.Place(Pos{Row: 0, Col: 0}))

		// When: X tries the same cell
		err := game.Place(Pos{Row: 0, Col: 0})

		// Then: ErrCellOccupied is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		expectedGame := &Game{
			ID:    "123",
			Board: Board{{PlayerO, EmptyCell, EmptyCell}},
			Turn:  PlayerX,
			Steps: 1,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		for _, pos := range []Pos{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {7, 7}} {
			// Given: a new game
			game := NewGame("123", PlayerO)

			// When: a position outside the board is used
			err := game.Place(pos)

			// Then: ErrInvalidCell is returned and the game is untouched
			require.ErrorIs(t, err, ErrInvalidCell, "pos %v", pos)
			assert.Equal(t, NewGame("123", PlayerO), game)
		}
	})

	t.Run("Error after the game is won", func(t *testing.T) {
		// Given: a game with a recorded winner
		game := NewGame("123", PlayerX)
		game.Board = Board{
			{PlayerO, PlayerO, PlayerO},
			{PlayerX, PlayerX, EmptyCell},
		}
		game.Steps = 5
		game.Win = &WinResult{Winner: PlayerO}

		// When: X tries to play on
		err := game.Place(Pos{Row: 2, Col: 2})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, EmptyCell, game.Board.At(Pos{Row: 2, Col: 2}))
		assert.Equal(t, 5, game.Steps)
	})

	t.Run("Turns alternate", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", PlayerX)
		moves := []Pos{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {2, 1}}

		// When: several moves are accepted
		previous := EmptyCell
		for _, pos := range moves {
			mover := game.Turn
			require.NoError(t, game.Place(pos))

			// Then: the mover differs from the previous one
			assert.NotEqual(t, previous, mover)
			assert.Equal(t, mover, game.Board.At(pos))
			previous = mover
		}

		assert.Equal(t, len(moves), game.Steps)
	})
}

func TestGame_WinningLine(t *testing.T) {
	t.Run("Row", func(t *testing.T) {
		// Given: O owns the top row
		game := &Game{Board: Board{
			{PlayerO, PlayerO, PlayerO},
			{PlayerX, PlayerX, EmptyCell},
		}}

		// When: looking for a winning line
		winner, line, ok := game.WinningLine()

		// Then: the top row is reported
		require.True(t, ok)
		assert.Equal(t, PlayerO, winner)
		assert.Equal(t, [3]Pos{{0, 0}, {0, 1}, {0, 2}}, line)
	})

	t.Run("Column", func(t *testing.T) {
		// Given: X owns the middle column
		game := &Game{Board: Board{
			{PlayerO, PlayerX, EmptyCell},
			{PlayerO, PlayerX, EmptyCell},
			{EmptyCell, PlayerX, PlayerO},
		}}

		// When: looking for a winning line
		winner, line, ok := game.WinningLine()

		// Then: the middle column is reported
		require.True(t, ok)
		assert.Equal(t, PlayerX, winner)
		assert.Equal(t, [3]Pos{{0, 1}, {1, 1}, {2, 1}}, line)
	})

	t.Run("Anti diagonal", func(t *testing.T) {
		// Given: X owns the anti diagonal
		game := &Game{Board: Board{
			{PlayerO, PlayerO, PlayerX},
			{EmptyCell, PlayerX, EmptyCell},
			{PlayerX, EmptyCell, PlayerO},
		}}

		// When: looking for a winning line
		winner, line, ok := game.WinningLine()

		// Then: the anti diagonal is reported
		require.True(t, ok)
		assert.Equal(t, PlayerX, winner)
		assert.Equal(t, [3]Pos{{0, 2}, {1, 1}, {2, 0}}, line)
	})

	t.Run("First match wins", func(t *testing.T) {
		// Given: a board with both a row and a column complete
		game := &Game{Board: Board{
			{PlayerX, PlayerX, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerX, PlayerO, PlayerO},
		}}

		// When: looking for a winning line
		_, line, ok := game.WinningLine()

		// Then: rows are checked before columns
		require.True(t, ok)
		assert.Equal(t, WinCombos[0], line)
	})

	t.Run("No line", func(t *testing.T) {
		// Given: a full board without three in a row
		game := &Game{Board: Board{
			{PlayerO, PlayerX, PlayerO},
			{PlayerO, PlayerX, PlayerX},
			{PlayerX, PlayerO, PlayerX},
		}}

		// When: looking for a winning line
		winner, _, ok := game.WinningLine()

		// Then: nothing is found
		assert.False(t, ok)
		assert.Equal(t, EmptyCell, winner)
	})
}

func TestGame_Status(t *testing.T) {
	t.Run("Draw when the board is full without a winner", func(t *testing.T) {
		game := &Game{Steps: MaxSteps}

		assert.True(t, game.IsDraw())
		assert.True(t, game.IsFinished())
		assert.Equal(t, StatusDraw, game.Status())
	})

	t.Run("Won takes precedence over a full board", func(t *testing.T) {
		game := &Game{Steps: MaxSteps, Win: &WinResult{Winner: PlayerX}}

		assert.False(t, game.IsDraw())
		assert.True(t, game.IsWon())
		assert.Equal(t, StatusWon, game.Status())
	})
}
