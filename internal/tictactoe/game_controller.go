package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type GameController struct {
	logger *slog.Logger
	layout entity.Layout
}

func NewGameController(logger *slog.Logger, layout entity.Layout) *GameController {
	return &GameController{
		logger: logger.With("component", "board"),
		layout: layout,
	}
}

func (that *GameController) Layout() entity.Layout {
	return that.layout
}

// ApplyClick places the current player's mark under the pointer when the
// primary button is held. Anything else is ignored.
func (that *GameController) ApplyClick(game *entity.Game, pointer entity.Point, pressed bool) {
	if !pressed {
		return
	}

	log := that.logger.With("game_id", game.ID)

	pos, ok := that.layout.CellAt(pointer)
	if !ok {
		log.Debug("click outside the board ignored", "x", pointer.X, "y", pointer.Y)
		return
	}

	player := game.Turn
	if err := game.Place(pos); err != nil {
		log.Debug("click ignored", "row", pos.Row, "col", pos.Col, "reason", err)
		return
	}

	log.Debug("move accepted", "player", player, "row", pos.Row, "col", pos.Col, "steps", game.Steps)

	that.DetectWin(game)

	switch {
	case game.IsWon():
		log.Info("game won", "winner", game.Win.Winner, "steps", game.Steps)
	case game.IsDraw():
		log.Info("game ended in a draw")
	}
}

// DetectWin records the first complete line, if any. An existing result
// is never replaced.
func (that *GameController) DetectWin(game *entity.Game) {
	if game.IsWon() {
		return
	}

	winner, line, ok := game.WinningLine()
	if !ok {
		return
	}

	game.Win = &entity.WinResult{
		Winner: winner,
		Line:   line,
		From:   that.layout.CellCenter(line[0]),
		To:     that.layout.CellCenter(line[2]),
	}
}

// ComposeFrame lists what has to be drawn for game, back to front.
func (that *GameController) ComposeFrame(game *entity.Game) Frame {
	commands := make([]Command, 0, 1+entity.MaxSteps+2)
	commands = append(commands, DrawField{})

	for row := 0; row < entity.BoardSide; row++ {
		for col := 0; col < entity.BoardSide; col++ {
			pos := entity.Pos{Row: row, Col: col}
			mark := game.Board.At(pos)
			if mark == entity.EmptyCell {
				continue
			}

			commands = append(commands, DrawMark{Mark: mark, Pos: pos, At: that.layout.CellOrigin(pos)})
		}
	}

	if game.IsWon() {
		commands = append(commands,
			DrawStrike{From: game.Win.From, To: game.Win.To, Width: that.layout.CellSize() / 8},
			DrawLabel{Text: WinLabel(game.Win.Winner), CenterX: that.layout.Size / 2, Top: that.layout.Size / 4},
		)
	}

	return Frame{Commands: commands}
}

func (that *GameController) StatusCaption(game *entity.Game) string {
	switch {
	case game.IsWon():
		return fmt.Sprintf(`Player "%s" wins! Press Space to Restart`, game.Win.Winner)
	case game.IsDraw():
		return "Game Over! Press Space to Restart"
	default:
		return fmt.Sprintf(`Player "%s" turn!`, game.Turn)
	}
}

func WinLabel(winner entity.Mark) string {
	return fmt.Sprintf(`Player "%s" wins!`, winner)
}
