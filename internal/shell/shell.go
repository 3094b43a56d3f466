package shell

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type boardController interface {
	ApplyClick(game *entity.Game, pointer entity.Point, pressed bool)
	ComposeFrame(game *entity.Game) tictactoe.Frame
	StatusCaption(game *entity.Game) string
}

// GameShell owns the running game and advances it one frame at a time.
type GameShell struct {
	logger     *slog.Logger
	controller boardController
	random     entity.Randomizer
	generateID func() string

	game *entity.Game
}

func New(logger *slog.Logger, controller boardController, random entity.Randomizer, generateID func() string) *GameShell {
	that := &GameShell{
		logger:     logger.With("component", "shell"),
		controller: controller,
		random:     random,
		generateID: generateID,
	}
	that.Restart()

	return that
}

// Game returns the running instance. Callers must not modify it.
func (that *GameShell) Game() *entity.Game {
	return that.game
}

// Restart throws the running game away and starts a fresh one.
func (that *GameShell) Restart() {
	game := entity.NewGame(that.generateID(), entity.RandomMark(that.random))

	if that.game != nil {
		that.logger.Info("game discarded", "game_id", that.game.ID, "status", that.game.Status(), "steps", that.game.Steps)
	}

	that.game = game
	that.logger.Info("new game started", "game_id", game.ID, "first_player", game.Turn)
}

// Step runs one frame: the caption and the frame are taken from the state
// before the click, then the click is applied, then the platform events.
func (that *GameShell) Step(in Input) Output {
	out := Output{
		Caption: that.controller.StatusCaption(that.game),
		Frame:   that.controller.ComposeFrame(that.game),
	}

	that.controller.ApplyClick(that.game, in.Cursor, in.Pressed)

	for _, event := range in.Events {
		switch event {
		case EventQuit:
			that.logger.Info("quit requested", "game_id", that.game.ID)
			out.Quit = true
			return out
		case EventRestart:
			that.Restart()
		default:
			that.logger.Warn("unknown event ignored", "event", event)
		}
	}

	return out
}
