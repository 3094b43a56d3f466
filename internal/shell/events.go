package shell

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type Event int

const (
	EventRestart Event = iota + 1
	EventQuit
)

func (that Event) String() string {
	switch that {
	case EventRestart:
		return "restart"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Input is what a frontend sampled for one frame.
type Input struct {
	Cursor  entity.Point
	Pressed bool
	Events  []Event
}

// Output is what a frontend has to present after a frame.
type Output struct {
	Caption string
	Frame   tictactoe.Frame
	Quit    bool
}
