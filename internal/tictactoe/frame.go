package tictactoe

import "github.com/rocketscienceinc/tictactoe/internal/entity"

// Command is a single drawing instruction. Frontends map marks to their
// own images and fonts; the controller never deals with assets.
type Command interface {
	command()
}

// DrawField draws the background field at the origin, scaled to the surface.
type DrawField struct{}

// DrawMark draws a player's mark with its top-left corner at At.
type DrawMark struct {
	Mark entity.Mark
	Pos  entity.Pos
	At   entity.Point
}

// DrawStrike draws the line through a winning triple.
type DrawStrike struct {
	From  entity.Point
	To    entity.Point
	Width int
}

// DrawLabel draws Text horizontally centered on CenterX with its top at Top.
type DrawLabel struct {
	Text    string
	CenterX int
	Top     int
}

func (DrawField) command()  {}
func (DrawMark) command()   {}
func (DrawStrike) command() {}
func (DrawLabel) command()  {}

// Frame is the ordered list of commands for one rendered frame.
type Frame struct {
	Commands []Command
}
