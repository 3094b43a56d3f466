package entity

const BoardSide = 3

// Point is a position on the rendering surface, in pixels.
type Point struct {
	X int
	Y int
}

// Pos addresses a board cell.
type Pos struct {
	Row int
	Col int
}

func (that Pos) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSide && that.Col >= 0 && that.Col < BoardSide
}

// Layout maps a square surface of Size pixels onto the 3x3 grid.
type Layout struct {
	Size int
}

func NewLayout(size int) Layout {
	return Layout{Size: size}
}

func (that Layout) CellSize() int {
	return that.Size / BoardSide
}

// CellAt returns the cell under p. Points outside the grid, including
// negative coordinates, are reported as not found.
func (that Layout) CellAt(p Point) (Pos, bool) {
	cell := that.CellSize()
	if cell <= 0 || p.X < 0 || p.Y < 0 {
		return Pos{}, false
	}

	pos := Pos{Row: p.Y / cell, Col: p.X / cell}
	if !pos.Valid() {
		return Pos{}, false
	}

	return pos, true
}

func (that Layout) CellOrigin(pos Pos) Point {
	cell := that.CellSize()
	return Point{X: pos.Col * cell, Y: pos.Row * cell}
}

func (that Layout) CellCenter(pos Pos) Point {
	origin := that.CellOrigin(pos)
	half := that.CellSize() / 2
	return Point{X: origin.X + half, Y: origin.Y + half}
}
