package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	cellWidth  = 9
	cellHeight = 3

	// the board starts below the caption line and one blank line
	boardTop  = 2
	boardLeft = 0
)

var (
	captionStyle = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#000000")).Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Bold(true)

	darkCell   = lipgloss.Color("#313244")
	lightCell  = lipgloss.Color("#45475a")
	strikeCell = lipgloss.Color("#f38ba8")

	markColors = map[entity.Mark]lipgloss.Color{
		entity.PlayerO: lipgloss.Color("#89b4fa"),
		entity.PlayerX: lipgloss.Color("#fab387"),
	}
)

// screen is what a frame looks like once its commands have been applied.
type screen struct {
	field  bool
	marks  entity.Board
	strike map[entity.Pos]bool
	label  string
}

func replay(frame tictactoe.Frame, layout entity.Layout) screen {
	var s screen

	for _, cmd := range frame.Commands {
		switch c := cmd.(type) {
		case tictactoe.DrawField:
			s.field = true
		case tictactoe.DrawMark:
			s.marks[c.Pos.Row][c.Pos.Col] = c.Mark
		case tictactoe.DrawStrike:
			s.strike = strikeCells(c, layout)
		case tictactoe.DrawLabel:
			s.label = c.Text
		}
	}

	return s
}

// strikeCells maps the strike endpoints back onto the three cells they cross.
func strikeCells(strike tictactoe.DrawStrike, layout entity.Layout) map[entity.Pos]bool {
	from, okFrom := layout.CellAt(strike.From)
	to, okTo := layout.CellAt(strike.To)
	if !okFrom || !okTo {
		return nil
	}

	middle := entity.Pos{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}

	return map[entity.Pos]bool{from: true, middle: true, to: true}
}

func render(caption string, frame tictactoe.Frame, layout entity.Layout) string {
	s := replay(frame, layout)

	var b strings.Builder
	b.WriteString(captionStyle.Render(caption))
	b.WriteString("\n\n")

	if s.field {
		rows := make([]string, 0, entity.BoardSide)
		for row := 0; row < entity.BoardSide; row++ {
			cells := make([]string, 0, entity.BoardSide)
			for col := 0; col < entity.BoardSide; col++ {
				cells = append(cells, renderCell(s, entity.Pos{Row: row, Col: col}))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	b.WriteString("\n\n")
	if s.label != "" {
		b.WriteString(labelStyle.Render(s.label))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("click: place mark • space: restart • q: quit"))

	return b.String()
}

func renderCell(s screen, pos entity.Pos) string {
	background := darkCell
	if (pos.Row+pos.Col)%2 == 1 {
		background = lightCell
	}
	if s.strike[pos] {
		background = strikeCell
	}

	style := cellStyle.Background(background)

	mark := s.marks.At(pos)
	if fg, ok := markColors[mark]; ok {
		style = style.Foreground(fg)
	}

	return style.Render(mark.String())
}

// toSurface converts a terminal cell coordinate into a point on the
// controller's surface, so the board occupies the whole layout.
func toSurface(x, y int, layout entity.Layout) entity.Point {
	cell := layout.CellSize()

	return entity.Point{
		X: floorDiv((x-boardLeft)*cell, cellWidth),
		Y: floorDiv((y-boardTop)*cell, cellHeight),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
