package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

var (
	strikeColor     = color.RGBA{R: 0xff, A: 0xff}
	labelColor      = color.White
	labelBackground = color.Black
)

type renderer struct {
	assets *assets
	face   *text.GoTextFace
}

func newRenderer(assets *assets, layout entity.Layout) (*renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}

	return &renderer{
		assets: assets,
		face:   &text.GoTextFace{Source: source, Size: float64(layout.CellSize() / 4)},
	}, nil
}

func (that *renderer) draw(screen *ebiten.Image, frame tictactoe.Frame) {
	for _, cmd := range frame.Commands {
		switch c := cmd.(type) {
		case tictactoe.DrawField:
			screen.DrawImage(that.assets.field, &ebiten.DrawImageOptions{})
		case tictactoe.DrawMark:
			img, ok := that.assets.marks[c.Mark]
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(c.At.X), float64(c.At.Y))
			screen.DrawImage(img, op)
		case tictactoe.DrawStrike:
			vector.StrokeLine(screen,
				float32(c.From.X), float32(c.From.Y), float32(c.To.X), float32(c.To.Y),
				float32(c.Width), strikeColor, true)
		case tictactoe.DrawLabel:
			that.drawLabel(screen, c)
		}
	}
}

func (that *renderer) drawLabel(screen *ebiten.Image, label tictactoe.DrawLabel) {
	width, height := text.Measure(label.Text, that.face, 0)
	x := float64(label.CenterX) - width/2
	y := float64(label.Top)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), labelBackground, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, label.Text, that.face, op)
}
