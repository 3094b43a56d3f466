package window

import (
	"fmt"
	"image/color"
	// register the PNG decoder used by ebitenutil.NewImageFromFile.
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var (
	fieldColor = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	gridColor  = color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}
	markOColor = color.RGBA{R: 0x89, G: 0xb4, B: 0xfa, A: 0xff}
	markXColor = color.RGBA{R: 0xfa, G: 0xb3, B: 0x87, A: 0xff}
)

// AssetPaths points to PNG files. An empty path selects the built-in image.
type AssetPaths struct {
	Field string
	MarkO string
	MarkX string
}

type assets struct {
	field *ebiten.Image
	marks map[entity.Mark]*ebiten.Image
}

func loadAssets(paths AssetPaths, layout entity.Layout) (*assets, error) {
	field, err := loadOrDraw(paths.Field, layout.Size, drawField)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}

	markO, err := loadOrDraw(paths.MarkO, layout.CellSize(), drawMarkO)
	if err != nil {
		return nil, fmt.Errorf("mark O: %w", err)
	}

	markX, err := loadOrDraw(paths.MarkX, layout.CellSize(), drawMarkX)
	if err != nil {
		return nil, fmt.Errorf("mark X: %w", err)
	}

	return &assets{
		field: field,
		marks: map[entity.Mark]*ebiten.Image{
			entity.PlayerO: markO,
			entity.PlayerX: markX,
		},
	}, nil
}

// loadOrDraw returns a size x size image, read from path or drawn by fallback.
func loadOrDraw(path string, size int, fallback func(dst *ebiten.Image)) (*ebiten.Image, error) {
	dst := ebiten.NewImage(size, size)

	if path == "" {
		fallback(dst)
		return dst, nil
	}

	src, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrAssetUnavailable, path, err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s: empty image", apperror.ErrAssetUnavailable, path)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size)/float64(bounds.Dx()), float64(size)/float64(bounds.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)

	return dst, nil
}

func drawField(dst *ebiten.Image) {
	dst.Fill(fieldColor)

	size := float32(dst.Bounds().Dx())
	cell := size / entity.BoardSide
	width := cell / 30

	for i := 1; i < entity.BoardSide; i++ {
		offset := cell * float32(i)
		vector.StrokeLine(dst, offset, 0, offset, size, width, gridColor, true)
		vector.StrokeLine(dst, 0, offset, size, offset, width, gridColor, true)
	}
}

func drawMarkO(dst *ebiten.Image) {
	cell := float32(dst.Bounds().Dx())
	vector.StrokeCircle(dst, cell/2, cell/2, cell*0.3, cell/12, markOColor, true)
}

func drawMarkX(dst *ebiten.Image) {
	cell := float32(dst.Bounds().Dx())
	lo, hi := cell*0.2, cell*0.8
	vector.StrokeLine(dst, lo, lo, hi, hi, cell/12, markXColor, true)
	vector.StrokeLine(dst, hi, lo, lo, hi, cell/12, markXColor, true)
}
