package window

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/shell"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type Options struct {
	Layout entity.Layout
	FPS    int
	Title  string
	Assets AssetPaths
}

type stepper interface {
	Step(in shell.Input) shell.Output
}

// game adapts the shell to ebiten's Update/Draw loop. Update runs FPS times
// per second; Draw presents the frame produced by the latest Update.
type game struct {
	ctx      context.Context
	logger   *slog.Logger
	shell    stepper
	layout   entity.Layout
	renderer *renderer

	caption string
	frame   tictactoe.Frame
}

// Run opens the window and blocks until the window is closed or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, gameShell stepper, opts Options) error {
	log := logger.With("component", "window")

	loaded, err := loadAssets(opts.Assets, opts.Layout)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	r, err := newRenderer(loaded, opts.Layout)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Layout.Size, opts.Layout.Size)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.FPS)

	g := &game{
		ctx:      ctx,
		logger:   log,
		shell:    gameShell,
		layout:   opts.Layout,
		renderer: r,
		caption:  opts.Title,
	}

	log.Info("Window opened", "size", opts.Layout.Size)

	if err = ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten run failed: %w", err)
	}

	log.Info("Window closed")

	return nil
}

func (that *game) Update() error {
	x, y := ebiten.CursorPosition()
	in := shell.Input{
		Cursor:  entity.Point{X: x, Y: y},
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Events = append(in.Events, shell.EventRestart)
	}

	if that.ctx.Err() != nil {
		in.Events = append(in.Events, shell.EventQuit)
	}

	out := that.shell.Step(in)
	if out.Quit {
		return ebiten.Termination
	}

	if out.Caption != that.caption {
		ebiten.SetWindowTitle(out.Caption)
		that.caption = out.Caption
	}
	that.frame = out.Frame

	return nil
}

func (that *game) Draw(screen *ebiten.Image) {
	that.renderer.draw(screen, that.frame)
}

func (that *game) Layout(_, _ int) (int, int) {
	return that.layout.Size, that.layout.Size
}
