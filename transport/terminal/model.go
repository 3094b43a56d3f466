package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/shell"
)

type Options struct {
	Layout entity.Layout
	FPS    int
}

type stepper interface {
	Step(in shell.Input) shell.Output
}

type frameMsg time.Time

type model struct {
	ctx      context.Context
	logger   *slog.Logger
	shell    stepper
	layout   entity.Layout
	interval time.Duration

	cursor  entity.Point
	pressed bool
	events  []shell.Event

	out shell.Output
}

func newModel(ctx context.Context, logger *slog.Logger, gameShell stepper, opts Options) model {
	return model{
		ctx:      ctx,
		logger:   logger,
		shell:    gameShell,
		layout:   opts.Layout,
		interval: time.Second / time.Duration(opts.FPS),
		// park the pointer off the board until the first mouse event
		cursor: entity.Point{X: -1, Y: -1},
	}
}

// Run starts the terminal UI and blocks until the player quits or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, gameShell stepper, opts Options) error {
	log := logger.With("component", "terminal")

	program := tea.NewProgram(
		newModel(ctx, log, gameShell, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	log.Info("Terminal UI started")

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal program failed: %w", err)
	}

	log.Info("Terminal UI stopped")

	return nil
}

func (that model) nextFrame() tea.Cmd {
	return tea.Tick(that.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (that model) Init() tea.Cmd {
	return func() tea.Msg {
		return frameMsg(time.Now())
	}
}

func (that model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			that.events = append(that.events, shell.EventRestart)
		case "q", "esc", "ctrl+c":
			that.events = append(that.events, shell.EventQuit)
		}
		return that, nil

	case tea.MouseMsg:
		that.cursor = toSurface(msg.X, msg.Y, that.layout)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			that.pressed = true
		case msg.Action == tea.MouseActionRelease:
			that.pressed = false
		}
		return that, nil

	case frameMsg:
		return that.step()
	}

	return that, nil
}

func (that model) step() (tea.Model, tea.Cmd) {
	in := shell.Input{
		Cursor:  that.cursor,
		Pressed: that.pressed,
		Events:  that.events,
	}
	that.events = nil

	if that.ctx.Err() != nil {
		in.Events = append(in.Events, shell.EventQuit)
	}

	previous := that.out.Caption
	that.out = that.shell.Step(in)
	if that.out.Quit {
		return that, tea.Quit
	}

	if that.out.Caption != previous {
		return that, tea.Batch(that.nextFrame(), tea.SetWindowTitle(that.out.Caption))
	}

	return that, that.nextFrame()
}

func (that model) View() string {
	return render(that.out.Caption, that.out.Frame, that.layout)
}
