package suite

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	maxWaitDuration = 10 * time.Second

	defaultSize = 900
	defaultSeed = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Layout     entity.Layout
	Rand       *rand.Rand
	Controller *tictactoe.GameController
}

// New prepares the shared fixtures: a quiet logger, a seeded random
// source and a controller for a 900x900 surface.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	layout := entity.NewLayout(defaultSize)

	return ctx, &Suite{
		T:          t,
		Logger:     logger,
		Layout:     layout,
		Rand:       rand.New(rand.NewSource(defaultSeed)), //nolint: gosec // it's ok
		Controller: tictactoe.NewGameController(logger, layout),
	}
}

// Click returns the pointer position at the center of pos.
func (that *Suite) Click(pos entity.Pos) entity.Point {
	return that.Layout.CellCenter(pos)
}

// FixedRand always yields the same value from Intn.
type FixedRand int

func (that FixedRand) Intn(int) int {
	return int(that)
}
