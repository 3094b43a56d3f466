package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg"
	"github.com/rocketscienceinc/tictactoe/internal/shell"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/transport/terminal"
	"github.com/rocketscienceinc/tictactoe/transport/window"
)

// RunApp - runs the application until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("Random source seeded", "seed", seed)

	layout := entity.NewLayout(conf.Window.Size)
	controller := tictactoe.NewGameController(logger, layout)
	gameShell := shell.New(logger, controller, rand.New(rand.NewSource(seed)), pkg.GenerateGameID) //nolint: gosec // it's ok

	switch conf.Frontend {
	case config.FrontendTerminal:
		log.Info("Starting terminal frontend", "fps", conf.Window.FPS)
		if err := terminal.Run(ctx, logger, gameShell, terminal.Options{Layout: layout, FPS: conf.Window.FPS}); err != nil {
			return fmt.Errorf("terminal frontend error: %w", err)
		}
	default:
		log.Info("Starting window frontend", "size", conf.Window.Size, "fps", conf.Window.FPS)
		opts := window.Options{
			Layout: layout,
			FPS:    conf.Window.FPS,
			Title:  conf.Window.Title,
			Assets: window.AssetPaths{
				Field: conf.Assets.Field,
				MarkO: conf.Assets.MarkO,
				MarkX: conf.Assets.MarkX,
			},
		}
		if err := window.Run(ctx, logger, gameShell, opts); err != nil {
			return fmt.Errorf("window frontend error: %w", err)
		}
	}

	log.Info("Application stopped")

	return nil
}
