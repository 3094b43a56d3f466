package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"

	defaultTerminalLogFile = "tictactoe.log"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Frontend string `yaml:"frontend" env:"TICTACTOE_FRONTEND" env-default:"window"`
	Seed     int64  `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Window   Window `yaml:"window"`
	Assets   Assets `yaml:"assets"`
}

type Window struct {
	Size  int    `yaml:"size" env:"TICTACTOE_WINDOW_SIZE" env-default:"900"`
	FPS   int    `yaml:"fps" env:"TICTACTOE_WINDOW_FPS" env-default:"60"`
	Title string `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic Tac Toe"`
}

// Assets holds image paths. Empty paths select the built-in artwork.
type Assets struct {
	Field string `yaml:"field" env:"TICTACTOE_ASSETS_FIELD" env-default:""`
	MarkO string `yaml:"mark-o" env:"TICTACTOE_ASSETS_MARK_O" env-default:""`
	MarkX string `yaml:"mark-x" env:"TICTACTOE_ASSETS_MARK_X" env-default:""`
}

// MustLoad - load all configurations from the config.yml file, falling back
// to the environment when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}
	case err != nil:
		panic(fmt.Errorf("unable to stat config file: %w", err))
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
	}

	// stdout belongs to the terminal UI
	if config.Frontend == FrontendTerminal && config.LogFile == "" {
		config.LogFile = defaultTerminalLogFile
	}

	if err = config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

var (
	ErrWindowTooSmall  = errors.New("window size must be at least 3 pixels")
	ErrInvalidFPS      = errors.New("fps must be positive")
	ErrUnknownFrontend = errors.New("unknown frontend")
)

func (that *Config) Validate() error {
	if that.Window.Size < 3 {
		return fmt.Errorf("%w: %d", ErrWindowTooSmall, that.Window.Size)
	}

	if that.Window.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, that.Window.FPS)
	}

	switch that.Frontend {
	case FrontendWindow, FrontendTerminal:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}
}
