package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D   - Steer (the ship keeps moving briefly after a press)
  Down/S            - Stop
  Space/Up/W        - Fire
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave (when paused or after game over)
  Ctrl+S            - Save a text screenshot to ~/.invaders/screenshots
  Q/Ctrl+C          - Quit

A wide terminal shows the arena at full resolution; smaller terminals get
a coarser picture.

Examples:
  invaders play
  invaders play --fps 30
  invaders play --config ./my-invaders.yaml --log ./invaders.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID, logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without scores", "error", err)
	}

	runErr := tui.Run(game, store, cfg.Runtime(width, height),
		tui.WithPlayer(playerName()),
		tui.WithLogger(logger),
	)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playLogger logs to the configured file, or nowhere so the game screen
// stays intact.
func playLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Logging.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path, err := storage.ExpandPath(cfg.Logging.File)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level, _ := cfg.LogLevel() // validated by loadConfig
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// playerName is the name local scores are saved under.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
