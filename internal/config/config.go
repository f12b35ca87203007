// Package config provides YAML-based configuration loading for the invaders
// binary, with .env and environment variable overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/universe"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Arena limits. The minimum height fits the whole starting formation above
// the ship and its missile spawn row, so no alien lands on the first step.
const (
	MinArenaWidth  = 4 * universe.AlienWidth
	MinArenaHeight = universe.FormationHeight + universe.PlayerHeight + 1
	MaxTickRate    = 240
)

// Config contains all configuration for the invaders binary.
type Config struct {
	Arena    ArenaConfig    `yaml:"arena"`
	TickRate int            `yaml:"tick_rate"`
	Controls ControlsConfig `yaml:"controls"`
	Storage  StorageConfig  `yaml:"storage"`
	SSH      SSHConfig      `yaml:"ssh"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ArenaConfig defines the simulation grid size in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ControlsConfig defines input behavior.
type ControlsConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key keeps steering
}

// StorageConfig defines where finished-game scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LoggingConfig defines the log level and optional log file for local play.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the hardcoded configuration used when no file and
// no embedded default can be read.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  256,
			Height: 192,
		},
		TickRate: 60,
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
		Storage: StorageConfig{
			DBPath: "~/.invaders/scores.db",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			HostKey:            ".ssh/invaders_ed25519",
			IdleTimeoutMinutes: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Arena.Width < MinArenaWidth:
		return fmt.Errorf("config: arena width %d below %d: %w", c.Arena.Width, MinArenaWidth, ErrInvalidConfig)
	case c.Arena.Height < MinArenaHeight:
		return fmt.Errorf("config: arena height %d below %d: %w", c.Arena.Height, MinArenaHeight, ErrInvalidConfig)
	case c.TickRate <= 0 || c.TickRate > MaxTickRate:
		return fmt.Errorf("config: tick rate %d outside 1..%d: %w", c.TickRate, MaxTickRate, ErrInvalidConfig)
	case c.Controls.HoldTicks <= 0:
		return fmt.Errorf("config: hold ticks must be positive: %w", ErrInvalidConfig)
	case c.SSH.IdleTimeoutMinutes < 0:
		return fmt.Errorf("config: negative idle timeout: %w", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("config: %w: %w", err, ErrInvalidConfig)
	}
	return nil
}

// LogLevel parses the configured level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Logging.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Logging.Level)
}

// Runtime converts the config into the game runtime settings for a
// terminal of the given size.
func (c Config) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   screenW,
		ScreenH:   screenH,
		ArenaW:    c.Arena.Width,
		ArenaH:    c.Arena.Height,
		TickRate:  c.TickRate,
		HoldTicks: c.Controls.HoldTicks,
	}
}
