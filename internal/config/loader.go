package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "INVADERS_"

// Load loads the invaders configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default.
// A .env file in the working directory is loaded next, then INVADERS_*
// variables override file values. The result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: failed to load .env: %w", err)
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile decodes the first readable config file over the defaults, so
// keys a file omits keep their default values.
func loadFile(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "config.yaml")
}

// applyEnv overrides cfg with INVADERS_* values found through lookup.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ARENA_WIDTH", &cfg.Arena.Width},
		{"ARENA_HEIGHT", &cfg.Arena.Height},
		{"TICK_RATE", &cfg.TickRate},
		{"HOLD_TICKS", &cfg.Controls.HoldTicks},
		{"SSH_IDLE_TIMEOUT_MINUTES", &cfg.SSH.IdleTimeoutMinutes},
	}
	for _, v := range ints {
		raw, ok := lookup(EnvPrefix + v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, v.key, raw, ErrInvalidConfig)
		}
		*v.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"DB_PATH", &cfg.Storage.DBPath},
		{"SSH_ADDRESS", &cfg.SSH.Address},
		{"SSH_HOST_KEY", &cfg.SSH.HostKey},
		{"LOG_LEVEL", &cfg.Logging.Level},
		{"LOG_FILE", &cfg.Logging.File},
	}
	for _, v := range strs {
		if raw, ok := lookup(EnvPrefix + v.key); ok && raw != "" {
			*v.dst = raw
		}
	}
	return nil
}
