// invaders is a terminal Invaders-style arcade shooter.
//
// Usage:
//
//	invaders play            - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show high scores
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.invaders/config.yaml, ./configs/invaders.yaml)
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
//	--log <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the planet from your terminal",
	Long: `Invaders is a terminal take on the classic arcade shooter. A formation
of 55 aliens marches across the screen, dropping bombs; shoot them all
before they land.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  invaders play
  invaders play --fps 30
  invaders serve --ssh :2222
  invaders scores --plain`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file and environment, then applies the
// persistent flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFlags copies changed persistent flags over cfg.
func applyFlags(cfg *config.Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log") {
		cfg.Logging.File = flagLogFile
	}
}

// gameID is the only game this binary plays.
const gameID = invaders.ID
