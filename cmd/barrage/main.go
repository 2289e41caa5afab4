// barrage is a terminal arcade shooter: dodge projectile volleys, shoot
// down grunts and the boss every third level, and spend score on abilities.
//
// Usage:
//
//	barrage play             - Play in this terminal
//	barrage scores           - Show the high-score table
//	barrage serve            - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 50)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.barrage/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barrage/internal/config"
	"github.com/vovakirdan/tui-barrage/internal/core"
	"github.com/vovakirdan/tui-barrage/internal/games/barrage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	logger  *log.Logger
	gameCfg config.BarrageConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "barrage",
	Short: "Barrage - a bullet-dodging shooter for the terminal",
	Long: `Barrage is a real-time arcade shooter played in the terminal.

Move with the arrow keys, hold space to fire, and spend score on three
abilities: area disable (E), directional shield (S) and gravity field
(Enter). Every third level a boss replaces the grunts.

Available commands:
  play     - Play in this terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  barrage play
  barrage play --seed 42 --config ./my-barrage.yaml
  barrage scores --interactive
  barrage serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.barrage/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the game configuration.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "barrage",
		Level:           level,
	})

	gameCfg, err = config.LoadBarrage(flagConfig)
	if err != nil {
		return err
	}
	return nil
}

// newGame builds a configured game that logs through the shared logger.
func newGame() core.Game {
	g := barrage.NewWithConfig(gameCfg)
	g.SetLogger(logger.WithPrefix("barrage/game"))
	return g
}

// runtimeConfig is the runtime setup for a width x height terminal.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
