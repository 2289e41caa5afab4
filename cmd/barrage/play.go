package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-barrage/internal/platform/tui"
	"github.com/vovakirdan/tui-barrage/internal/storage"
)

// logPath receives log output during play.
const logPath = "~/.barrage/barrage.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Arrows/hjkl - Move
  Space       - Fire (hold)
  E           - Area disable (costs score)
  S           - Directional shield (costs score)
  Enter       - Gravity field (costs score)
  P/Esc       - Pause
  R           - Restart (after game over)
  ?           - Toggle full help
  Q/Ctrl+C    - Quit

Examples:
  barrage play
  barrage play --seed 42
  barrage play --config ./my-barrage.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := terminalSize()

	// The alt screen owns the terminal while the game runs.
	restore, err := logToFile(logPath)
	if err != nil {
		return err
	}
	defer restore()

	opts := tui.Options{
		Runtime:   runtimeConfig(width, height),
		Logger:    logger,
		HoldTicks: gameCfg.Input.HoldTicks,
		FixedSeed: flagSeed != 0,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Play goes on without persistence.
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	if err := tui.Run(newGame(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// logToFile sends log output to path until the returned func is called.
func logToFile(path string) (func(), error) {
	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// terminalSize reports the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
