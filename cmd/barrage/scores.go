package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-barrage/internal/games/barrage"
	"github.com/vovakirdan/tui-barrage/internal/platform/tui"
	"github.com/vovakirdan/tui-barrage/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs.

Examples:
  barrage scores
  barrage scores --limit 25
  barrage scores --interactive
  barrage scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(barrage.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	case flagInteractive:
		width, height := terminalSize()
		return tui.RunScoreboard(store, barrage.ID, "Barrage", flagFPS, width, height)
	}

	return printScores(os.Stdout, store, flagLimit, flagFPS)
}

// printScores writes the plain-text high-score table.
func printScores(w io.Writer, store *storage.Store, limit, tickRate int) error {
	scores, err := store.TopScores(barrage.ID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - Barrage")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'barrage play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, row := range tui.ScoreRows(scores, tickRate) {
		fmt.Fprintf(w, "  %-4d  %-8s  %-5s  %-6s  %s\n", i+1, row[1], row[2], row[3], scores[i].CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(barrage.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f  Highest level: %d\n",
		stats.Best, stats.Runs, stats.Average, stats.MaxLevel)
	return nil
}
