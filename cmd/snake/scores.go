package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the high score",
	Long: `Display the best recorded runs and the persisted high score.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs and reset the high score")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	slot := storage.NewHighScoreSlot(store, cfg.Storage.HighScoreKey)

	if flagClear {
		if err := clearScores(store, slot); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		rc := runtimeConfig()
		if err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	high, highErr := slot.HighScore()
	printScores(os.Stdout, scores, high, highErr, time.Now())
}

func clearScores(store *storage.Store, slot *storage.HighScoreSlot) error {
	if err := store.ClearScores(); err != nil {
		return err
	}
	return slot.Reset()
}

// printScores writes the plain-text leaderboard.
func printScores(w io.Writer, scores []storage.ScoreEntry, high int, highErr error, now time.Time) {
	fmt.Fprintln(w, "High Scores - Snake")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Time", "When")
		fmt.Fprintf(w, "  %-4s  %-10s  %-6s  %s\n", "----", "-----", "----", "----")
		for i, entry := range scores {
			secs := int(entry.Duration / time.Second)
			fmt.Fprintf(w, "  %-4d  %-10s  %02d:%02d   %s\n",
				i+1,
				humanize.Comma(int64(entry.Score)),
				secs/60, secs%60,
				humanize.RelTime(entry.CreatedAt, now, "ago", "from now"),
			)
		}
	}

	fmt.Fprintln(w)
	if highErr != nil {
		fmt.Fprintf(w, "Best: unreadable (%v)\n", highErr)
		return
	}
	fmt.Fprintf(w, "Best: %s\n", humanize.Comma(int64(high)))
}
