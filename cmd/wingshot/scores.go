package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkostin/wingshot/internal/platform/tui"
	"github.com/mkostin/wingshot/internal/registry"
	"github.com/mkostin/wingshot/internal/storage"
)

const gameID = "wingshot"

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded scores",
	Long: `Show the recorded score history. On a terminal this opens an
interactive browser; --plain prints a table instead.

Examples:
  wingshot scores
  wingshot scores --plain --limit 25
  wingshot scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive browser")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := log.New(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "err", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			logger.Fatal("cannot clear scores", "err", err)
		}
		fmt.Println("Score history cleared.")
		return
	}

	title := gameID
	if g, createErr := registry.Create(gameID); createErr == nil {
		title = g.Title()
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			logger.Fatal("scoreboard exited with error", "err", err)
		}
		return
	}

	printScores(store, title, logger)
}

func printScores(store *storage.Store, title string, logger *log.Logger) {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		logger.Fatal("cannot read scores", "err", err)
	}

	fmt.Printf("High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wingshot play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GameStats(gameID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d   Best: %d   Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
