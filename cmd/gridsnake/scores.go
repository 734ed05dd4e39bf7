package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/raywen/gridsnake/internal/platform/tui"
	"github.com/raywen/gridsnake/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 recorded runs.

Examples:
  gridsnake scores
  gridsnake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gridsnake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Grid", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "----", "------", "----")

	for i, entry := range runs {
		result := "crash"
		if entry.Won {
			result = "win"
		}
		grid := fmt.Sprintf("%dx%d", entry.Rows, entry.Cols)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %-8s  %s\n", i+1, entry.Score, grid, result, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  (%d runs, %d wins)\n", stats.HighScore, stats.RunsCount, stats.Wins)
	}
}
